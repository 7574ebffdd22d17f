package dto

import (
	"encoding/json"
	"testing"
)

func TestFlexStringAcceptsNumbersAndStrings(t *testing.T) {
	var row BulkStudentRow
	payload := `{"name":"Asha","email":"asha@grand.edu","cgpa":8.4,"phone":"9876543210"}`
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if row.Cgpa != "8.4" {
		t.Errorf("cgpa = %q, want 8.4", row.Cgpa)
	}
	if row.Phone != "9876543210" {
		t.Errorf("phone = %q, want 9876543210", row.Phone)
	}

	if err := json.Unmarshal([]byte(`{"cgpa":null}`), &row); err != nil {
		t.Fatalf("null unmarshal failed: %v", err)
	}
	if row.Cgpa != "" {
		t.Errorf("null cgpa = %q, want empty", row.Cgpa)
	}

	if err := json.Unmarshal([]byte(`{"cgpa":true}`), &row); err == nil {
		t.Error("expected a boolean cgpa to fail")
	}
}

func TestStringListAcceptsStringOrArray(t *testing.T) {
	var req CreateJobRequest

	payload := `{"collegeId":1,"title":"SDE","ctc":"10 LPA","deadline":"2027-01-01","rounds":"Test,HR"}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("string form failed: %v", err)
	}
	if len(req.Rounds) != 1 || req.Rounds[0] != "Test,HR" {
		t.Errorf("rounds = %v, want the raw string preserved for later splitting", req.Rounds)
	}

	payload = `{"collegeId":1,"title":"SDE","ctc":"10 LPA","deadline":"2027-01-01","rounds":["Test","HR"]}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("array form failed: %v", err)
	}
	if len(req.Rounds) != 2 {
		t.Errorf("rounds = %v, want two entries", req.Rounds)
	}
}
