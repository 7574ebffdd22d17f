package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("welcome123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == "welcome123" {
		t.Error("hash must not equal the plaintext")
	}

	if !CheckPassword(hashed, "welcome123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hashed, "welcome124") {
		t.Error("expected mismatched password to fail")
	}
}
