package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/dberrors"
)

// IPartnershipRepository defines the interface for partnership database operations
type IPartnershipRepository interface {
	Create(ctx context.Context, p *models.Partnership) error
	GetByID(ctx context.Context, id int64) (*models.Partnership, error)
	FindBetween(ctx context.Context, a, b int64) (*models.Partnership, error)
	Reopen(ctx context.Context, id, requesterID, recipientID int64) error
	UpdateStatus(ctx context.Context, id int64, status models.PartnershipStatus) error
	ListForUser(ctx context.Context, userID int64) ([]*models.Partnership, error)
	HasActiveBetween(ctx context.Context, a, b int64) (bool, error)
}

// PartnershipRepository handles partnership database operations
type PartnershipRepository struct {
	db *pgxpool.Pool
}

// NewPartnershipRepository creates a new PartnershipRepository
func NewPartnershipRepository(db *pgxpool.Pool) *PartnershipRepository {
	return &PartnershipRepository{db: db}
}

// Create inserts a new partnership. The unique constraint on pair_key
// is the race backstop: when two requests for the same pair arrive
// concurrently, exactly one insert succeeds and the loser gets
// apperrors.ErrPartnershipExists.
func (r *PartnershipRepository) Create(ctx context.Context, p *models.Partnership) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO partnerships (requester_id, recipient_id, status, pair_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		p.RequesterID, p.RecipientID, p.Status, p.PairKey).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "partnerships_pair_key_key") {
			return apperrors.ErrPartnershipExists
		}
		return fmt.Errorf("error creating partnership: %w", err)
	}
	return nil
}

// GetByID retrieves a partnership by ID
func (r *PartnershipRepository) GetByID(ctx context.Context, id int64) (*models.Partnership, error) {
	p := &models.Partnership{}
	err := r.db.QueryRow(ctx, `
		SELECT id, requester_id, recipient_id, status, pair_key, created_at, updated_at
		FROM partnerships
		WHERE id = $1`, id).Scan(
		&p.ID, &p.RequesterID, &p.RecipientID, &p.Status, &p.PairKey, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("error getting partnership: %w", err)
	}
	return p, nil
}

// FindBetween looks up any partnership between two users, matching the
// pair key or either explicit direction (defense in depth against rows
// written before pair_key existed). Returns
// apperrors.ErrPartnershipNotFound when no row matches.
func (r *PartnershipRepository) FindBetween(ctx context.Context, a, b int64) (*models.Partnership, error) {
	p := &models.Partnership{}
	err := r.db.QueryRow(ctx, `
		SELECT id, requester_id, recipient_id, status, pair_key, created_at, updated_at
		FROM partnerships
		WHERE pair_key = $1
		   OR (requester_id = $2 AND recipient_id = $3)
		   OR (requester_id = $3 AND recipient_id = $2)
		LIMIT 1`,
		models.PairKey(a, b), a, b).Scan(
		&p.ID, &p.RequesterID, &p.RecipientID, &p.Status, &p.PairKey, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("error finding partnership: %w", err)
	}
	return p, nil
}

// Reopen flips a rejected partnership back to Pending and reassigns
// the direction to the fresh request. The pair key is untouched, so no
// second row can ever appear for the pair.
func (r *PartnershipRepository) Reopen(ctx context.Context, id, requesterID, recipientID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE partnerships
		SET status = $1, requester_id = $2, recipient_id = $3, updated_at = NOW()
		WHERE id = $4`,
		models.PartnershipPending, requesterID, recipientID, id)

	if err != nil {
		return fmt.Errorf("error reopening partnership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPartnershipNotFound
	}
	return nil
}

// UpdateStatus overwrites the status in place. No transition history
// is kept.
func (r *PartnershipRepository) UpdateStatus(ctx context.Context, id int64, status models.PartnershipStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE partnerships
		SET status = $1, updated_at = NOW()
		WHERE id = $2`,
		status, id)

	if err != nil {
		return fmt.Errorf("error updating partnership status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPartnershipNotFound
	}
	return nil
}

// ListForUser returns all partnerships where the user is requester or
// recipient, with both counterparts populated (public fields only).
func (r *PartnershipRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Partnership, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.requester_id, p.recipient_id, p.status, p.pair_key, p.created_at, p.updated_at,
		       req.id, req.name, req.email, req.role,
		       rec.id, rec.name, rec.email, rec.role
		FROM partnerships p
		JOIN users req ON req.id = p.requester_id
		JOIN users rec ON rec.id = p.recipient_id
		WHERE p.requester_id = $1 OR p.recipient_id = $1
		ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing partnerships: %w", err)
	}
	defer rows.Close()

	var partnerships []*models.Partnership
	for rows.Next() {
		p := &models.Partnership{
			Requester: &models.PublicUser{},
			Recipient: &models.PublicUser{},
		}
		err := rows.Scan(
			&p.ID, &p.RequesterID, &p.RecipientID, &p.Status, &p.PairKey, &p.CreatedAt, &p.UpdatedAt,
			&p.Requester.ID, &p.Requester.Name, &p.Requester.Email, &p.Requester.Role,
			&p.Recipient.ID, &p.Recipient.Name, &p.Recipient.Email, &p.Recipient.Role)
		if err != nil {
			return nil, fmt.Errorf("error scanning partnership row: %w", err)
		}
		partnerships = append(partnerships, p)
	}
	return partnerships, rows.Err()
}

// HasActiveBetween reports whether an Active partnership exists
// between two users, in either direction.
func (r *PartnershipRepository) HasActiveBetween(ctx context.Context, a, b int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM partnerships
			WHERE pair_key = $1 AND status = $2
		)`,
		models.PairKey(a, b), models.PartnershipActive).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking active partnership: %w", err)
	}
	return exists, nil
}
