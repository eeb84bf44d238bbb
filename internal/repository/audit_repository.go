package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// AuditRepository persists domain event traces.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository constructs repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO audit_log (event_type, subject_id, payload)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		entry.EventType,
		entry.SubjectID,
		entry.Payload,
	).Scan(&entry.ID, &entry.CreatedAt)
}
