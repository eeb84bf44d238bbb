package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// ProgramRepository manages persistence for marketing programs.
type ProgramRepository interface {
	Create(ctx context.Context, program *domain.Program) error
	GetByEmailIdentifier(ctx context.Context, email string) (*domain.Program, error)
}

type programRepository struct {
	pool *pgxpool.Pool
}

// NewProgramRepository constructs repository.
func NewProgramRepository(pool *pgxpool.Pool) ProgramRepository {
	return &programRepository{pool: pool}
}

func (r *programRepository) Create(ctx context.Context, program *domain.Program) error {
	const query = `
        INSERT INTO programs (team_id, property_id, direct_email_identifier)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		program.TeamID,
		program.PropertyID,
		program.DirectEmailIdentifier,
	).Scan(&program.ID, &program.CreatedAt)
}

func (r *programRepository) GetByEmailIdentifier(ctx context.Context, email string) (*domain.Program, error) {
	const query = `
        SELECT id, team_id, property_id, direct_email_identifier, created_at
        FROM programs WHERE direct_email_identifier=$1`
	var program domain.Program
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&program.ID,
		&program.TeamID,
		&program.PropertyID,
		&program.DirectEmailIdentifier,
		&program.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &program, nil
}
