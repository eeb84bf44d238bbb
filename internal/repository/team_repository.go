package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// TeamRepository manages persistence for teams.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	ListByIDs(ctx context.Context, ids []string) (map[string]*domain.Team, error)
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository constructs repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	const query = `
        INSERT INTO teams (name, module, timezone, office_hours, external_calendars, inactive, end_date)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		team.Name,
		team.Module,
		team.Timezone,
		team.OfficeHours,
		team.ExternalCalendars,
		team.Inactive,
		team.EndDate,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	const query = `
        UPDATE teams SET name=$1, module=$2, timezone=$3, office_hours=$4, external_calendars=$5,
            inactive=$6, end_date=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		team.Name,
		team.Module,
		team.Timezone,
		team.OfficeHours,
		team.ExternalCalendars,
		team.Inactive,
		team.EndDate,
		team.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	const query = `
        SELECT id, name, module, timezone, office_hours, external_calendars, inactive, end_date, created_at, updated_at
        FROM teams WHERE id=$1`
	var team domain.Team
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Module,
		&team.Timezone,
		&team.OfficeHours,
		&team.ExternalCalendars,
		&team.Inactive,
		&team.EndDate,
		&team.CreatedAt,
		&team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByIDs(ctx context.Context, ids []string) (map[string]*domain.Team, error) {
	const query = `
        SELECT id, name, module, timezone, office_hours, external_calendars, inactive, end_date, created_at, updated_at
        FROM teams WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]*domain.Team, len(ids))
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Module,
			&team.Timezone,
			&team.OfficeHours,
			&team.ExternalCalendars,
			&team.Inactive,
			&team.EndDate,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result[team.ID] = &team
	}
	return result, rows.Err()
}
