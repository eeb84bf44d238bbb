package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// TeamMemberRepository manages persistence for team memberships.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMembership) error
	ListAll(ctx context.Context) ([]domain.TeamMembership, error)
	ListByAgent(ctx context.Context, agentID string) ([]domain.TeamMembership, error)
	GetActiveByTeamAndAgent(ctx context.Context, teamID, agentID string) (*domain.TeamMembership, error)
}

type teamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewTeamMemberRepository constructs repository.
func NewTeamMemberRepository(pool *pgxpool.Pool) TeamMemberRepository {
	return &teamMemberRepository{pool: pool}
}

func (r *teamMemberRepository) Create(ctx context.Context, member *domain.TeamMembership) error {
	const query = `
        INSERT INTO team_members (team_id, agent_id, functional_roles, inactive, end_date)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		member.TeamID,
		member.AgentID,
		member.FunctionalRoles,
		member.Inactive,
		member.EndDate,
	).Scan(&member.ID, &member.CreatedAt, &member.UpdatedAt)
}

func (r *teamMemberRepository) ListAll(ctx context.Context) ([]domain.TeamMembership, error) {
	const query = `
        SELECT id, team_id, agent_id, functional_roles, inactive, end_date, created_at, updated_at
        FROM team_members`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMemberships(rows)
}

func (r *teamMemberRepository) ListByAgent(ctx context.Context, agentID string) ([]domain.TeamMembership, error) {
	const query = `
        SELECT id, team_id, agent_id, functional_roles, inactive, end_date, created_at, updated_at
        FROM team_members WHERE agent_id=$1`
	rows, err := r.pool.Query(ctx, query, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMemberships(rows)
}

func (r *teamMemberRepository) GetActiveByTeamAndAgent(ctx context.Context, teamID, agentID string) (*domain.TeamMembership, error) {
	const query = `
        SELECT id, team_id, agent_id, functional_roles, inactive, end_date, created_at, updated_at
        FROM team_members
        WHERE team_id=$1 AND agent_id=$2 AND inactive=FALSE AND end_date IS NULL`
	var member domain.TeamMembership
	if err := r.pool.QueryRow(ctx, query, teamID, agentID).Scan(
		&member.ID,
		&member.TeamID,
		&member.AgentID,
		&member.FunctionalRoles,
		&member.Inactive,
		&member.EndDate,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

func scanMemberships(rows pgx.Rows) ([]domain.TeamMembership, error) {
	var result []domain.TeamMembership
	for rows.Next() {
		var member domain.TeamMembership
		if err := rows.Scan(
			&member.ID,
			&member.TeamID,
			&member.AgentID,
			&member.FunctionalRoles,
			&member.Inactive,
			&member.EndDate,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}
