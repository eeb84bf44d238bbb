package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// FloatingAvailabilityRepository manages the day-by-day floating agent
// opt-in records. The unique index on (agent_id, day) guarantees an agent is
// never visible as covering two teams on the same day, even under concurrent
// writers.
type FloatingAvailabilityRepository interface {
	Upsert(ctx context.Context, record *domain.FloatingAvailability) error
	DeleteForDay(ctx context.Context, agentID, day string) error
	ListForAgentsAndTeam(ctx context.Context, agentIDs []string, teamID, fromDay, toDay string) ([]domain.FloatingAvailability, error)
	ListForAgent(ctx context.Context, agentID, fromDay, toDay string) ([]domain.FloatingAvailability, error)
}

type floatingAvailabilityRepository struct {
	pool *pgxpool.Pool
}

// NewFloatingAvailabilityRepository constructs repository.
func NewFloatingAvailabilityRepository(pool *pgxpool.Pool) FloatingAvailabilityRepository {
	return &floatingAvailabilityRepository{pool: pool}
}

// Upsert atomically replaces the agent's record for the day, whichever team
// it previously pointed at.
func (r *floatingAvailabilityRepository) Upsert(ctx context.Context, record *domain.FloatingAvailability) error {
	const query = `
        INSERT INTO floating_agent_availability (team_member_id, agent_id, team_id, day)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (agent_id, day)
        DO UPDATE SET team_member_id=EXCLUDED.team_member_id, team_id=EXCLUDED.team_id
        RETURNING id, created_at`
	day, err := time.Parse(domain.DateISOFormat, record.Day)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, query,
		record.TeamMemberID,
		record.AgentID,
		record.TeamID,
		day,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *floatingAvailabilityRepository) DeleteForDay(ctx context.Context, agentID, day string) error {
	const query = `DELETE FROM floating_agent_availability WHERE agent_id=$1 AND day=$2`
	parsed, err := time.Parse(domain.DateISOFormat, day)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query, agentID, parsed)
	return err
}

func (r *floatingAvailabilityRepository) ListForAgentsAndTeam(ctx context.Context, agentIDs []string, teamID, fromDay, toDay string) ([]domain.FloatingAvailability, error) {
	const query = `
        SELECT id, team_member_id, agent_id, team_id, day, created_at
        FROM floating_agent_availability
        WHERE agent_id = ANY($1) AND team_id=$2 AND day BETWEEN $3 AND $4
        ORDER BY day`
	rows, err := r.pool.Query(ctx, query, agentIDs, teamID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAvailabilities(rows)
}

func (r *floatingAvailabilityRepository) ListForAgent(ctx context.Context, agentID, fromDay, toDay string) ([]domain.FloatingAvailability, error) {
	const query = `
        SELECT id, team_member_id, agent_id, team_id, day, created_at
        FROM floating_agent_availability
        WHERE agent_id=$1 AND day BETWEEN $2 AND $3
        ORDER BY day`
	rows, err := r.pool.Query(ctx, query, agentID, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAvailabilities(rows)
}

func scanAvailabilities(rows pgx.Rows) ([]domain.FloatingAvailability, error) {
	var result []domain.FloatingAvailability
	for rows.Next() {
		var record domain.FloatingAvailability
		var day time.Time
		if err := rows.Scan(
			&record.ID,
			&record.TeamMemberID,
			&record.AgentID,
			&record.TeamID,
			&day,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		record.Day = day.Format(domain.DateISOFormat)
		result = append(result, record)
	}
	return result, rows.Err()
}
