package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// CalendarEventRepository manages persistence for team and agent calendar events.
type CalendarEventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	SoftDelete(ctx context.Context, id string) error
	ListTeamEventsInRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.CalendarEvent, error)
	ListAgentEventsInRange(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.CalendarEvent, error)
}

type calendarEventRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarEventRepository constructs repository.
func NewCalendarEventRepository(pool *pgxpool.Pool) CalendarEventRepository {
	return &calendarEventRepository{pool: pool}
}

func (r *calendarEventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	const query = `
        INSERT INTO calendar_events (team_id, agent_id, start_at, end_at, kind)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	var kind *string
	if event.Kind != nil {
		k := string(*event.Kind)
		kind = &k
	}
	return r.pool.QueryRow(ctx, query,
		event.TeamID,
		event.AgentID,
		event.StartAt,
		event.EndAt,
		kind,
	).Scan(&event.ID, &event.CreatedAt)
}

func (r *calendarEventRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE calendar_events SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *calendarEventRepository) ListTeamEventsInRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.CalendarEvent, error) {
	const query = `
        SELECT id, team_id, agent_id, start_at, end_at, kind, deleted_at, created_at
        FROM calendar_events
        WHERE team_id=$1 AND deleted_at IS NULL AND start_at < $3 AND end_at > $2`
	rows, err := r.pool.Query(ctx, query, teamID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (r *calendarEventRepository) ListAgentEventsInRange(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.CalendarEvent, error) {
	const query = `
        SELECT id, team_id, agent_id, start_at, end_at, kind, deleted_at, created_at
        FROM calendar_events
        WHERE agent_id = ANY($1) AND deleted_at IS NULL AND start_at < $3 AND end_at > $2`
	rows, err := r.pool.Query(ctx, query, agentIDs, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]domain.CalendarEvent, error) {
	var result []domain.CalendarEvent
	for rows.Next() {
		var event domain.CalendarEvent
		var kind *string
		if err := rows.Scan(
			&event.ID,
			&event.TeamID,
			&event.AgentID,
			&event.StartAt,
			&event.EndAt,
			&kind,
			&event.DeletedAt,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		if kind != nil {
			k := domain.EventKind(*kind)
			event.Kind = &k
		}
		result = append(result, event)
	}
	return result, rows.Err()
}
