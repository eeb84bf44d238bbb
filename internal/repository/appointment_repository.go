package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/leasing-crm/internal/domain"
)

// AppointmentRepository manages persistence for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	Cancel(ctx context.Context, id string) error
	ListForAgentsInRange(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.Appointment, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository constructs repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (agent_id, party_ref, start_at, end_at, canceled)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		appointment.AgentID,
		appointment.PartyRef,
		appointment.StartAt,
		appointment.EndAt,
		appointment.Canceled,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) Cancel(ctx context.Context, id string) error {
	const query = `UPDATE appointments SET canceled=TRUE, updated_at=NOW() WHERE id=$1 AND canceled=FALSE`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) ListForAgentsInRange(ctx context.Context, agentIDs []string, from, to time.Time) ([]domain.Appointment, error) {
	const query = `
        SELECT id, agent_id, party_ref, start_at, end_at, canceled, created_at, updated_at
        FROM appointments
        WHERE agent_id = ANY($1) AND canceled=FALSE AND start_at < $3 AND end_at > $2`
	rows, err := r.pool.Query(ctx, query, agentIDs, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.AgentID,
			&appointment.PartyRef,
			&appointment.StartAt,
			&appointment.EndAt,
			&appointment.Canceled,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, appointment)
	}
	return result, rows.Err()
}
