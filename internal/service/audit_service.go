package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/leasing-crm/internal/domain"
	"github.com/spec-kit/leasing-crm/internal/events"
	"github.com/spec-kit/leasing-crm/internal/repository"
)

// AuditService records domain events to the audit log.
type AuditService struct {
	dispatcher events.Dispatcher
	audit      repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, audit repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, audit: audit, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventAppointmentBooked, a.record)
	a.dispatcher.Subscribe(events.EventAvailabilitySet, a.record)
	a.dispatcher.Subscribe(events.EventAvailabilityCleared, a.record)
	a.dispatcher.Subscribe(events.EventCalendarEventPosted, a.record)
}

func (a *AuditService) record(ctx context.Context, event events.Event) error {
	payload := map[string]any{}
	if raw, err := json.Marshal(event.Payload); err == nil {
		_ = json.Unmarshal(raw, &payload)
	}

	entry := &domain.AuditEntry{
		EventType: string(event.Type),
		SubjectID: event.SubjectID,
		Payload:   payload,
	}
	if err := a.audit.Insert(ctx, entry); err != nil {
		a.logger.Error("audit insert failed",
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return err
	}
	a.logger.Debug("audit recorded",
		zap.String("event_type", string(event.Type)),
		zap.String("subject_id", event.SubjectID))
	return nil
}
