package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/zafesys/suite/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -typed

type Service interface {
	RecordLocation(ctx context.Context, l entity.TechnicianLocation) (entity.TechnicianLocation, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// LocationReportedEvent is a GPS fix published by the technician app gateway.
type LocationReportedEvent struct {
	TechnicianID int64      `json:"technician_id"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Accuracy     *float64   `json:"accuracy,omitempty"`
	RecordedAt   *time.Time `json:"recorded_at,omitempty"`
}

// OnLocationReported stores a GPS fix. Malformed or out of range fixes are
// logged and dropped so they do not block the partition.
func (h *EventHandler) OnLocationReported(ctx context.Context, msg kafka.Message) error {
	var event LocationReportedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		slog.WarnContext(ctx, "drop malformed location event", "error", err, "offset", msg.Offset)
		return nil
	}

	l := entity.TechnicianLocation{
		TechnicianID: event.TechnicianID,
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		Accuracy:     event.Accuracy,
	}

	if event.RecordedAt != nil {
		l.RecordedAt = *event.RecordedAt
	}

	_, err = h.s.RecordLocation(ctx, l)
	if errors.Is(err, entity.ErrInvalidArgument) || errors.Is(err, entity.ErrConflict) {
		slog.WarnContext(ctx, "drop invalid location event", "error", err, "technician_id", event.TechnicianID)
		return nil
	}

	if err != nil {
		return fmt.Errorf("record location: %w", err)
	}

	return nil
}
