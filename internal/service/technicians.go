package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zafesys/suite/internal/entity"
)

const defaultLocationHistoryLimit = 100

func (s *Service) Technicians(ctx context.Context, activeOnly bool) ([]entity.Technician, error) {
	list, err := s.repo.Technicians(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("get technicians: %w", err)
	}

	return list, nil
}

func (s *Service) AvailableTechnicians(ctx context.Context) ([]entity.Technician, error) {
	list, err := s.repo.AvailableTechnicians(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available technicians: %w", err)
	}

	return list, nil
}

func (s *Service) Technician(ctx context.Context, id int64) (entity.Technician, error) {
	t, err := s.repo.Technician(ctx, id)
	if err != nil {
		return entity.Technician{}, fmt.Errorf("get technician %d: %w", id, err)
	}

	return t, nil
}

// TechnicianSchedule lists the open installations of a technician on a date.
// A zero date means today in Colombia.
func (s *Service) TechnicianSchedule(ctx context.Context, id int64, date entity.Date) (entity.TechnicianDaySchedule, error) {
	_, err := s.repo.Technician(ctx, id)
	if err != nil {
		return entity.TechnicianDaySchedule{}, fmt.Errorf("get technician %d: %w", id, err)
	}

	return s.daySchedule(ctx, id, date)
}

func (s *Service) daySchedule(ctx context.Context, technicianID int64, date entity.Date) (entity.TechnicianDaySchedule, error) {
	if date.IsZero() {
		date = entity.NewDate(s.now())
	}

	list, err := s.repo.Installations(ctx, entity.InstallationFilter{
		TechnicianID:  &technicianID,
		DateFrom:      &date,
		DateTo:        &date,
		ExcludeClosed: true,
	})
	if err != nil {
		return entity.TechnicianDaySchedule{}, fmt.Errorf("get installations of technician %d on %s: %w", technicianID, date, err)
	}

	return entity.TechnicianDaySchedule{
		Date:          date.String(),
		Installations: list,
		TotalCount:    len(list),
	}, nil
}

func (s *Service) CreateTechnician(ctx context.Context, c entity.TechnicianCreate) (entity.Technician, error) {
	err := c.Validate()
	if err != nil {
		return entity.Technician{}, err
	}

	_, err = s.repo.TechnicianByPhone(ctx, c.Phone)
	if err == nil {
		return entity.Technician{}, fmt.Errorf("technician with phone %s: %w", c.Phone, entity.ErrAlreadyExists)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Technician{}, fmt.Errorf("get technician by phone: %w", err)
	}

	t, err := s.repo.CreateTechnician(ctx, c)
	if err != nil {
		return entity.Technician{}, fmt.Errorf("create technician: %w", err)
	}

	slog.InfoContext(ctx, "technician created", "technician_id", t.ID)

	return t, nil
}

func (s *Service) UpdateTechnician(ctx context.Context, id int64, u entity.TechnicianUpdate) (entity.Technician, error) {
	if (u.FullName != nil && *u.FullName == "") || (u.Phone != nil && *u.Phone == "") {
		return entity.Technician{}, entity.ErrInvalidArgument
	}

	t, err := s.repo.Technician(ctx, id)
	if err != nil {
		return entity.Technician{}, fmt.Errorf("get technician %d: %w", id, err)
	}

	u.Apply(&t)

	t, err = s.repo.UpdateTechnician(ctx, t)
	if err != nil {
		return entity.Technician{}, fmt.Errorf("update technician %d: %w", id, err)
	}

	return t, nil
}

func (s *Service) SetTechnicianAvailability(ctx context.Context, id int64, available bool) (entity.Technician, error) {
	t, err := s.repo.SetTechnicianAvailability(ctx, id, available)
	if err != nil {
		return entity.Technician{}, fmt.Errorf("set availability of technician %d: %w", id, err)
	}

	slog.InfoContext(ctx, "technician availability changed", "technician_id", id, "is_available", available)

	return t, nil
}

func (s *Service) DeleteTechnician(ctx context.Context, id int64) error {
	err := s.repo.DeleteTechnician(ctx, id)
	if err != nil {
		return fmt.Errorf("delete technician %d: %w", id, err)
	}

	slog.InfoContext(ctx, "technician deleted", "technician_id", id)

	return nil
}

// RecordLocation stores a GPS fix. A missing timestamp is taken as now.
func (s *Service) RecordLocation(ctx context.Context, l entity.TechnicianLocation) (entity.TechnicianLocation, error) {
	err := l.Validate()
	if err != nil {
		return entity.TechnicianLocation{}, err
	}

	if l.RecordedAt.IsZero() {
		l.RecordedAt = s.now()
	}

	l.RecordedAt = l.RecordedAt.UTC()

	l, err = s.repo.SaveLocation(ctx, l)
	if err != nil {
		return entity.TechnicianLocation{}, fmt.Errorf("save location of technician %d: %w", l.TechnicianID, err)
	}

	slog.DebugContext(ctx, "technician location recorded",
		"technician_id", l.TechnicianID, "latitude", l.Latitude, "longitude", l.Longitude)

	return l, nil
}

// LatestLocations returns every active technician with its last known position, if any.
func (s *Service) LatestLocations(ctx context.Context) ([]entity.TechnicianPosition, error) {
	list, err := s.repo.LatestLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest locations: %w", err)
	}

	return list, nil
}

func (s *Service) LocationHistory(ctx context.Context, f entity.LocationHistoryFilter) ([]entity.TechnicianLocation, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, fmt.Errorf("%w: history range ends before it starts", entity.ErrInvalidArgument)
	}

	if f.Limit == 0 {
		f.Limit = defaultLocationHistoryLimit
	}

	if f.Limit > entity.MaxLimit {
		f.Limit = entity.MaxLimit
	}

	list, err := s.repo.LocationHistory(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get location history of technician %d: %w", f.TechnicianID, err)
	}

	return list, nil
}

// PurgeLocations deletes GPS history recorded before now minus retention.
func (s *Service) PurgeLocations(ctx context.Context, retention time.Duration) error {
	before := s.now().Add(-retention)

	n, err := s.repo.DeleteLocationsBefore(ctx, before)
	if err != nil {
		return fmt.Errorf("delete locations before %s: %w", before.Format(time.RFC3339), err)
	}

	slog.InfoContext(ctx, "old technician locations deleted", "deleted", n, "before", before)

	return nil
}
