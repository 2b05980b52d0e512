package service

import (
	"context"
	"fmt"

	"github.com/zafesys/suite/internal/entity"
)

// InstallationAnalytics summarizes completed installations scheduled in the period.
// Missing bounds default to the current Colombia month up to today.
func (s *Service) InstallationAnalytics(ctx context.Context, f entity.AnalyticsFilter) (entity.InstallationAnalytics, error) {
	today := entity.NewDate(s.now())

	if f.Start.IsZero() {
		f.Start = entity.FromCivil(today.AddDate(0, 0, 1-today.Day()))
	}

	if f.End.IsZero() {
		f.End = today
	}

	err := f.Validate()
	if err != nil {
		return entity.InstallationAnalytics{}, err
	}

	completed := entity.InstallationCompleted

	installations, err := s.repo.Installations(ctx, entity.InstallationFilter{
		Status:       &completed,
		TechnicianID: f.TechnicianID,
		DateFrom:     &f.Start,
		DateTo:       &f.End,
	})
	if err != nil {
		return entity.InstallationAnalytics{}, fmt.Errorf("get completed installations: %w", err)
	}

	return entity.BuildInstallationAnalytics(f.Start, f.End, installations), nil
}
