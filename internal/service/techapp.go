package service

import (
	"context"
	"fmt"

	"github.com/zafesys/suite/internal/entity"
)

// Operations of the technician app. technicianID always comes from the technician token.

func (s *Service) MyInstallations(ctx context.Context, technicianID int64, date entity.Date) (entity.TechnicianDaySchedule, error) {
	return s.daySchedule(ctx, technicianID, date)
}

func (s *Service) MyInstallation(ctx context.Context, technicianID, installationID int64) (entity.Installation, error) {
	return s.ownedInstallation(ctx, technicianID, installationID)
}

// SetMyInstallationStatus lets a technician report progress. Only en_camino,
// en_progreso and completada are accepted.
func (s *Service) SetMyInstallationStatus(
	ctx context.Context,
	technicianID, installationID int64,
	status entity.InstallationStatus,
) (entity.Installation, error) {
	if !status.TechnicianSettable() {
		return entity.Installation{}, fmt.Errorf("status %q: %w", status, entity.ErrStatusNotAllowed)
	}

	inst, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.Installation{}, err
	}

	from := inst.Status
	inst.SetStatus(status, s.now())

	return s.saveInstallation(ctx, inst, from, inst.AmountPaid)
}

// ConfirmPayment adds the amount collected on site to the installation.
func (s *Service) ConfirmPayment(
	ctx context.Context,
	technicianID, installationID int64,
	p entity.PaymentConfirmation,
) (entity.Installation, error) {
	inst, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.Installation{}, err
	}

	paid := inst.AmountPaid

	err = inst.ApplyPayment(p.Amount, p.Method)
	if err != nil {
		return entity.Installation{}, err
	}

	return s.saveInstallation(ctx, inst, inst.Status, paid)
}

func (s *Service) CompleteMyInstallation(
	ctx context.Context,
	technicianID, installationID int64,
	c entity.InstallationComplete,
) (entity.Installation, error) {
	inst, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.Installation{}, err
	}

	from := inst.Status
	inst.Complete(c, s.now())

	return s.saveInstallation(ctx, inst, from, inst.AmountPaid)
}

func (s *Service) StartMyTimer(ctx context.Context, technicianID, installationID int64) (entity.TimerStatus, error) {
	inst, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.TimerStatus{}, err
	}

	return s.startTimer(ctx, inst, entity.TimerByTechnician)
}

func (s *Service) StopMyTimer(ctx context.Context, technicianID, installationID int64) (entity.TimerStatus, error) {
	inst, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.TimerStatus{}, err
	}

	return s.stopTimer(ctx, inst)
}

func (s *Service) MyTimer(ctx context.Context, technicianID, installationID int64) (entity.TimerStatus, error) {
	inst, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.TimerStatus{}, err
	}

	return entity.NewTimerStatus(inst, s.now()), nil
}

func (s *Service) SetMyAvailability(ctx context.Context, technicianID int64, available bool) (entity.Technician, error) {
	return s.SetTechnicianAvailability(ctx, technicianID, available)
}

func (s *Service) MyProfile(ctx context.Context, technicianID int64) (entity.Technician, error) {
	return s.Technician(ctx, technicianID)
}

// MyMediaUploadURL presigns an upload for an installation assigned to the technician.
func (s *Service) MyMediaUploadURL(
	ctx context.Context,
	technicianID, installationID int64,
	m entity.MediaType,
) (entity.MediaUpload, error) {
	_, err := s.ownedInstallation(ctx, technicianID, installationID)
	if err != nil {
		return entity.MediaUpload{}, err
	}

	return s.MediaUploadURL(ctx, installationID, m)
}

func (s *Service) ownedInstallation(ctx context.Context, technicianID, installationID int64) (entity.Installation, error) {
	inst, err := s.repo.Installation(ctx, installationID)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get installation %d: %w", installationID, err)
	}

	if !inst.AssignedTo(technicianID) {
		return entity.Installation{}, fmt.Errorf("installation %d: %w", installationID, entity.ErrInstallationNotOwned)
	}

	return inst, nil
}
