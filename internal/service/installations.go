package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/timezone"
)

const (
	defaultEstimatedDuration = 60
	mediaFileIDLen           = 8
)

func (s *Service) Installations(ctx context.Context, f entity.InstallationFilter) ([]entity.Installation, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, entity.ErrInvalidStatus
	}

	f.Page = f.Page.Normalize()

	list, err := s.repo.Installations(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get installations: %w", err)
	}

	return list, nil
}

func (s *Service) PendingInstallations(ctx context.Context) ([]entity.Installation, error) {
	pending := entity.InstallationPending
	return s.Installations(ctx, entity.InstallationFilter{Status: &pending})
}

// InstallationsByDate lists installations scheduled on a Colombia calendar date.
func (s *Service) InstallationsByDate(ctx context.Context, date entity.Date, technicianID *int64) ([]entity.Installation, error) {
	list, err := s.repo.Installations(ctx, entity.InstallationFilter{
		TechnicianID: technicianID,
		DateFrom:     &date,
		DateTo:       &date,
	})
	if err != nil {
		return nil, fmt.Errorf("get installations on %s: %w", date, err)
	}

	return list, nil
}

// InstallationCalendar places the installations of a Monday based week on its days.
// offset shifts the week containing date by whole weeks.
func (s *Service) InstallationCalendar(
	ctx context.Context,
	date entity.Date,
	offset int,
	technicianID *int64,
) (entity.CalendarWeek, error) {
	if date.IsZero() {
		date = entity.NewDate(s.now())
	}

	w := entity.WeekOf(date, offset)

	list, err := s.repo.Installations(ctx, entity.InstallationFilter{
		TechnicianID: technicianID,
		DateFrom:     &w.Start,
		DateTo:       &w.End,
	})
	if err != nil {
		return entity.CalendarWeek{}, fmt.Errorf("get installations %s..%s: %w", w.Start, w.End, err)
	}

	return entity.BuildCalendarWeek(w, list), nil
}

func (s *Service) InstallationStats(ctx context.Context) (entity.InstallationStats, error) {
	stats, err := s.repo.InstallationStats(ctx, entity.NewDate(s.now()))
	if err != nil {
		return entity.InstallationStats{}, fmt.Errorf("get installation stats: %w", err)
	}

	return stats, nil
}

func (s *Service) Installation(ctx context.Context, id int64) (entity.Installation, error) {
	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	return inst, nil
}

// CreateInstallation schedules an installation for a lead and takes its units out of stock.
// Without an explicit total the price is quoted from the product.
func (s *Service) CreateInstallation(ctx context.Context, c entity.InstallationCreate) (entity.Installation, error) {
	err := c.Validate()
	if err != nil {
		return entity.Installation{}, err
	}

	_, err = s.repo.Lead(ctx, c.LeadID)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get lead %d: %w", c.LeadID, asInvalid(err))
	}

	product, err := s.repo.Product(ctx, c.ProductID)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get product %d: %w", c.ProductID, asInvalid(err))
	}

	if product.Stock < c.Quantity {
		return entity.Installation{}, fmt.Errorf("%w: available %d", entity.ErrInsufficientStock, product.Stock)
	}

	if c.TechnicianID != nil {
		_, err = s.repo.Technician(ctx, *c.TechnicianID)
		if err != nil {
			return entity.Installation{}, fmt.Errorf("get technician %d: %w", *c.TechnicianID, asInvalid(err))
		}
	}

	total, err := s.installationTotal(c, product)
	if err != nil {
		return entity.Installation{}, err
	}

	if c.CustomerID == nil {
		customer, err := s.repo.CustomerByLead(ctx, c.LeadID)
		if err == nil {
			c.CustomerID = &customer.ID
		}
	}

	inst, err := s.repo.CreateInstallation(ctx, entity.Installation{
		LeadID:            c.LeadID,
		CustomerID:        c.CustomerID,
		ProductID:         c.ProductID,
		Quantity:          c.Quantity,
		TechnicianID:      c.TechnicianID,
		ScheduledDate:     c.ScheduledDate,
		ScheduledTime:     c.ScheduledTime,
		EstimatedDuration: defaultEstimatedDuration,
		Address:           c.Address,
		City:              c.City,
		AddressNotes:      c.AddressNotes,
		Status:            c.InitialStatus(),
		TotalPrice:        total,
		PaymentStatus:     entity.PaymentPending,
		AmountPaid:        decimal.Zero,
		CustomerNotes:     c.CustomerNotes,
		PhotosBefore:      []string{},
		PhotosAfter:       []string{},
	}, actor(ctx))
	if err != nil {
		return entity.Installation{}, fmt.Errorf("create installation: %w", err)
	}

	slog.InfoContext(ctx, "installation created",
		"installation_id", inst.ID, "lead_id", inst.LeadID, "product_id", inst.ProductID, "quantity", inst.Quantity)
	s.events.Publish(ctx, entity.EventInstallationCreated, installationKey(inst.ID), inst)

	return inst, nil
}

func (s *Service) installationTotal(c entity.InstallationCreate, p entity.Product) (decimal.Decimal, error) {
	if c.TotalPrice != nil {
		return *c.TotalPrice, nil
	}

	in := entity.QuoteInput{
		UnitPrice:         p.Price,
		Quantity:          c.Quantity,
		InstallationPrice: p.InstallationPrice,
	}

	if c.Adjustment != nil {
		in.Adjustment = *c.Adjustment
	}

	q, err := entity.Quote(in)
	if err != nil {
		return decimal.Zero, err
	}

	return q.Total, nil
}

// QuoteInstallation prices an installation of quantity units of a product.
func (s *Service) QuoteInstallation(
	ctx context.Context,
	productID int64,
	quantity int,
	adj entity.Adjustment,
) (entity.PriceBreakdown, error) {
	p, err := s.repo.Product(ctx, productID)
	if err != nil {
		return entity.PriceBreakdown{}, fmt.Errorf("get product %d: %w", productID, err)
	}

	return entity.Quote(entity.QuoteInput{
		UnitPrice:         p.Price,
		Quantity:          quantity,
		InstallationPrice: p.InstallationPrice,
		Adjustment:        adj,
	})
}

func (s *Service) UpdateInstallation(ctx context.Context, id int64, u entity.InstallationUpdate) (entity.Installation, error) {
	err := u.Validate()
	if err != nil {
		return entity.Installation{}, err
	}

	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	if u.TechnicianID != nil && !inst.AssignedTo(*u.TechnicianID) {
		_, err = s.repo.Technician(ctx, *u.TechnicianID)
		if err != nil {
			return entity.Installation{}, fmt.Errorf("get technician %d: %w", *u.TechnicianID, asInvalid(err))
		}
	}

	if u.ProductID != nil && *u.ProductID != inst.ProductID {
		_, err = s.repo.Product(ctx, *u.ProductID)
		if err != nil {
			return entity.Installation{}, fmt.Errorf("get product %d: %w", *u.ProductID, asInvalid(err))
		}
	}

	from := inst.Status
	paid := inst.AmountPaid

	u.Apply(&inst, s.now())

	return s.saveInstallation(ctx, inst, from, paid)
}

func (s *Service) UpdateInstallationStatus(
	ctx context.Context,
	id int64,
	status entity.InstallationStatus,
) (entity.Installation, error) {
	if !status.IsValid() {
		return entity.Installation{}, entity.ErrInvalidStatus
	}

	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	from := inst.Status
	inst.SetStatus(status, s.now())

	return s.saveInstallation(ctx, inst, from, inst.AmountPaid)
}

// UpdateInstallationPayment overwrites the payment fields with the values given.
func (s *Service) UpdateInstallationPayment(
	ctx context.Context,
	id int64,
	u entity.InstallationPaymentUpdate,
) (entity.Installation, error) {
	err := u.Validate()
	if err != nil {
		return entity.Installation{}, err
	}

	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	paid := inst.AmountPaid

	inst.PaymentStatus = u.PaymentStatus
	inst.AmountPaid = u.AmountPaid

	if u.PaymentMethod != nil {
		inst.PaymentMethod = u.PaymentMethod
	}

	return s.saveInstallation(ctx, inst, inst.Status, paid)
}

func (s *Service) CompleteInstallation(
	ctx context.Context,
	id int64,
	c entity.InstallationComplete,
) (entity.Installation, error) {
	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.Installation{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	from := inst.Status
	inst.Complete(c, s.now())

	return s.saveInstallation(ctx, inst, from, inst.AmountPaid)
}

// StartTimer starts the installation stopwatch. Starting a running timer returns its status unchanged.
func (s *Service) StartTimer(ctx context.Context, id int64, by entity.TimerStartedBy) (entity.TimerStatus, error) {
	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.TimerStatus{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	return s.startTimer(ctx, inst, by)
}

func (s *Service) startTimer(ctx context.Context, inst entity.Installation, by entity.TimerStartedBy) (entity.TimerStatus, error) {
	now := s.now()

	started, err := inst.StartTimer(by, now)
	if err != nil {
		return entity.TimerStatus{}, err
	}

	if started {
		inst, err = s.repo.UpdateInstallation(ctx, inst, actor(ctx))
		if err != nil {
			return entity.TimerStatus{}, fmt.Errorf("start timer of installation %d: %w", inst.ID, err)
		}

		slog.InfoContext(ctx, "installation timer started", "installation_id", inst.ID, "started_by", by)
	}

	return entity.NewTimerStatus(inst, now), nil
}

func (s *Service) StopTimer(ctx context.Context, id int64) (entity.TimerStatus, error) {
	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.TimerStatus{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	return s.stopTimer(ctx, inst)
}

func (s *Service) stopTimer(ctx context.Context, inst entity.Installation) (entity.TimerStatus, error) {
	now := s.now()

	err := inst.StopTimer(now)
	if err != nil {
		return entity.TimerStatus{}, err
	}

	inst, err = s.repo.UpdateInstallation(ctx, inst, actor(ctx))
	if err != nil {
		return entity.TimerStatus{}, fmt.Errorf("stop timer of installation %d: %w", inst.ID, err)
	}

	slog.InfoContext(ctx, "installation timer stopped", "installation_id", inst.ID, "duration_minutes", *inst.DurationMinutes)

	return entity.NewTimerStatus(inst, now), nil
}

func (s *Service) Timer(ctx context.Context, id int64) (entity.TimerStatus, error) {
	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.TimerStatus{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	return entity.NewTimerStatus(inst, s.now()), nil
}

// DeleteInstallation removes the installation. Units of an installation that was
// never completed go back to stock.
func (s *Service) DeleteInstallation(ctx context.Context, id int64) error {
	err := s.repo.DeleteInstallation(ctx, id, actor(ctx))
	if err != nil {
		return fmt.Errorf("delete installation %d: %w", id, err)
	}

	slog.InfoContext(ctx, "installation deleted", "installation_id", id)

	return nil
}

// MediaUploadURL issues a presigned PUT URL for a photo, signature or video of the installation.
func (s *Service) MediaUploadURL(ctx context.Context, id int64, m entity.MediaType) (entity.MediaUpload, error) {
	if !m.IsValid() {
		return entity.MediaUpload{}, entity.ErrInvalidMediaType
	}

	if s.media == nil {
		return entity.MediaUpload{}, fmt.Errorf("media storage: %w", entity.ErrUnavailable)
	}

	inst, err := s.repo.Installation(ctx, id)
	if err != nil {
		return entity.MediaUpload{}, fmt.Errorf("get installation %d: %w", id, err)
	}

	clientName := "cliente"
	if inst.LeadName != nil && *inst.LeadName != "" {
		clientName = *inst.LeadName
	}

	now := s.now()
	fileID := uuid.Must(uuid.NewV4()).String()[:mediaFileIDLen]
	key := entity.MediaKey(timezone.ToColombia(now), id, clientName, m, fileID)
	ttl := s.cfg.Storage.UploadURLTTL
	_, contentType := m.Extension()

	uploadURL, publicURL, err := s.media.PresignUpload(ctx, key, ttl)
	if err != nil {
		return entity.MediaUpload{}, fmt.Errorf("presign upload for installation %d: %w", id, err)
	}

	return entity.MediaUpload{
		UploadURL:   uploadURL,
		PublicURL:   publicURL,
		Key:         key,
		ContentType: contentType,
		ExpiresAt:   now.Add(ttl).UTC(),
	}, nil
}

// saveInstallation stores inst and publishes status and payment events against the previous values.
func (s *Service) saveInstallation(
	ctx context.Context,
	inst entity.Installation,
	from entity.InstallationStatus,
	paidBefore decimal.Decimal,
) (entity.Installation, error) {
	inst, err := s.repo.UpdateInstallation(ctx, inst, actor(ctx))
	if err != nil {
		return entity.Installation{}, fmt.Errorf("update installation %d: %w", inst.ID, err)
	}

	key := installationKey(inst.ID)

	if inst.Status != from {
		slog.InfoContext(ctx, "installation status changed", "installation_id", inst.ID, "from", from, "to", inst.Status)
		s.events.Publish(ctx, entity.EventInstallationStatus, key, entity.InstallationStatusChanged{
			InstallationID: inst.ID,
			TechnicianID:   inst.TechnicianID,
			From:           from,
			To:             inst.Status,
		})

		if inst.Status == entity.InstallationCompleted {
			s.events.Publish(ctx, entity.EventInstallationCompleted, key, inst)
		}
	}

	if inst.AmountPaid.GreaterThan(paidBefore) {
		slog.InfoContext(ctx, "installation payment received",
			"installation_id", inst.ID, "amount_paid", inst.AmountPaid, "payment_status", inst.PaymentStatus)
		s.events.Publish(ctx, entity.EventPaymentReceived, key, inst)
	}

	return inst, nil
}

// asInvalid reports a missing referenced record as a bad request.
func asInvalid(err error) error {
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: %v", entity.ErrInvalidArgument, err)
	}

	return err
}

func installationKey(id int64) string {
	return "installation-" + strconv.FormatInt(id, 10)
}
