package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type InstallationStatus string

const (
	InstallationPending    InstallationStatus = "pendiente"
	InstallationScheduled  InstallationStatus = "programada"
	InstallationOnTheWay   InstallationStatus = "en_camino"
	InstallationInProgress InstallationStatus = "en_progreso"
	InstallationCompleted  InstallationStatus = "completada"
	InstallationCancelled  InstallationStatus = "cancelada"
)

var InstallationStatuses = []InstallationStatus{
	InstallationPending,
	InstallationScheduled,
	InstallationOnTheWay,
	InstallationInProgress,
	InstallationCompleted,
	InstallationCancelled,
}

func (s InstallationStatus) IsValid() bool {
	switch s {
	case InstallationPending, InstallationScheduled, InstallationOnTheWay,
		InstallationInProgress, InstallationCompleted, InstallationCancelled:
		return true
	}

	return false
}

// IsClosed reports whether the installation left the technician's agenda.
func (s InstallationStatus) IsClosed() bool {
	return s == InstallationCompleted || s == InstallationCancelled
}

// TechnicianSettable are the statuses a technician may set from the app.
func (s InstallationStatus) TechnicianSettable() bool {
	return s == InstallationOnTheWay || s == InstallationInProgress || s == InstallationCompleted
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pendiente"
	PaymentPartial PaymentStatus = "parcial"
	PaymentPaid    PaymentStatus = "pagado"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return true
	}

	return false
}

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "efectivo"
	PaymentTransfer  PaymentMethod = "transferencia"
	PaymentCard      PaymentMethod = "tarjeta"
	PaymentNequi     PaymentMethod = "nequi"
	PaymentDaviplata PaymentMethod = "daviplata"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard, PaymentNequi, PaymentDaviplata:
		return true
	}

	return false
}

type TimerStartedBy string

const (
	TimerByAdmin      TimerStartedBy = "admin"
	TimerByTechnician TimerStartedBy = "technician"
)

func (s TimerStartedBy) IsValid() bool {
	return s == TimerByAdmin || s == TimerByTechnician
}

type Installation struct {
	ID                int64              `json:"id"`
	LeadID            int64              `json:"lead_id"`
	CustomerID        *int64             `json:"customer_id,omitempty"`
	ProductID         int64              `json:"product_id"`
	Quantity          int                `json:"quantity"`
	TechnicianID      *int64             `json:"technician_id,omitempty"`
	ScheduledDate     *Date              `json:"scheduled_date,omitempty"`
	ScheduledTime     *string            `json:"scheduled_time,omitempty"`
	EstimatedDuration int                `json:"estimated_duration"`
	Address           string             `json:"address"`
	City              *string            `json:"city,omitempty"`
	AddressNotes      *string            `json:"address_notes,omitempty"`
	Status            InstallationStatus `json:"status"`
	TotalPrice        decimal.Decimal    `json:"total_price"`
	PaymentStatus     PaymentStatus      `json:"payment_status"`
	PaymentMethod     *PaymentMethod     `json:"payment_method,omitempty"`
	AmountPaid        decimal.Decimal    `json:"amount_paid"`
	CustomerNotes     *string            `json:"customer_notes,omitempty"`
	TechnicianNotes   *string            `json:"technician_notes,omitempty"`
	InternalNotes     *string            `json:"internal_notes,omitempty"`
	TimerStartedAt    *time.Time         `json:"timer_started_at,omitempty"`
	TimerEndedAt      *time.Time         `json:"timer_ended_at,omitempty"`
	TimerStartedBy    *TimerStartedBy    `json:"timer_started_by,omitempty"`
	DurationMinutes   *int               `json:"installation_duration_minutes,omitempty"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
	PhotoProofURL     *string            `json:"photo_proof_url,omitempty"`
	SignatureURL      *string            `json:"signature_url,omitempty"`
	PhotosBefore      []string           `json:"photos_before"`
	PhotosAfter       []string           `json:"photos_after"`
	VideoURL          *string            `json:"video_url,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         *time.Time         `json:"updated_at,omitempty"`
	InstallationDetails
}

// InstallationDetails carries joined lead, product and technician fields.
type InstallationDetails struct {
	LeadName        *string `json:"lead_name,omitempty"`
	LeadPhone       *string `json:"lead_phone,omitempty"`
	ProductName     *string `json:"product_name,omitempty"`
	ProductModel    *string `json:"product_model,omitempty"`
	ProductImage    *string `json:"product_image,omitempty"`
	TechnicianName  *string `json:"technician_name,omitempty"`
	TechnicianPhone *string `json:"technician_phone,omitempty"`
}

// AssignedTo reports whether the installation belongs to the technician.
func (i Installation) AssignedTo(technicianID int64) bool {
	return i.TechnicianID != nil && *i.TechnicianID == technicianID
}

// SetStatus changes the status and stamps completed_at the first time it completes.
func (i *Installation) SetStatus(s InstallationStatus, now time.Time) {
	i.Status = s
	if s == InstallationCompleted && i.CompletedAt == nil {
		t := now.UTC()
		i.CompletedAt = &t
	}
}

// Complete marks the installation done, keeping existing notes or proof when none are given.
func (i *Installation) Complete(c InstallationComplete, now time.Time) {
	i.SetStatus(InstallationCompleted, now)

	if c.TechnicianNotes != nil && *c.TechnicianNotes != "" {
		setPtrIf(&i.TechnicianNotes, c.TechnicianNotes)
	}

	if c.PhotoProofURL != nil && *c.PhotoProofURL != "" {
		setPtrIf(&i.PhotoProofURL, c.PhotoProofURL)
	}
}

// ApplyPayment adds a received amount and derives the payment status.
// An unknown method leaves the stored method unchanged.
func (i *Installation) ApplyPayment(amount decimal.Decimal, method PaymentMethod) error {
	if !amount.IsPositive() {
		return ErrInvalidArgument
	}

	i.AmountPaid = i.AmountPaid.Add(amount)

	if method.IsValid() {
		i.PaymentMethod = &method
	}

	switch {
	case i.AmountPaid.GreaterThanOrEqual(i.TotalPrice):
		i.PaymentStatus = PaymentPaid
	case i.AmountPaid.IsPositive():
		i.PaymentStatus = PaymentPartial
	}

	return nil
}

type InstallationCreate struct {
	LeadID        int64            `json:"lead_id"`
	CustomerID    *int64           `json:"customer_id,omitempty"`
	ProductID     int64            `json:"product_id"`
	Quantity      int              `json:"quantity"`
	TechnicianID  *int64           `json:"technician_id,omitempty"`
	ScheduledDate *Date            `json:"scheduled_date,omitempty"`
	ScheduledTime *string          `json:"scheduled_time,omitempty"`
	Address       string           `json:"address"`
	City          *string          `json:"city,omitempty"`
	AddressNotes  *string          `json:"address_notes,omitempty"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty"`
	CustomerNotes *string          `json:"customer_notes,omitempty"`
	Adjustment    *Adjustment      `json:"adjustment,omitempty"`
}

func (c *InstallationCreate) Validate() error {
	if c.LeadID <= 0 || c.ProductID <= 0 || c.Address == "" {
		return ErrInvalidArgument
	}

	if c.Quantity == 0 {
		c.Quantity = 1
	}

	if c.Quantity < 0 {
		return ErrInvalidQuantity
	}

	if c.TotalPrice != nil && c.TotalPrice.IsNegative() {
		return ErrInvalidArgument
	}

	if c.ScheduledTime != nil {
		if _, err := time.Parse("15:04", *c.ScheduledTime); err != nil {
			return ErrInvalidArgument
		}
	}

	if c.Adjustment != nil {
		return c.Adjustment.Validate()
	}

	return nil
}

// InitialStatus is programada when a date is already set.
func (c InstallationCreate) InitialStatus() InstallationStatus {
	if c.ScheduledDate != nil {
		return InstallationScheduled
	}

	return InstallationPending
}

type InstallationUpdate struct {
	ProductID         *int64              `json:"product_id,omitempty"`
	Quantity          *int                `json:"quantity,omitempty"`
	TechnicianID      *int64              `json:"technician_id,omitempty"`
	ScheduledDate     *Date               `json:"scheduled_date,omitempty"`
	ScheduledTime     *string             `json:"scheduled_time,omitempty"`
	EstimatedDuration *int                `json:"estimated_duration,omitempty"`
	Address           *string             `json:"address,omitempty"`
	City              *string             `json:"city,omitempty"`
	AddressNotes      *string             `json:"address_notes,omitempty"`
	Status            *InstallationStatus `json:"status,omitempty"`
	TotalPrice        *decimal.Decimal    `json:"total_price,omitempty"`
	PaymentStatus     *PaymentStatus      `json:"payment_status,omitempty"`
	PaymentMethod     *PaymentMethod      `json:"payment_method,omitempty"`
	AmountPaid        *decimal.Decimal    `json:"amount_paid,omitempty"`
	CustomerNotes     *string             `json:"customer_notes,omitempty"`
	TechnicianNotes   *string             `json:"technician_notes,omitempty"`
	InternalNotes     *string             `json:"internal_notes,omitempty"`
	SignatureURL      *string             `json:"signature_url,omitempty"`
	PhotosBefore      []string            `json:"photos_before,omitempty"`
	PhotosAfter       []string            `json:"photos_after,omitempty"`
	VideoURL          *string             `json:"video_url,omitempty"`
}

func (u InstallationUpdate) Validate() error {
	if u.Status != nil && !u.Status.IsValid() {
		return ErrInvalidStatus
	}

	if u.PaymentStatus != nil && !u.PaymentStatus.IsValid() {
		return ErrInvalidStatus
	}

	if u.PaymentMethod != nil && !u.PaymentMethod.IsValid() {
		return ErrInvalidArgument
	}

	if u.Quantity != nil && *u.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if u.EstimatedDuration != nil && *u.EstimatedDuration <= 0 {
		return ErrInvalidArgument
	}

	if u.ScheduledTime != nil {
		if _, err := time.Parse("15:04", *u.ScheduledTime); err != nil {
			return ErrInvalidArgument
		}
	}

	return nil
}

func (u InstallationUpdate) Apply(i *Installation, now time.Time) {
	setIf(&i.ProductID, u.ProductID)
	setIf(&i.Quantity, u.Quantity)
	setPtrIf(&i.TechnicianID, u.TechnicianID)
	setPtrIf(&i.ScheduledDate, u.ScheduledDate)
	setPtrIf(&i.ScheduledTime, u.ScheduledTime)
	setIf(&i.EstimatedDuration, u.EstimatedDuration)
	setIf(&i.Address, u.Address)
	setPtrIf(&i.City, u.City)
	setPtrIf(&i.AddressNotes, u.AddressNotes)
	setIf(&i.TotalPrice, u.TotalPrice)
	setIf(&i.PaymentStatus, u.PaymentStatus)
	setPtrIf(&i.PaymentMethod, u.PaymentMethod)
	setIf(&i.AmountPaid, u.AmountPaid)
	setPtrIf(&i.CustomerNotes, u.CustomerNotes)
	setPtrIf(&i.TechnicianNotes, u.TechnicianNotes)
	setPtrIf(&i.InternalNotes, u.InternalNotes)
	setPtrIf(&i.SignatureURL, u.SignatureURL)
	setPtrIf(&i.VideoURL, u.VideoURL)

	if u.PhotosBefore != nil {
		i.PhotosBefore = u.PhotosBefore
	}

	if u.PhotosAfter != nil {
		i.PhotosAfter = u.PhotosAfter
	}

	if u.Status != nil {
		i.SetStatus(*u.Status, now)
	}
}

type InstallationPaymentUpdate struct {
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod *PaymentMethod  `json:"payment_method,omitempty"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
}

func (u InstallationPaymentUpdate) Validate() error {
	if !u.PaymentStatus.IsValid() {
		return ErrInvalidStatus
	}

	if u.PaymentMethod != nil && !u.PaymentMethod.IsValid() {
		return ErrInvalidArgument
	}

	if u.AmountPaid.IsNegative() {
		return ErrInvalidArgument
	}

	return nil
}

type InstallationComplete struct {
	TechnicianNotes *string `json:"technician_notes,omitempty"`
	PhotoProofURL   *string `json:"photo_proof_url,omitempty"`
}

type PaymentConfirmation struct {
	Amount decimal.Decimal `json:"amount"`
	Method PaymentMethod   `json:"method"`
}

type InstallationFilter struct {
	Status        *InstallationStatus
	TechnicianID  *int64
	DateFrom      *Date
	DateTo        *Date
	ExcludeClosed bool
	Page          Page
}

// InstallationStats counts installations per status plus today's scheduled ones.
type InstallationStats struct {
	ByStatus map[InstallationStatus]int `json:"by_status"`
	Total    int                        `json:"total"`
	Today    int                        `json:"today"`
}
