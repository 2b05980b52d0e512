package entity

import (
	"time"
	"unicode"
)

type Technician struct {
	ID          int64      `json:"id"`
	UserID      *int64     `json:"user_id,omitempty"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	Email       *string    `json:"email,omitempty"`
	DocumentID  *string    `json:"document_id,omitempty"`
	Zone        *string    `json:"zone,omitempty"`
	Specialties *string    `json:"specialties,omitempty"`
	PINHash     *string    `json:"-"`
	IsAvailable bool       `json:"is_available"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// HasPIN reports whether the technician can log into the technician app.
func (t Technician) HasPIN() bool {
	return t.PINHash != nil && *t.PINHash != ""
}

type TechnicianCreate struct {
	FullName    string  `json:"full_name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	DocumentID  *string `json:"document_id,omitempty"`
	Zone        *string `json:"zone,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
}

func (c TechnicianCreate) Validate() error {
	if c.FullName == "" || c.Phone == "" {
		return ErrInvalidArgument
	}

	return nil
}

type TechnicianUpdate struct {
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	DocumentID  *string `json:"document_id,omitempty"`
	Zone        *string `json:"zone,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (u TechnicianUpdate) Apply(t *Technician) {
	setIf(&t.FullName, u.FullName)
	setIf(&t.Phone, u.Phone)
	setPtrIf(&t.Email, u.Email)
	setPtrIf(&t.DocumentID, u.DocumentID)
	setPtrIf(&t.Zone, u.Zone)
	setPtrIf(&t.Specialties, u.Specialties)
	setIf(&t.IsAvailable, u.IsAvailable)
	setIf(&t.IsActive, u.IsActive)
}

// ValidatePIN accepts 4 to 6 ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return ErrInvalidPIN
	}

	for _, r := range pin {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return ErrInvalidPIN
		}
	}

	return nil
}

type TechnicianLocation struct {
	ID           int64     `json:"id"`
	TechnicianID int64     `json:"technician_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Accuracy     *float64  `json:"accuracy,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

func (l TechnicianLocation) Validate() error {
	if l.TechnicianID <= 0 {
		return ErrInvalidArgument
	}

	if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
		return ErrInvalidArgument
	}

	if l.Accuracy != nil && *l.Accuracy < 0 {
		return ErrInvalidArgument
	}

	return nil
}

// TechnicianPosition is the latest known location of a technician.
type TechnicianPosition struct {
	TechnicianID   int64               `json:"technician_id"`
	TechnicianName string              `json:"technician_name"`
	IsAvailable    bool                `json:"is_available"`
	Location       *TechnicianLocation `json:"location,omitempty"`
}

type LocationHistoryFilter struct {
	TechnicianID int64
	From         *time.Time
	To           *time.Time
	Limit        uint64
}

type TechnicianDaySchedule struct {
	Date          string         `json:"date"`
	Installations []Installation `json:"installations"`
	TotalCount    int            `json:"total_count"`
}
