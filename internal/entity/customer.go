package entity

import "time"

type Customer struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          *string    `json:"email,omitempty"`
	DocumentType   *string    `json:"document_type,omitempty"`
	DocumentNumber *string    `json:"document_number,omitempty"`
	Address        *string    `json:"address,omitempty"`
	City           *string    `json:"city,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	LeadID         *int64     `json:"lead_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type CustomerCreate struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email,omitempty"`
	DocumentType   *string `json:"document_type,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	LeadID         *int64  `json:"lead_id,omitempty"`
}

func (c CustomerCreate) Validate() error {
	if c.Name == "" || c.Phone == "" {
		return ErrInvalidArgument
	}

	return nil
}

// CustomerFromLead copies the contact data of a lead.
func CustomerFromLead(l Lead) CustomerCreate {
	id := l.ID

	return CustomerCreate{
		Name:    l.Name,
		Phone:   l.Phone,
		Email:   l.Email,
		Address: l.Address,
		City:    l.City,
		LeadID:  &id,
	}
}

type CustomerUpdate struct {
	Name           *string `json:"name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Email          *string `json:"email,omitempty"`
	DocumentType   *string `json:"document_type,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func (u CustomerUpdate) Apply(c *Customer) {
	setIf(&c.Name, u.Name)
	setIf(&c.Phone, u.Phone)
	setPtrIf(&c.Email, u.Email)
	setPtrIf(&c.DocumentType, u.DocumentType)
	setPtrIf(&c.DocumentNumber, u.DocumentNumber)
	setPtrIf(&c.Address, u.Address)
	setPtrIf(&c.City, u.City)
	setPtrIf(&c.Notes, u.Notes)
	setIf(&c.IsActive, u.IsActive)
}

type CustomerFilter struct {
	IncludeInactive bool
	Page            Page
}
