package entity

import "time"

type LeadStatus string

const (
	LeadStatusNew            LeadStatus = "nuevo"
	LeadStatusInConversation LeadStatus = "en_conversacion"
	LeadStatusPotential      LeadStatus = "potencial"
	LeadStatusWon            LeadStatus = "venta_cerrada"
	LeadStatusLost           LeadStatus = "perdido"
)

// LeadStatuses lists every status in kanban column order.
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusInConversation,
	LeadStatusPotential,
	LeadStatusWon,
	LeadStatusLost,
}

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusInConversation, LeadStatusPotential, LeadStatusWon, LeadStatusLost:
		return true
	}

	return false
}

func (s LeadStatus) String() string {
	return string(s)
}

type LeadSource string

const (
	LeadSourceWebsite    LeadSource = "website"
	LeadSourceWhatsApp   LeadSource = "whatsapp"
	LeadSourceElevenLabs LeadSource = "elevenlabs"
	LeadSourceAnaVoice   LeadSource = "ana_voice"
	LeadSourceReferral   LeadSource = "referido"
	LeadSourceOther      LeadSource = "otro"
)

func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceWhatsApp, LeadSourceElevenLabs, LeadSourceAnaVoice, LeadSourceReferral, LeadSourceOther:
		return true
	}

	return false
}

type Lead struct {
	ID                     int64      `json:"id"`
	Name                   string     `json:"name"`
	Phone                  string     `json:"phone"`
	Email                  *string    `json:"email,omitempty"`
	Address                *string    `json:"address,omitempty"`
	City                   *string    `json:"city,omitempty"`
	Status                 LeadStatus `json:"status"`
	Source                 LeadSource `json:"source"`
	Notes                  *string    `json:"notes,omitempty"`
	ProductInterest        *string    `json:"product_interest,omitempty"`
	AssignedToID           *int64     `json:"assigned_to_id,omitempty"`
	VoiceConversationID    *string    `json:"voice_conversation_id,omitempty"`
	ConversationTranscript *string    `json:"conversation_transcript,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
	ContactedAt            *time.Time `json:"contacted_at,omitempty"`
}

// Summary is the kanban card view of the lead.
func (l Lead) Summary() LeadSummary {
	return LeadSummary{
		ID:              l.ID,
		Name:            l.Name,
		Phone:           l.Phone,
		Status:          l.Status,
		Source:          l.Source,
		ProductInterest: l.ProductInterest,
		CreatedAt:       l.CreatedAt,
	}
}

type LeadSummary struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Status          LeadStatus `json:"status"`
	Source          LeadSource `json:"source"`
	ProductInterest *string    `json:"product_interest,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type LeadCreate struct {
	Name                   string     `json:"name"`
	Phone                  string     `json:"phone"`
	Email                  *string    `json:"email,omitempty"`
	Address                *string    `json:"address,omitempty"`
	City                   *string    `json:"city,omitempty"`
	Status                 LeadStatus `json:"-"`
	Source                 LeadSource `json:"source"`
	Notes                  *string    `json:"notes,omitempty"`
	ProductInterest        *string    `json:"product_interest,omitempty"`
	VoiceConversationID    *string    `json:"-"`
	ConversationTranscript *string    `json:"-"`
}

func (c *LeadCreate) Validate() error {
	if c.Name == "" || c.Phone == "" {
		return ErrInvalidArgument
	}

	if c.Source == "" {
		c.Source = LeadSourceWebsite
	}

	if !c.Source.IsValid() {
		return ErrInvalidArgument
	}

	if c.Status == "" {
		c.Status = LeadStatusNew
	}

	if !c.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

type LeadUpdate struct {
	Name                   *string     `json:"name,omitempty"`
	Phone                  *string     `json:"phone,omitempty"`
	Email                  *string     `json:"email,omitempty"`
	Address                *string     `json:"address,omitempty"`
	City                   *string     `json:"city,omitempty"`
	Status                 *LeadStatus `json:"status,omitempty"`
	Source                 *LeadSource `json:"source,omitempty"`
	Notes                  *string     `json:"notes,omitempty"`
	ProductInterest        *string     `json:"product_interest,omitempty"`
	AssignedToID           *int64      `json:"assigned_to_id,omitempty"`
	VoiceConversationID    *string     `json:"-"`
	ConversationTranscript *string     `json:"-"`
}

func (u LeadUpdate) Validate() error {
	if u.Status != nil && !u.Status.IsValid() {
		return ErrInvalidStatus
	}

	if u.Source != nil && !u.Source.IsValid() {
		return ErrInvalidArgument
	}

	if (u.Name != nil && *u.Name == "") || (u.Phone != nil && *u.Phone == "") {
		return ErrInvalidArgument
	}

	return nil
}

// Apply copies the set fields onto the lead.
func (u LeadUpdate) Apply(l *Lead) {
	setIf(&l.Name, u.Name)
	setIf(&l.Phone, u.Phone)
	setPtrIf(&l.Email, u.Email)
	setPtrIf(&l.Address, u.Address)
	setPtrIf(&l.City, u.City)
	setIf(&l.Status, u.Status)
	setIf(&l.Source, u.Source)
	setPtrIf(&l.Notes, u.Notes)
	setPtrIf(&l.ProductInterest, u.ProductInterest)
	setPtrIf(&l.AssignedToID, u.AssignedToID)
	setPtrIf(&l.VoiceConversationID, u.VoiceConversationID)
	setPtrIf(&l.ConversationTranscript, u.ConversationTranscript)
}

type LeadFilter struct {
	Status *LeadStatus
	Page   Page
}

// LeadStats is the number of leads per status. Every status is present.
type LeadStats map[LeadStatus]int

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtrIf[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}
