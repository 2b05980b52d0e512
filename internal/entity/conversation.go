package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

type InterestLevel string

const (
	InterestHigh   InterestLevel = "high"
	InterestMedium InterestLevel = "medium"
	InterestLow    InterestLevel = "low"
)

const (
	UnidentifiedCustomer = "Cliente sin identificar"
	pendingPhonePrefix   = "pendiente-"
)

var highInterestKeywords = []string{
	"quiero comprar", "necesito instalar", "cuánto cuesta", "precio",
	"agendar", "programar instalación", "me interesa", "quiero cotizar",
	"listo para", "puedo pagar", "disponibilidad", "cuando pueden",
}

var productKeywords = []struct {
	product  string
	keywords []string
}{
	{product: "OS566F", keywords: []string{"os566f", "os 566", "os566", "huella", "biométrica"}},
	{product: "OS505", keywords: []string{"os505", "os 505", "manija", "básica"}},
	{product: "OS600", keywords: []string{"os600", "os 600", "premium", "wifi"}},
	{product: "CERRADURA", keywords: []string{"cerradura", "chapa", "lock", "candado"}},
}

var (
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+57\s*3\d{9}\b`),
		regexp.MustCompile(`\b57\s*3\d{9}\b`),
		regexp.MustCompile(`\b3\d{9}\b`),
		regexp.MustCompile(`\b\d{3}[\s.-]?\d{3}[\s.-]?\d{4}\b`),
	}
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:mi nombre es|me llamo|soy)\s+([a-záéíóúñ]+(?:\s+[a-záéíóúñ]+)?)`),
		regexp.MustCompile(`(?i)nombre[:\s]+([a-záéíóúñ]+(?:\s+[a-záéíóúñ]+)?)`),
	}
	nonPhoneChars = regexp.MustCompile(`[^\d+]`)
)

// TranscriptMessage is one turn of a voice conversation.
type TranscriptMessage struct {
	Role    string `json:"role"`
	Message string `json:"message"`
	Text    string `json:"text,omitempty"`
}

// Transcript accepts a plain string, a list of turns or an object with a messages list.
type Transcript struct {
	Messages []TranscriptMessage
	Raw      string
}

func (t *Transcript) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		t.Raw = s
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(b, &list); err == nil {
		for _, item := range list {
			var m TranscriptMessage
			if err := json.Unmarshal(item, &m); err == nil {
				t.Messages = append(t.Messages, m)
				continue
			}

			var line string
			if err := json.Unmarshal(item, &line); err == nil {
				t.Messages = append(t.Messages, TranscriptMessage{Message: line})
			}
		}

		return nil
	}

	var obj struct {
		Messages []TranscriptMessage `json:"messages"`
	}

	err := json.Unmarshal(b, &obj)
	if err != nil {
		return fmt.Errorf("%w: transcript", ErrInvalidArgument)
	}

	t.Messages = obj.Messages

	return nil
}

func (t Transcript) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t Transcript) IsEmpty() bool {
	return t.Raw == "" && len(t.Messages) == 0
}

// String renders the transcript as "Speaker: message" lines.
func (t Transcript) String() string {
	if t.Raw != "" {
		return t.Raw
	}

	lines := make([]string, 0, len(t.Messages))

	for _, m := range t.Messages {
		text := m.Message
		if text == "" {
			text = m.Text
		}

		switch m.Role {
		case "":
			lines = append(lines, text)
		case "agent":
			lines = append(lines, "Ana: "+text)
		default:
			lines = append(lines, "Cliente: "+text)
		}
	}

	return strings.Join(lines, "\n")
}

type ConversationAnalysis struct {
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
	ProductInterest *string `json:"product_interest,omitempty"`
	InterestLevel   *string `json:"interest_level,omitempty"`
	Summary         *string `json:"summary,omitempty"`
}

// VoiceConversation is the webhook payload sent when a voice agent call ends.
type VoiceConversation struct {
	ConversationID  string                `json:"conversation_id"`
	AgentID         *string               `json:"agent_id,omitempty"`
	Status          *string               `json:"status,omitempty"`
	Transcript      Transcript            `json:"transcript"`
	Analysis        *ConversationAnalysis `json:"analysis,omitempty"`
	CollectedData   map[string]any        `json:"collected_data,omitempty"`
	DataCollection  map[string]any        `json:"data_collection,omitempty"`
	CustomerName    *string               `json:"customer_name,omitempty"`
	CustomerPhone   *string               `json:"customer_phone,omitempty"`
	CustomerEmail   *string               `json:"customer_email,omitempty"`
	CustomerAddress *string               `json:"customer_address,omitempty"`
	ProductInterest *string               `json:"product_interest,omitempty"`
	Notes           *string               `json:"notes,omitempty"`
}

func (c VoiceConversation) Validate() error {
	if strings.TrimSpace(c.ConversationID) == "" {
		return fmt.Errorf("%w: conversation_id is required", ErrInvalidArgument)
	}

	return nil
}

// ExtractedContact is what could be learned about the caller.
type ExtractedContact struct {
	Name            string
	Phone           string
	Email           string
	Address         string
	ProductInterest string
	InterestLevel   InterestLevel
	Notes           string
}

// HasContact reports whether a real phone number was obtained.
func (e ExtractedContact) HasContact() bool {
	return e.Phone != "" && !strings.HasPrefix(e.Phone, pendingPhonePrefix)
}

// Analyze merges explicit analysis, collected data, direct fields and transcript heuristics, in that order of precedence.
func (c VoiceConversation) Analyze() ExtractedContact {
	var e ExtractedContact

	e.InterestLevel = InterestLow

	if a := c.Analysis; a != nil {
		e.Name = deref(a.CustomerName)
		e.Phone = deref(a.CustomerPhone)
		e.Email = deref(a.CustomerEmail)
		e.Address = deref(a.CustomerAddress)
		e.ProductInterest = deref(a.ProductInterest)
		e.Notes = deref(a.Summary)
		e.InterestLevel = InterestMedium

		if lvl := InterestLevel(deref(a.InterestLevel)); lvl != "" {
			e.InterestLevel = lvl
		}
	}

	collected := c.CollectedData
	if len(collected) == 0 {
		collected = c.DataCollection
	}

	e.Name = firstNonEmpty(e.Name, str(collected, "customer_name"), str(collected, "name"), deref(c.CustomerName))
	e.Phone = firstNonEmpty(e.Phone, str(collected, "customer_phone"), str(collected, "phone"), deref(c.CustomerPhone))
	e.Email = firstNonEmpty(e.Email, str(collected, "customer_email"), str(collected, "email"), deref(c.CustomerEmail))
	e.Address = firstNonEmpty(e.Address, str(collected, "customer_address"), str(collected, "address"), deref(c.CustomerAddress))
	e.ProductInterest = firstNonEmpty(e.ProductInterest, str(collected, "product_interest"), str(collected, "product"), deref(c.ProductInterest))
	e.Notes = firstNonEmpty(e.Notes, deref(c.Notes))

	text := c.Transcript.String()
	if text != "" {
		if e.Phone == "" {
			e.Phone = ExtractPhone(text)
		}

		if e.Name == "" {
			e.Name = ExtractName(text)
		}

		if e.ProductInterest == "" {
			e.ProductInterest = DetectProductInterest(text)
		}

		if e.InterestLevel == InterestLow {
			e.InterestLevel = ScoreInterest(text)
		}
	}

	if e.Name == "" && e.Phone == "" {
		e.Name = UnidentifiedCustomer
	}

	if e.Phone == "" {
		e.Phone = PendingPhone(c.ConversationID)
	}

	return e
}

// PendingPhone is the placeholder phone of a lead whose number is unknown.
func PendingPhone(conversationID string) string {
	id := conversationID
	if len(id) > 8 {
		id = id[:8]
	}

	return pendingPhonePrefix + id
}

// ExtractPhone finds a Colombian phone number and normalizes mobiles to +57.
func ExtractPhone(text string) string {
	for _, candidate := range []string{text, strings.ReplaceAll(text, " ", "")} {
		if phone := matchPhone(candidate); phone != "" {
			return phone
		}
	}

	return ""
}

func matchPhone(text string) string {
	for _, re := range phonePatterns {
		m := re.FindString(text)
		if m == "" {
			continue
		}

		phone := nonPhoneChars.ReplaceAllString(m, "")

		switch {
		case strings.HasPrefix(phone, "3") && len(phone) == 10:
			return "+57" + phone
		case strings.HasPrefix(phone, "57") && len(phone) == 12:
			return "+" + phone
		default:
			return phone
		}
	}

	return ""
}

// ExtractName looks for self introductions such as "me llamo ...".
func ExtractName(text string) string {
	lower := strings.ToLower(text)

	for _, re := range namePatterns {
		m := re.FindStringSubmatch(lower)
		if len(m) < 2 {
			continue
		}

		name := titleCase(strings.TrimSpace(m[1]))
		if len([]rune(name)) > 2 {
			return name
		}
	}

	return ""
}

func DetectProductInterest(text string) string {
	lower := strings.ToLower(text)

	for _, p := range productKeywords {
		for _, k := range p.keywords {
			if strings.Contains(lower, k) {
				return p.product
			}
		}
	}

	return ""
}

// ScoreInterest is high with three or more buying signals and medium with one.
func ScoreInterest(text string) InterestLevel {
	lower := strings.ToLower(text)
	score := 0

	for _, k := range highInterestKeywords {
		if strings.Contains(lower, k) {
			score++
		}
	}

	switch {
	case score >= 3:
		return InterestHigh
	case score >= 1:
		return InterestMedium
	}

	return InterestLow
}

// LeadStatusFor derives the starting pipeline status of a voice lead.
func LeadStatusFor(level InterestLevel, hasContact bool) LeadStatus {
	switch {
	case level == InterestHigh && hasContact:
		return LeadStatusPotential
	case level == InterestMedium || hasContact:
		return LeadStatusInConversation
	}

	return LeadStatusNew
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}

func str(m map[string]any, key string) string {
	v, ok := m[key].(string)
	if !ok {
		return ""
	}

	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if s != "" {
			return s
		}
	}

	return ""
}

// WebhookStatus describes the voice agent integration settings.
type WebhookStatus struct {
	WebhookURL       string `json:"webhook_url"`
	SecretConfigured bool   `json:"secret_configured"`
	APIConfigured    bool   `json:"api_configured"`
	Status           string `json:"status"`
}
