package api

import (
	"io"
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Login issues an admin panel token
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param Credentials body entity.Credentials true "Email and password"
// @Success 200 {object} entity.Token
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Incorrect email or password"
// @Failure 403 {object} ErrorResponse "Inactive user"
// @Router /v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.Credentials

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	token, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo iniciar sesión")
		return
	}

	SendJSON(ctx, w, http.StatusOK, token)
}

// Register creates an admin panel user
// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param UserCreate body entity.UserCreate true "New user"
// @Success 201 {object} entity.User
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /v1/auth/register [post]
// @Security BearerAuth
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.UserCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	user, err := h.s.Register(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo registrar el usuario")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, user)
}

// Me returns the authenticated user
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} entity.User
// @Failure 401 {object} ErrorResponse "Invalid token"
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.s.Me(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el usuario")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// TechnicianLogin issues a technician app token for a document ID and PIN
// @Summary Technician login
// @Tags auth
// @Accept json
// @Produce json
// @Param TechnicianCredentials body entity.TechnicianCredentials true "Document ID and PIN"
// @Success 200 {object} entity.TechnicianToken
// @Failure 401 {object} ErrorResponse "Incorrect document or PIN"
// @Failure 403 {object} ErrorResponse "PIN not configured"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /v1/auth/technician/login [post]
func (h *Handler) TechnicianLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.TechnicianCredentials

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	token, err := h.s.TechnicianLogin(ctx, req.DocumentID, req.PIN)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo iniciar sesión")
		return
	}

	SendJSON(ctx, w, http.StatusOK, token)
}

type SetPINRequest struct {
	PIN string `json:"pin"`
}

// SetTechnicianPIN configures the technician app PIN
// @Summary Set technician PIN
// @Tags technicians
// @Accept json
// @Produce json
// @Param id path int true "Technician ID"
// @Param SetPINRequest body SetPINRequest true "4 to 6 digits"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid PIN"
// @Failure 404 {object} ErrorResponse "Technician not found"
// @Router /v1/technicians/{id}/pin [put]
// @Security BearerAuth
func (h *Handler) SetTechnicianPIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req SetPINRequest

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	err = h.s.SetTechnicianPIN(ctx, id, req.PIN)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo configurar el PIN")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "PIN configurado"})
}

// VoiceConversation receives a finished call from the voice agent
// @Summary Voice agent conversation webhook
// @Description Creates or updates a lead from the call transcript
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-ElevenLabs-Signature header string false "HMAC-SHA256 of the body"
// @Param VoiceConversation body entity.VoiceConversation true "Conversation"
// @Success 200 {object} entity.Lead
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Invalid signature"
// @Router /v1/webhooks/voice-agent/conversation [post]
func (h *Handler) VoiceConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "No se pudo leer la solicitud")
		return
	}

	signature := r.Header.Get("X-ElevenLabs-Signature")
	if signature == "" {
		signature = r.Header.Get("X-Webhook-Secret")
	}

	lead, err := h.s.HandleVoiceConversation(ctx, body, signature)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo procesar la conversación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, lead)
}

// VoiceWebhookStatus reports the webhook configuration
// @Summary Voice agent webhook status
// @Tags webhooks
// @Produce json
// @Success 200 {object} entity.WebhookStatus
// @Router /v1/webhooks/voice-agent/status [get]
func (h *Handler) VoiceWebhookStatus(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, h.s.VoiceWebhookStatus())
}
