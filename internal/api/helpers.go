package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zafesys/suite/internal/entity"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		resp.Error = originErr.Error()
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", resp.Error, "status", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", resp.Error, "status", code)
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendErr maps a service error to its HTTP status. fallback is the message of unexpected errors.
func SendErr(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	code, msg := errStatus(err)
	if code == http.StatusInternalServerError {
		msg = fallback
	}

	SendJSONErr(ctx, w, code, err, msg)
}

func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "Recurso no encontrado"
	case errors.Is(err, entity.ErrAlreadyExists):
		return http.StatusConflict, "El registro ya existe"
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict, "El registro tiene datos relacionados"
	case errors.Is(err, entity.ErrInsufficientStock):
		return http.StatusBadRequest, "Stock insuficiente"
	case errors.Is(err, entity.ErrTimerNotStarted):
		return http.StatusBadRequest, "El cronómetro no ha iniciado"
	case errors.Is(err, entity.ErrTimerAlreadyStopped):
		return http.StatusBadRequest, "El cronómetro ya fue detenido"
	case errors.Is(err, entity.ErrSearchQueryTooShort):
		return http.StatusBadRequest, "La búsqueda debe tener al menos 2 caracteres"
	case errors.Is(err, entity.ErrStatusNotAllowed):
		return http.StatusBadRequest, "Estado no permitido"
	case errors.Is(err, entity.ErrInvalidPIN):
		return http.StatusBadRequest, "El PIN debe tener entre 4 y 6 dígitos"
	case errors.Is(err, entity.ErrInvalidMediaType):
		return http.StatusBadRequest, "Tipo de archivo inválido"
	case errors.Is(err, entity.ErrInvalidStatus):
		return http.StatusBadRequest, "Estado inválido"
	case errors.Is(err, entity.ErrInvalidQuantity):
		return http.StatusBadRequest, "La cantidad debe ser positiva"
	case errors.Is(err, entity.ErrInvalidAdjustment):
		return http.StatusBadRequest, "Ajuste de precio inválido"
	case errors.Is(err, entity.ErrInvalidPhone),
		errors.Is(err, entity.ErrInvalidArgument):
		return http.StatusBadRequest, "Datos inválidos"
	case errors.Is(err, entity.ErrUnauthenticated),
		errors.Is(err, entity.ErrInvalidToken):
		return http.StatusUnauthorized, "Credenciales inválidas"
	case errors.Is(err, entity.ErrInvalidSignature):
		return http.StatusUnauthorized, "Firma inválida"
	case errors.Is(err, entity.ErrPINNotConfigured):
		return http.StatusForbidden, "PIN no configurado. Contacte al administrador"
	case errors.Is(err, entity.ErrInstallationNotOwned),
		errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "No autorizado"
	case errors.Is(err, entity.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Demasiados intentos. Intente más tarde"
	case errors.Is(err, entity.ErrUnavailable):
		return http.StatusServiceUnavailable, "Servicio no disponible"
	}

	return http.StatusInternalServerError, ""
}

// decode reads a JSON body of at most maxBodySize bytes.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	v := chi.URLParam(r, name)

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", entity.ErrInvalidArgument, name, v)
	}

	return id, nil
}

func queryPage(r *http.Request) (entity.Page, error) {
	q := r.URL.Query()

	var (
		p   entity.Page
		err error
	)

	if v := q.Get("skip"); v != "" {
		p.Skip, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entity.Page{}, fmt.Errorf("%w: skip %q", entity.ErrInvalidArgument, v)
		}
	}

	if v := q.Get("limit"); v != "" {
		p.Limit, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return entity.Page{}, fmt.Errorf("%w: limit %q", entity.ErrInvalidArgument, v)
		}
	}

	return p, nil
}

func queryInt64(r *http.Request, name string) (*int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", entity.ErrInvalidArgument, name, v)
	}

	return &n, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", entity.ErrInvalidArgument, name, v)
	}

	return n, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q", entity.ErrInvalidArgument, name, v)
	}

	return b, nil
}

func queryDate(r *http.Request, name string) (*entity.Date, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	d, err := entity.ParseDate(v)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func queryTime(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", entity.ErrInvalidArgument, name, v)
	}

	return &t, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
