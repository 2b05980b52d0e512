package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

// Bodies of these paths carry credentials.
var skipBodyLogging = map[string]struct{}{
	"/api/v1/auth/login":            {},
	"/api/v1/auth/register":         {},
	"/api/v1/auth/technician/login": {},
}

// Parametrized credential routes: /technicians/{id}/pin and /users/{id}.
var (
	skipBodyLoggingSuffixes = []string{"/pin"}
	skipBodyLoggingPrefixes = []string{"/api/v1/users"}
)

func logsBody(path string) bool {
	if _, ok := skipBodyLogging[path]; ok {
		return false
	}

	path = strings.TrimSuffix(path, "/")

	for _, suffix := range skipBodyLoggingSuffixes {
		if strings.HasSuffix(path, suffix) {
			return false
		}
	}

	for _, prefix := range skipBodyLoggingPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	return true
}

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks -typed

type AuthService interface {
	ParseAdminToken(ctx context.Context, token string) (entity.UserClaims, error)
	ParseTechnicianToken(ctx context.Context, token string) (entity.TechnicianClaims, error)
}

type Middleware struct {
	auth AuthService
}

func NewMiddleware(auth AuthService) *Middleware {
	return &Middleware{
		auth: auth,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			var reqBody []byte

			if logsBody(r.URL.Path) && r.Body != nil {
				body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
				if err != nil {
					SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Error leyendo la solicitud")
					return
				}

				r.Body.Close()
				r.Body = io.NopCloser(bytes.NewBuffer(body))
				reqBody = body
			}

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "Error interno")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Request-Id, X-ElevenLabs-Signature")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminAuth verifies the admin panel JWT.
func (m *Middleware) AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token ausente o inválido")
			return
		}

		claims, err := m.auth.ParseAdminToken(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrInvalidToken), errors.Is(err, entity.ErrUnauthenticated):
				SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token inválido")
			case errors.Is(err, entity.ErrForbidden):
				SendJSONErr(ctx, w, http.StatusForbidden, err, "Usuario inactivo")
			default:
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Error de autenticación")
			}

			return
		}

		ctx = entity.WithUser(ctx, claims)
		ctx = logger.WithUserID(ctx, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TechnicianAuth verifies the technician app JWT. Admin tokens are rejected.
func (m *Middleware) TechnicianAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token ausente o inválido")
			return
		}

		claims, err := m.auth.ParseTechnicianToken(ctx, token)
		if err != nil {
			if errors.Is(err, entity.ErrInvalidToken) || errors.Is(err, entity.ErrUnauthenticated) {
				SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Token inválido")
			} else {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Error de autenticación")
			}

			return
		}

		ctx = entity.WithTechnician(ctx, claims)
		ctx = logger.WithTechnicianID(ctx, claims.TechnicianID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole lets through admin users with one of roles. RoleAdmin always passes.
func (m *Middleware) RequireRole(roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			claims, ok := entity.UserFromCtx(ctx)
			if !ok {
				SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "Token ausente o inválido")
				return
			}

			if claims.Role != entity.RoleAdmin && !slices.Contains(roles, claims.Role) {
				SendJSONErr(ctx, w, http.StatusForbidden,
					fmt.Errorf("%w: role %s", entity.ErrForbidden, claims.Role), "Permisos insuficientes")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NoCache makes browsers revalidate polled read endpoints on every poll.
func (m *Middleware) NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Cache-Control", "private, no-cache")
		}

		next.ServeHTTP(w, r)
	})
}
