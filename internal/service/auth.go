package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/zafesys/suite/internal/entity"
)

const (
	scopeAdmin       = "admin"
	scopeTechnician  = "technician"
	technicianPrefix = "tech_"
)

type adminClaims struct {
	Role  entity.UserRole `json:"role"`
	Scope string          `json:"scope"`
	jwt.RegisteredClaims
}

type technicianClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (s *Service) Login(ctx context.Context, email, password string) (entity.Token, error) {
	user, err := s.repo.UserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entity.ErrNotFound) {
		return entity.Token{}, fmt.Errorf("incorrect email or password: %w", entity.ErrUnauthenticated)
	}

	if err != nil {
		return entity.Token{}, fmt.Errorf("get user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	if err != nil {
		return entity.Token{}, fmt.Errorf("incorrect email or password: %w", entity.ErrUnauthenticated)
	}

	if !user.IsActive {
		return entity.Token{}, fmt.Errorf("inactive user %d: %w", user.ID, entity.ErrForbidden)
	}

	now := s.now()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		Role:  user.Role,
		Scope: scopeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTTL)),
		},
	}).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return entity.Token{}, fmt.Errorf("sign access token: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "role", user.Role)

	return entity.Token{
		AccessToken: token,
		TokenType:   entity.TokenTypeBearer,
		ExpiresIn:   int64(s.cfg.JWT.AccessTTL.Seconds()),
	}, nil
}

func (s *Service) Register(ctx context.Context, c entity.UserCreate) (entity.User, error) {
	err := c.Validate()
	if err != nil {
		return entity.User{}, err
	}

	_, err = s.repo.UserByEmail(ctx, c.Email)
	if err == nil {
		return entity.User{}, fmt.Errorf("email %s already registered: %w", c.Email, entity.ErrAlreadyExists)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, entity.User{
		Email:          c.Email,
		HashedPassword: string(hash),
		FullName:       c.FullName,
		Phone:          c.Phone,
		Role:           c.Role,
		IsActive:       true,
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role)

	return user, nil
}

func (s *Service) Me(ctx context.Context) (entity.User, error) {
	claims, ok := entity.UserFromCtx(ctx)
	if !ok {
		return entity.User{}, entity.ErrUnauthenticated
	}

	user, err := s.repo.User(ctx, claims.UserID)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user %d: %w", claims.UserID, err)
	}

	return user, nil
}

// TechnicianLogin checks the document id and PIN of an active technician.
// Failed PINs are counted and the login is refused once the limit for the window is reached.
func (s *Service) TechnicianLogin(ctx context.Context, documentID, pin string) (entity.TechnicianToken, error) {
	tech, err := s.repo.TechnicianByDocument(ctx, strings.TrimSpace(documentID))
	if errors.Is(err, entity.ErrNotFound) {
		return entity.TechnicianToken{}, fmt.Errorf("document not found: %w", entity.ErrUnauthenticated)
	}

	if err != nil {
		return entity.TechnicianToken{}, fmt.Errorf("get technician by document: %w", err)
	}

	if !tech.IsActive {
		return entity.TechnicianToken{}, fmt.Errorf("technician %d inactive: %w", tech.ID, entity.ErrUnauthenticated)
	}

	if !tech.HasPIN() {
		return entity.TechnicianToken{}, entity.ErrPINNotConfigured
	}

	now := s.now()

	failed, err := s.repo.CountPINAttempts(ctx, tech.ID, now.Add(-s.cfg.Technician.PINAttemptWindow))
	if err != nil {
		return entity.TechnicianToken{}, fmt.Errorf("count pin attempts: %w", err)
	}

	if failed >= s.cfg.Technician.PINMaxAttempts {
		slog.WarnContext(ctx, "technician login blocked", "technician_id", tech.ID, "failed_attempts", failed)
		return entity.TechnicianToken{}, entity.ErrTooManyAttempts
	}

	err = bcrypt.CompareHashAndPassword([]byte(*tech.PINHash), []byte(pin))
	if err != nil {
		if err := s.repo.SavePINAttempt(ctx, tech.ID, now); err != nil {
			slog.ErrorContext(ctx, "save pin attempt", "technician_id", tech.ID, "error", err)
		}

		return entity.TechnicianToken{}, fmt.Errorf("incorrect pin: %w", entity.ErrUnauthenticated)
	}

	err = s.repo.ClearPINAttempts(ctx, tech.ID)
	if err != nil {
		slog.ErrorContext(ctx, "clear pin attempts", "technician_id", tech.ID, "error", err)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, technicianClaims{
		Scope: scopeTechnician,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   technicianPrefix + strconv.FormatInt(tech.ID, 10),
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.TechnicianTTL)),
		},
	}).SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return entity.TechnicianToken{}, fmt.Errorf("sign technician token: %w", err)
	}

	slog.InfoContext(ctx, "technician logged in", "technician_id", tech.ID)

	return entity.TechnicianToken{
		Token: entity.Token{
			AccessToken: token,
			TokenType:   entity.TokenTypeBearer,
			ExpiresIn:   int64(s.cfg.JWT.TechnicianTTL.Seconds()),
		},
		TechnicianID:   tech.ID,
		TechnicianName: tech.FullName,
	}, nil
}

// ParseAdminToken verifies the token and reloads its user, so deleted or
// deactivated staff lose access before the token expires.
func (s *Service) ParseAdminToken(ctx context.Context, token string) (entity.UserClaims, error) {
	var claims adminClaims

	err := s.parse(token, &claims)
	if err != nil {
		return entity.UserClaims{}, err
	}

	if claims.Scope != scopeAdmin {
		return entity.UserClaims{}, fmt.Errorf("%w: scope %q", entity.ErrInvalidToken, claims.Scope)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return entity.UserClaims{}, fmt.Errorf("%w: subject %q", entity.ErrInvalidToken, claims.Subject)
	}

	user, err := s.repo.User(ctx, id)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.UserClaims{}, fmt.Errorf("user %d: %w", id, entity.ErrUnauthenticated)
	}

	if err != nil {
		return entity.UserClaims{}, fmt.Errorf("get user %d: %w", id, err)
	}

	if !user.IsActive {
		return entity.UserClaims{}, fmt.Errorf("user %d inactive: %w", id, entity.ErrForbidden)
	}

	return entity.UserClaims{UserID: user.ID, Role: user.Role}, nil
}

func (s *Service) ParseTechnicianToken(_ context.Context, token string) (entity.TechnicianClaims, error) {
	var claims technicianClaims

	err := s.parse(token, &claims)
	if err != nil {
		return entity.TechnicianClaims{}, err
	}

	raw, ok := strings.CutPrefix(claims.Subject, technicianPrefix)
	if claims.Scope != scopeTechnician || !ok {
		return entity.TechnicianClaims{}, fmt.Errorf("%w: scope %q", entity.ErrInvalidToken, claims.Scope)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return entity.TechnicianClaims{}, fmt.Errorf("%w: subject %q", entity.ErrInvalidToken, claims.Subject)
	}

	return entity.TechnicianClaims{TechnicianID: id}, nil
}

func (s *Service) parse(token string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.cfg.JWT.Secret), nil
	},
		jwt.WithIssuer(s.cfg.JWT.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrInvalidToken, err)
	}

	return nil
}

// SetTechnicianPIN stores the bcrypt hash of a new PIN and resets failed attempts.
func (s *Service) SetTechnicianPIN(ctx context.Context, technicianID int64, pin string) error {
	err := entity.ValidatePIN(pin)
	if err != nil {
		return err
	}

	_, err = s.repo.Technician(ctx, technicianID)
	if err != nil {
		return fmt.Errorf("get technician %d: %w", technicianID, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	err = s.repo.SetTechnicianPIN(ctx, technicianID, string(hash))
	if err != nil {
		return fmt.Errorf("set technician %d pin: %w", technicianID, err)
	}

	err = s.repo.ClearPINAttempts(ctx, technicianID)
	if err != nil {
		return fmt.Errorf("clear technician %d pin attempts: %w", technicianID, err)
	}

	slog.InfoContext(ctx, "technician pin updated", "technician_id", technicianID)

	return nil
}
