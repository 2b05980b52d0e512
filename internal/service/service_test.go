package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/internal/mocks"
	"github.com/zafesys/suite/internal/service"
	"github.com/zafesys/suite/pkg/config"
)

type deps struct {
	repo   *mocks.MockRepository
	events *mocks.MockPublisher
	media  *mocks.MockMediaStorage
	mailer *mocks.MockMailer
	voice  *mocks.MockVoiceAgent
}

func testConfig() config.Config {
	return config.Config{
		JWT: config.JWT{
			Secret:        "test-secret",
			AccessTTL:     time.Hour,
			TechnicianTTL: 24 * time.Hour,
			Issuer:        "zafesys-suite",
		},
		Technician: config.Technician{
			PINMaxAttempts:   5,
			PINAttemptWindow: 15 * time.Minute,
		},
		Storage: config.Storage{
			UploadURLTTL: time.Hour,
		},
		Jobs: config.Jobs{
			LocationRetention: 30 * 24 * time.Hour,
		},
	}
}

func newService(t *testing.T, cfg config.Config) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:   mocks.NewMockRepository(ctrl),
		events: mocks.NewMockPublisher(ctrl),
		media:  mocks.NewMockMediaStorage(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
		voice:  mocks.NewMockVoiceAgent(ctrl),
	}

	return service.New(cfg, d.repo, d.events, d.media, d.mailer, d.voice), d
}

func hash(t *testing.T, secret string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	user := entity.User{
		ID:             7,
		Email:          "admin@zafesys.co",
		HashedPassword: hash(t, "s3cret-pass"),
		FullName:       "Admin",
		Role:           entity.RoleAdmin,
		IsActive:       true,
	}

	t.Run("issues a token the middleware accepts", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().UserByEmail(gomock.Any(), "admin@zafesys.co").Return(user, nil)

		token, err := s.Login(context.Background(), " admin@zafesys.co ", "s3cret-pass")
		require.NoError(t, err)
		require.Equal(t, entity.TokenTypeBearer, token.TokenType)
		require.Equal(t, int64(3600), token.ExpiresIn)

		d.repo.EXPECT().User(gomock.Any(), int64(7)).Return(user, nil)

		claims, err := s.ParseAdminToken(context.Background(), token.AccessToken)
		require.NoError(t, err)
		require.Equal(t, entity.UserClaims{UserID: 7, Role: entity.RoleAdmin}, claims)

		_, err = s.ParseTechnicianToken(context.Background(), token.AccessToken)
		require.ErrorIs(t, err, entity.ErrInvalidToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().UserByEmail(gomock.Any(), "admin@zafesys.co").Return(user, nil)

		_, err := s.Login(context.Background(), "admin@zafesys.co", "nope")
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().UserByEmail(gomock.Any(), "ghost@zafesys.co").Return(entity.User{}, entity.ErrNotFound)

		_, err := s.Login(context.Background(), "ghost@zafesys.co", "whatever")
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})

	t.Run("inactive user", func(t *testing.T) {
		t.Parallel()

		inactive := user
		inactive.IsActive = false

		s, d := newService(t, testConfig())
		d.repo.EXPECT().UserByEmail(gomock.Any(), "admin@zafesys.co").Return(inactive, nil)

		_, err := s.Login(context.Background(), "admin@zafesys.co", "s3cret-pass")
		require.ErrorIs(t, err, entity.ErrForbidden)
	})
}

func TestService_ParseAdminToken(t *testing.T) {
	t.Parallel()

	user := entity.User{
		ID:             7,
		Email:          "admin@zafesys.co",
		HashedPassword: hash(t, "s3cret-pass"),
		Role:           entity.RoleSales,
		IsActive:       true,
	}

	login := func(t *testing.T) (*service.Service, deps, string) {
		t.Helper()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)

		token, err := s.Login(context.Background(), user.Email, "s3cret-pass")
		require.NoError(t, err)

		return s, d, token.AccessToken
	}

	t.Run("role is read from the stored user", func(t *testing.T) {
		t.Parallel()

		s, d, token := login(t)

		promoted := user
		promoted.Role = entity.RoleAdmin
		d.repo.EXPECT().User(gomock.Any(), int64(7)).Return(promoted, nil)

		claims, err := s.ParseAdminToken(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, entity.RoleAdmin, claims.Role)
	})

	t.Run("deactivated user", func(t *testing.T) {
		t.Parallel()

		s, d, token := login(t)

		inactive := user
		inactive.IsActive = false
		d.repo.EXPECT().User(gomock.Any(), int64(7)).Return(inactive, nil)

		_, err := s.ParseAdminToken(context.Background(), token)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()

		s, d, token := login(t)
		d.repo.EXPECT().User(gomock.Any(), int64(7)).Return(entity.User{}, entity.ErrNotFound)

		_, err := s.ParseAdminToken(context.Background(), token)
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})
}

func TestService_TechnicianLogin(t *testing.T) {
	t.Parallel()

	pinHash := hash(t, "1234")
	doc := "1020304050"

	withPIN := entity.Technician{
		ID:         3,
		FullName:   "Juan Pérez",
		Phone:      "+573001112233",
		DocumentID: &doc,
		PINHash:    &pinHash,
		IsActive:   true,
	}

	t.Run("success clears failed attempts", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().TechnicianByDocument(gomock.Any(), doc).Return(withPIN, nil)
		d.repo.EXPECT().CountPINAttempts(gomock.Any(), int64(3), gomock.Any()).Return(2, nil)
		d.repo.EXPECT().ClearPINAttempts(gomock.Any(), int64(3)).Return(nil)

		token, err := s.TechnicianLogin(context.Background(), doc, "1234")
		require.NoError(t, err)
		require.Equal(t, int64(3), token.TechnicianID)
		require.Equal(t, "Juan Pérez", token.TechnicianName)

		claims, err := s.ParseTechnicianToken(context.Background(), token.AccessToken)
		require.NoError(t, err)
		require.Equal(t, int64(3), claims.TechnicianID)

		_, err = s.ParseAdminToken(context.Background(), token.AccessToken)
		require.ErrorIs(t, err, entity.ErrInvalidToken)
	})

	t.Run("wrong pin is recorded", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().TechnicianByDocument(gomock.Any(), doc).Return(withPIN, nil)
		d.repo.EXPECT().CountPINAttempts(gomock.Any(), int64(3), gomock.Any()).Return(0, nil)
		d.repo.EXPECT().SavePINAttempt(gomock.Any(), int64(3), gomock.Any()).Return(nil)

		_, err := s.TechnicianLogin(context.Background(), doc, "9999")
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})

	t.Run("blocked after too many attempts", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().TechnicianByDocument(gomock.Any(), doc).Return(withPIN, nil)
		d.repo.EXPECT().CountPINAttempts(gomock.Any(), int64(3), gomock.Any()).Return(5, nil)

		_, err := s.TechnicianLogin(context.Background(), doc, "1234")
		require.ErrorIs(t, err, entity.ErrTooManyAttempts)
	})

	t.Run("pin not configured", func(t *testing.T) {
		t.Parallel()

		noPIN := withPIN
		noPIN.PINHash = nil

		s, d := newService(t, testConfig())
		d.repo.EXPECT().TechnicianByDocument(gomock.Any(), doc).Return(noPIN, nil)

		_, err := s.TechnicianLogin(context.Background(), doc, "1234")
		require.ErrorIs(t, err, entity.ErrPINNotConfigured)
	})

	t.Run("unknown document", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().TechnicianByDocument(gomock.Any(), "000").Return(entity.Technician{}, entity.ErrNotFound)

		_, err := s.TechnicianLogin(context.Background(), "000", "1234")
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})
}

func TestService_SetTechnicianPIN(t *testing.T) {
	t.Parallel()

	t.Run("rejects non digit pin", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		err := s.SetTechnicianPIN(context.Background(), 3, "12a4")
		require.ErrorIs(t, err, entity.ErrInvalidPIN)
	})

	t.Run("stores a bcrypt hash", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Technician(gomock.Any(), int64(3)).Return(entity.Technician{ID: 3}, nil)
		d.repo.EXPECT().SetTechnicianPIN(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, h string) error {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("4321")))
				return nil
			})
		d.repo.EXPECT().ClearPINAttempts(gomock.Any(), int64(3)).Return(nil)

		err := s.SetTechnicianPIN(context.Background(), 3, "4321")
		require.NoError(t, err)
	})
}

func TestService_Me(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	_, err := s.Me(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	ctx := entity.WithUser(context.Background(), entity.UserClaims{UserID: 7, Role: entity.RoleSales})
	d.repo.EXPECT().User(gomock.Any(), int64(7)).Return(entity.User{ID: 7, Email: "ventas@zafesys.co"}, nil)

	user, err := s.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "ventas@zafesys.co", user.Email)
}
