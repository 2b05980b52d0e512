package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_UpdateUser(t *testing.T) {
	t.Parallel()

	stored := entity.User{
		ID:             12,
		Email:          "bodega@zafesys.co",
		HashedPassword: "old-hash",
		FullName:       "Bodega",
		Role:           entity.RoleWarehouse,
		IsActive:       true,
	}

	admin := entity.WithUser(context.Background(), entity.UserClaims{UserID: 1, Role: entity.RoleAdmin})

	t.Run("new password is hashed", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		password := "nueva-clave"
		name := "Bodega Norte"

		d.repo.EXPECT().User(gomock.Any(), int64(12)).Return(stored, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
				require.Equal(t, "Bodega Norte", u.FullName)
				require.NotEqual(t, "old-hash", u.HashedPassword)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)))
				return u, nil
			})

		user, err := s.UpdateUser(admin, 12, entity.UserUpdate{Password: &password, FullName: &name})
		require.NoError(t, err)
		require.Equal(t, "Bodega Norte", user.FullName)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		email := "Ventas@zafesys.co"

		d.repo.EXPECT().User(gomock.Any(), int64(12)).Return(stored, nil)
		d.repo.EXPECT().UserByEmail(gomock.Any(), "ventas@zafesys.co").Return(entity.User{ID: 3}, nil)

		_, err := s.UpdateUser(admin, 12, entity.UserUpdate{Email: &email})
		require.ErrorIs(t, err, entity.ErrAlreadyExists)
	})

	t.Run("admin cannot deactivate themselves", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		inactive := false

		_, err := s.UpdateUser(admin, 1, entity.UserUpdate{IsActive: &inactive})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		role := entity.RoleSales

		d.repo.EXPECT().User(gomock.Any(), int64(99)).Return(entity.User{}, entity.ErrNotFound)

		_, err := s.UpdateUser(admin, 99, entity.UserUpdate{Role: &role})
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_DeleteUser(t *testing.T) {
	t.Parallel()

	admin := entity.WithUser(context.Background(), entity.UserClaims{UserID: 1, Role: entity.RoleAdmin})

	t.Run("deactivates", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().User(gomock.Any(), int64(12)).Return(entity.User{ID: 12, IsActive: true, Role: entity.RoleSales}, nil)
		d.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
				require.False(t, u.IsActive)
				return u, nil
			})

		require.NoError(t, s.DeleteUser(admin, 12))
	})

	t.Run("own user", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		require.ErrorIs(t, s.DeleteUser(admin, 1), entity.ErrInvalidArgument)
	})
}

func TestService_Users(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	bogus := entity.UserRole("gerente")

	_, err := s.Users(context.Background(), entity.UserFilter{Role: &bogus})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	role := entity.RoleWarehouse
	d.repo.EXPECT().Users(gomock.Any(), entity.UserFilter{Role: &role}).Return([]entity.User{{ID: 12}}, nil)

	users, err := s.Users(context.Background(), entity.UserFilter{Role: &role})
	require.NoError(t, err)
	require.Len(t, users, 1)
}
