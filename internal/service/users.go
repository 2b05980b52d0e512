package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/zafesys/suite/internal/entity"
)

func (s *Service) Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error) {
	if f.Role != nil && !f.Role.IsValid() {
		return nil, fmt.Errorf("%w: role %q", entity.ErrInvalidArgument, *f.Role)
	}

	users, err := s.repo.Users(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}

func (s *Service) User(ctx context.Context, id int64) (entity.User, error) {
	user, err := s.repo.User(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user %d: %w", id, err)
	}

	return user, nil
}

// UpdateUser changes a staff user. Admins cannot deactivate themselves.
func (s *Service) UpdateUser(ctx context.Context, id int64, u entity.UserUpdate) (entity.User, error) {
	err := u.Validate()
	if err != nil {
		return entity.User{}, err
	}

	if u.IsActive != nil && !*u.IsActive && isSelf(ctx, id) {
		return entity.User{}, fmt.Errorf("%w: cannot deactivate own user", entity.ErrInvalidArgument)
	}

	user, err := s.repo.User(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user %d: %w", id, err)
	}

	if u.Email != nil && *u.Email != user.Email {
		existing, err := s.repo.UserByEmail(ctx, *u.Email)

		switch {
		case errors.Is(err, entity.ErrNotFound):
		case err != nil:
			return entity.User{}, fmt.Errorf("get user by email: %w", err)
		case existing.ID != id:
			return entity.User{}, fmt.Errorf("email %s already registered: %w", *u.Email, entity.ErrAlreadyExists)
		}
	}

	u.Apply(&user)

	if u.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*u.Password), bcrypt.DefaultCost)
		if err != nil {
			return entity.User{}, fmt.Errorf("hash password: %w", err)
		}

		user.HashedPassword = string(hash)
	}

	user, err = s.repo.UpdateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("update user %d: %w", id, err)
	}

	slog.InfoContext(ctx, "user updated", "user_id", id, "role", user.Role, "is_active", user.IsActive)

	return user, nil
}

// DeleteUser deactivates the user. Their records keep pointing at them.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	inactive := false

	_, err := s.UpdateUser(ctx, id, entity.UserUpdate{IsActive: &inactive})

	return err
}

func isSelf(ctx context.Context, userID int64) bool {
	claims, ok := entity.UserFromCtx(ctx)
	return ok && claims.UserID == userID
}
