package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zafesys/suite/internal/entity"
)

// WarehouseOrders lists open installations in the date range. The range defaults to today.
func (s *Service) WarehouseOrders(ctx context.Context, f entity.WarehouseOrderFilter) ([]entity.WarehouseOrder, error) {
	err := f.Normalize(entity.NewDate(s.now()))
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.WarehouseOrders(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get warehouse orders: %w", err)
	}

	return orders, nil
}

func (s *Service) WarehouseOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error) {
	order, err := s.repo.WarehouseOrder(ctx, installationID)
	if err != nil {
		return entity.WarehouseOrder{}, fmt.Errorf("get warehouse order %d: %w", installationID, err)
	}

	return order, nil
}

// WarehouseStaff lists active admin and warehouse users, or every active user when there are none.
func (s *Service) WarehouseStaff(ctx context.Context) ([]entity.User, error) {
	active := true
	staff := make([]entity.User, 0)

	for _, role := range []entity.UserRole{entity.RoleAdmin, entity.RoleWarehouse} {
		users, err := s.repo.Users(ctx, entity.UserFilter{Role: &role, IsActive: &active})
		if err != nil {
			return nil, fmt.Errorf("get %s users: %w", role, err)
		}

		staff = append(staff, users...)
	}

	if len(staff) > 0 {
		return staff, nil
	}

	users, err := s.repo.Users(ctx, entity.UserFilter{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return users, nil
}

// PrepareOrder marks the products of the installation as prepared by the caller.
func (s *Service) PrepareOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error) {
	return s.moveOrder(ctx, installationID, entity.WarehousePrepared)
}

// DeliverOrder marks a prepared order as handed to the technician.
func (s *Service) DeliverOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error) {
	return s.moveOrder(ctx, installationID, entity.WarehouseDelivered)
}

func (s *Service) moveOrder(ctx context.Context, installationID int64, to entity.WarehouseStatus) (entity.WarehouseOrder, error) {
	claims, ok := entity.UserFromCtx(ctx)
	if !ok {
		return entity.WarehouseOrder{}, entity.ErrUnauthenticated
	}

	order, err := s.repo.WarehouseOrder(ctx, installationID)
	if err != nil {
		return entity.WarehouseOrder{}, fmt.Errorf("get warehouse order %d: %w", installationID, err)
	}

	from := order.WarehouseStatus
	if from == to {
		return order, nil
	}

	if !from.CanMoveTo(to) {
		return entity.WarehouseOrder{}, fmt.Errorf("%w: order %d is %s", entity.ErrStatusNotAllowed, installationID, from)
	}

	now := s.now().UTC()

	err = s.repo.SetWarehouseStatus(ctx, installationID, to, claims.UserID, now)
	if err != nil {
		return entity.WarehouseOrder{}, fmt.Errorf("set warehouse status of %d: %w", installationID, err)
	}

	slog.InfoContext(ctx, "warehouse order updated", "installation_id", installationID, "from", from, "to", to)
	s.events.Publish(ctx, entity.EventWarehouseStatus, installationKey(installationID), entity.WarehouseStatusChange{
		InstallationID: installationID,
		From:           from,
		To:             to,
		UserID:         claims.UserID,
		At:             now,
	})

	return s.WarehouseOrder(ctx, installationID)
}
