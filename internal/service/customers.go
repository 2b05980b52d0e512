package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zafesys/suite/internal/entity"
)

func (s *Service) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, error) {
	f.Page = f.Page.Normalize()

	customers, err := s.repo.Customers(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}

	return customers, nil
}

func (s *Service) Customer(ctx context.Context, id int64) (entity.Customer, error) {
	c, err := s.repo.Customer(ctx, id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}

	return c, nil
}

func (s *Service) CreateCustomer(ctx context.Context, c entity.CustomerCreate) (entity.Customer, error) {
	err := c.Validate()
	if err != nil {
		return entity.Customer{}, err
	}

	_, err = s.repo.CustomerByPhone(ctx, c.Phone)
	if err == nil {
		return entity.Customer{}, fmt.Errorf("customer with phone %s: %w", c.Phone, entity.ErrAlreadyExists)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Customer{}, fmt.Errorf("get customer by phone: %w", err)
	}

	customer, err := s.repo.CreateCustomer(ctx, c)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	slog.InfoContext(ctx, "customer created", "customer_id", customer.ID)

	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id int64, u entity.CustomerUpdate) (entity.Customer, error) {
	if (u.Name != nil && *u.Name == "") || (u.Phone != nil && *u.Phone == "") {
		return entity.Customer{}, entity.ErrInvalidArgument
	}

	c, err := s.repo.Customer(ctx, id)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}

	u.Apply(&c)

	c, err = s.repo.UpdateCustomer(ctx, c)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("update customer %d: %w", id, err)
	}

	return c, nil
}

// DeleteCustomer deactivates the customer. History referencing it is kept.
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	err := s.repo.DeactivateCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivate customer %d: %w", id, err)
	}

	slog.InfoContext(ctx, "customer deactivated", "customer_id", id)

	return nil
}

// ConvertLead creates a customer from the lead's contact data and closes the lead as won.
// Converting the same lead again returns the customer created the first time.
func (s *Service) ConvertLead(ctx context.Context, leadID int64) (entity.Customer, error) {
	lead, err := s.repo.Lead(ctx, leadID)
	if err != nil {
		return entity.Customer{}, fmt.Errorf("get lead %d: %w", leadID, err)
	}

	existing, err := s.repo.CustomerByLead(ctx, leadID)
	if err == nil {
		if lead.Status != entity.LeadStatusWon {
			_, err = s.UpdateLeadStatus(ctx, leadID, entity.LeadStatusWon)
			if err != nil {
				return entity.Customer{}, err
			}
		}

		return existing, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Customer{}, fmt.Errorf("get customer by lead: %w", err)
	}

	customer, err := s.repo.ConvertLead(ctx, entity.CustomerFromLead(lead))
	if err != nil {
		return entity.Customer{}, fmt.Errorf("convert lead %d: %w", leadID, err)
	}

	slog.InfoContext(ctx, "lead converted to customer", "lead_id", leadID, "customer_id", customer.ID)

	if lead.Status != entity.LeadStatusWon {
		s.publishLeadStatus(ctx, leadID, lead.Status, entity.LeadStatusWon)
	}

	return customer, nil
}
