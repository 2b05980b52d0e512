package entity

import (
	"fmt"
	"strings"
	"time"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSales      UserRole = "sales"
	RoleTechnician UserRole = "technician"
	RoleWarehouse  UserRole = "warehouse"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleTechnician, RoleWarehouse:
		return true
	}

	return false
}

func (r UserRole) String() string {
	return string(r)
}

type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	FullName       string     `json:"full_name"`
	Phone          *string    `json:"phone,omitempty"`
	Role           UserRole   `json:"role"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type UserCreate struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"full_name"`
	Phone    *string  `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

const TokenTypeBearer = "bearer"

type TechnicianToken struct {
	Token
	TechnicianID   int64  `json:"technician_id"`
	TechnicianName string `json:"technician_name"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TechnicianCredentials struct {
	DocumentID string `json:"document_id"`
	PIN        string `json:"pin"`
}

const minPasswordLen = 6

func (c *UserCreate) Validate() error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))

	if c.Email == "" || !strings.Contains(c.Email, "@") || c.FullName == "" {
		return ErrInvalidArgument
	}

	if len(c.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidArgument, minPasswordLen)
	}

	if c.Role == "" {
		c.Role = RoleSales
	}

	if !c.Role.IsValid() {
		return fmt.Errorf("%w: role %q", ErrInvalidArgument, c.Role)
	}

	return nil
}

type UserFilter struct {
	Role     *UserRole
	IsActive *bool
}

// UserUpdate is a partial staff user update. Password is hashed by the caller.
type UserUpdate struct {
	Email    *string   `json:"email,omitempty"`
	Password *string   `json:"password,omitempty"`
	FullName *string   `json:"full_name,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	Role     *UserRole `json:"role,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
}

func (u *UserUpdate) Validate() error {
	if u.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*u.Email))
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%w: email %q", ErrInvalidArgument, *u.Email)
		}

		u.Email = &email
	}

	if u.Password != nil && len(*u.Password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidArgument, minPasswordLen)
	}

	if u.FullName != nil && strings.TrimSpace(*u.FullName) == "" {
		return ErrInvalidArgument
	}

	if u.Role != nil && !u.Role.IsValid() {
		return fmt.Errorf("%w: role %q", ErrInvalidArgument, *u.Role)
	}

	return nil
}

func (u UserUpdate) Apply(user *User) {
	setIf(&user.Email, u.Email)
	setIf(&user.FullName, u.FullName)
	setPtrIf(&user.Phone, u.Phone)
	setIf(&user.Role, u.Role)
	setIf(&user.IsActive, u.IsActive)
}
