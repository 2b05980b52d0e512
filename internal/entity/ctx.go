package entity

import "context"

type (
	ctxKeyUser       struct{}
	ctxKeyTechnician struct{}
)

// UserClaims identifies an authenticated admin-panel user.
type UserClaims struct {
	UserID int64
	Role   UserRole
}

// TechnicianClaims identifies an authenticated technician app session.
type TechnicianClaims struct {
	TechnicianID int64
}

func WithUser(ctx context.Context, c UserClaims) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, c)
}

func UserFromCtx(ctx context.Context) (UserClaims, bool) {
	c, ok := ctx.Value(ctxKeyUser{}).(UserClaims)
	return c, ok
}

func WithTechnician(ctx context.Context, c TechnicianClaims) context.Context {
	return context.WithValue(ctx, ctxKeyTechnician{}, c)
}

func TechnicianFromCtx(ctx context.Context) (TechnicianClaims, bool) {
	c, ok := ctx.Value(ctxKeyTechnician{}).(TechnicianClaims)
	return c, ok
}
