package ports

import (
	"context"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// TokenService issues and verifies access tokens.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (domain.Claims, error)
}

// AccessService resolves whether an identity holds the admin role.
type AccessService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type FeedbackService interface {
	Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
}

type CampService interface {
	Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	Update(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}

type JoinService interface {
	Join(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Document, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
	SetPaymentStatus(ctx context.Context, id string, status any) (*domain.UpdateResult, error)
	SetFeedbackStatus(ctx context.Context, id string, status any) (*domain.UpdateResult, error)
	Patch(ctx context.Context, id string, body domain.Document) (*domain.UpdateResult, error)
}

// RegisterResult is the outcome of a registration: either Inserted is set,
// or Existing is true and nothing was written.
type RegisterResult struct {
	Inserted *domain.InsertResult
	Existing bool
}

type UserService interface {
	Register(ctx context.Context, doc domain.Document) (*RegisterResult, error)
	ToggleRole(ctx context.Context, id string) (*domain.RoleToggleResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	GetByEmail(ctx context.Context, email string) (domain.Document, error)
	UpdateByEmail(ctx context.Context, email string, set domain.Document) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
	// AdminStatus answers the self-only admin check. It returns
	// domain.ErrForbidden when pathEmail is not the caller's own email.
	AdminStatus(ctx context.Context, claimEmail, pathEmail string) (bool, error)
}

// PaymentProvider creates payment intents with an external processor.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error)
}

type PaymentService interface {
	// CreateIntent creates a USD card intent for price dollars and returns its client secret.
	CreateIntent(ctx context.Context, price float64, idempotencyKey string) (string, error)
}
