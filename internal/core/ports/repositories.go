package ports

import (
	"context"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// Repositories take path ids as hex strings and return domain.ErrInvalidID
// when an id is not a valid ObjectID. Single-record lookups return a nil
// document, not an error, when nothing matches.

// FeedbackRepository persists feedback documents.
type FeedbackRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
}

// CampRepository persists camp listings.
type CampRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	UpdateByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error)
	// IncrementParticipants adds one to participantCount on the camp whose
	// campName matches. No match is not an error.
	IncrementParticipants(ctx context.Context, campName any) (*domain.UpdateResult, error)
}

// JoinRepository persists camp-join records.
type JoinRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	// List returns every record, or only those with the given email when it is non-empty.
	List(ctx context.Context, email string) ([]domain.Document, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	UpdateByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// UserRepository persists account records.
type UserRepository interface {
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Document, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	FindByEmail(ctx context.Context, email string) (domain.Document, error)
	UpdateByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error)
	UpdateByEmail(ctx context.Context, email string, set domain.Document) (*domain.UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// RegistrationLock serialises concurrent registrations of the same email.
// Acquire reports false when another registration holds the lock; otherwise
// it returns the token that Release must present.
type RegistrationLock interface {
	Acquire(ctx context.Context, email string) (token string, ok bool, err error)
	Release(ctx context.Context, email, token string) error
}
