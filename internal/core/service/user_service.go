package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// UserService manages account records.
type UserService struct {
	repo ports.UserRepository
	lock ports.RegistrationLock
	log  zerolog.Logger
}

// NewUserService returns a UserService. lock may be nil, in which case
// registrations rely on the existence check alone.
func NewUserService(repo ports.UserRepository, lock ports.RegistrationLock, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, lock: lock, log: log}
}

// Register inserts doc unless an account with the same email exists.
func (s *UserService) Register(ctx context.Context, doc domain.Document) (*ports.RegisterResult, error) {
	email := doc.String(domain.FieldEmail)

	if s.lock != nil && email != "" {
		token, acquired, err := s.lock.Acquire(ctx, email)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("email", email).Msg("registration lock unavailable, continuing without it")
		case !acquired:
			s.log.Debug().Str("email", email).Msg("concurrent registration in flight")
			return &ports.RegisterResult{Existing: true}, nil
		default:
			defer func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), email, token); err != nil {
					s.log.Warn().Err(err).Str("email", email).Msg("failed to release registration lock")
				}
			}()
		}
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Fail("Internal Server Error", err)
	}
	if existing != nil {
		return &ports.RegisterResult{Existing: true}, nil
	}

	res, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, domain.Fail("Internal Server Error", err)
	}

	s.log.Info().Str("email", email).Interface("id", res.InsertedID).Msg("user registered")
	return &ports.RegisterResult{Inserted: res}, nil
}

// ToggleRole flips the account between Admin and Participant.
func (s *UserService) ToggleRole(ctx context.Context, id string) (*domain.RoleToggleResult, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Fail("Failed to update user role", err)
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}

	newRole := domain.NextRole(account.String(domain.FieldRole))
	res, err := s.repo.UpdateByID(ctx, id, domain.Document{domain.FieldRole: newRole})
	if err != nil {
		return nil, domain.Fail("Failed to update user role", err)
	}

	s.log.Info().Str("id", id).Str("role", newRole).Msg("user role changed")
	return &domain.RoleToggleResult{Result: res, NewRole: newRole}, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail("Failed to load users", err)
	}
	return docs, nil
}

// GetByEmail returns the account or nil when none matches.
func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.Document, error) {
	doc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Fail("Failed to load user", err)
	}
	return doc, nil
}

func (s *UserService) UpdateByEmail(ctx context.Context, email string, set domain.Document) (*domain.UpdateResult, error) {
	res, err := s.repo.UpdateByEmail(ctx, email, set)
	if err != nil {
		return nil, domain.Fail("Failed to update user", err)
	}
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, domain.Fail("Failed to delete user", err)
	}
	s.log.Info().Str("id", id).Int64("deleted", res.DeletedCount).Msg("user deleted")
	return res, nil
}

// AdminStatus only answers for the caller's own email, even when pathEmail
// belongs to a real admin.
func (s *UserService) AdminStatus(ctx context.Context, claimEmail, pathEmail string) (bool, error) {
	if pathEmail != claimEmail {
		return false, domain.ErrForbidden
	}

	account, err := s.repo.FindByEmail(ctx, pathEmail)
	if err != nil {
		return false, domain.Fail("Failed to verify admin", err)
	}
	return domain.IsAdmin(account), nil
}
