package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// AccessService resolves a verified identity to an admin decision. Roles
// are read from the store on every call.
type AccessService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAccessService(users ports.UserRepository, log zerolog.Logger) *AccessService {
	return &AccessService{users: users, log: log}
}

// IsAdmin performs one lookup by email. A missing account or a role other
// than domain.RoleAdmin yields false; store errors are returned as is.
func (s *AccessService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		s.log.Debug().Msg("identity without email denied")
		return false, nil
	}

	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return domain.IsAdmin(account), nil
}
