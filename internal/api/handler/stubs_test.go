package handler

import (
	"context"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

type stubTokenService struct {
	issueFn func(claims domain.Claims) (string, error)
}

func (s *stubTokenService) Issue(claims domain.Claims) (string, error) { return s.issueFn(claims) }
func (s *stubTokenService) Verify(string) (domain.Claims, error)     { return nil, domain.ErrUnauthorized }

type stubCampService struct {
	ports.CampService
	getFn    func(ctx context.Context, id string) (domain.Document, error)
	createFn func(ctx context.Context, doc domain.Document) (*domain.InsertResult, error)
}

func (s *stubCampService) Get(ctx context.Context, id string) (domain.Document, error) {
	return s.getFn(ctx, id)
}

func (s *stubCampService) Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return s.createFn(ctx, doc)
}

type stubJoinService struct {
	ports.JoinService
	patchFn   func(ctx context.Context, id string, body domain.Document) (*domain.UpdateResult, error)
	paymentFn func(ctx context.Context, id string, status any) (*domain.UpdateResult, error)
	byEmailFn func(ctx context.Context, email string) ([]domain.Document, error)
}

func (s *stubJoinService) Patch(ctx context.Context, id string, body domain.Document) (*domain.UpdateResult, error) {
	return s.patchFn(ctx, id, body)
}

func (s *stubJoinService) SetPaymentStatus(ctx context.Context, id string, status any) (*domain.UpdateResult, error) {
	return s.paymentFn(ctx, id, status)
}

func (s *stubJoinService) ListByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	return s.byEmailFn(ctx, email)
}

type stubUserService struct {
	ports.UserService
	registerFn    func(ctx context.Context, doc domain.Document) (*ports.RegisterResult, error)
	adminStatusFn func(ctx context.Context, claimEmail, pathEmail string) (bool, error)
}

func (s *stubUserService) Register(ctx context.Context, doc domain.Document) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, doc)
}

func (s *stubUserService) AdminStatus(ctx context.Context, claimEmail, pathEmail string) (bool, error) {
	return s.adminStatusFn(ctx, claimEmail, pathEmail)
}

type stubPaymentService struct {
	createFn func(ctx context.Context, price float64, key string) (string, error)
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price float64, key string) (string, error) {
	return s.createFn(ctx, price, key)
}
