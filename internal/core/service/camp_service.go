package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// CampService manages camp listings. Writes are admin-only at the router.
type CampService struct {
	repo ports.CampRepository
	log  zerolog.Logger
}

func NewCampService(repo ports.CampRepository, log zerolog.Logger) *CampService {
	return &CampService{repo: repo, log: log}
}

func (s *CampService) Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, domain.Fail("Failed to add camp", err)
	}
	s.log.Info().Interface("id", res.InsertedID).Str("camp_name", doc.String(domain.FieldCampName)).Msg("camp created")
	return res, nil
}

func (s *CampService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail("Failed to load camps", err)
	}
	return docs, nil
}

// Get returns the camp or nil when no camp has that id.
func (s *CampService) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Fail("Failed to load camp", err)
	}
	return doc, nil
}

// Update merges set into the camp with $set semantics.
func (s *CampService) Update(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	res, err := s.repo.UpdateByID(ctx, id, set)
	if err != nil {
		return nil, domain.Fail("Failed to update camp", err)
	}
	return res, nil
}

func (s *CampService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, domain.Fail("Failed to delete camp", err)
	}
	s.log.Info().Str("id", id).Int64("deleted", res.DeletedCount).Msg("camp deleted")
	return res, nil
}
