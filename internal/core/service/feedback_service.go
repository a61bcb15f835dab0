package service

import (
	"context"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

type FeedbackService struct {
	repo ports.FeedbackRepository
}

func NewFeedbackService(repo ports.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

func (s *FeedbackService) Create(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, domain.Fail("Failed to add feedback", err)
	}
	return res, nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail("Failed to load feedbacks", err)
	}
	return docs, nil
}
