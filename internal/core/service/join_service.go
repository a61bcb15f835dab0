package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/core/domain"
	"github.com/mediquix/mediquix-server/internal/core/ports"
)

// JoinService manages camp-join records and keeps each camp's
// participantCount in step with new joins.
type JoinService struct {
	joins ports.JoinRepository
	camps ports.CampRepository
	log   zerolog.Logger
}

func NewJoinService(joins ports.JoinRepository, camps ports.CampRepository, log zerolog.Logger) *JoinService {
	return &JoinService{joins: joins, camps: camps, log: log}
}

// Join inserts the record, then increments participantCount on the camp
// with the same campName. The two writes are independent: when the
// increment fails the record stays inserted and the call still fails.
func (s *JoinService) Join(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	res, err := s.joins.Insert(ctx, doc)
	if err != nil {
		return nil, domain.Fail("Error joining camp", err)
	}

	campName := doc[domain.FieldCampName]
	inc, err := s.camps.IncrementParticipants(ctx, campName)
	if err != nil {
		s.log.Error().Err(err).Interface("camp_name", campName).Interface("join_id", res.InsertedID).
			Msg("participant count increment failed, join record kept")
		return nil, domain.Fail("Error joining camp", err)
	}
	if inc.MatchedCount == 0 {
		s.log.Debug().Interface("camp_name", campName).Msg("join recorded for unknown camp")
	}

	return res, nil
}

func (s *JoinService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.joins.List(ctx, "")
	if err != nil {
		return nil, domain.Fail("Failed to load joined camps", err)
	}
	return docs, nil
}

// Get returns the record or nil when no record has that id.
func (s *JoinService) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.joins.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Fail("Failed to load joined camp", err)
	}
	return doc, nil
}

// ListByEmail filters by email; an empty email lists every record.
func (s *JoinService) ListByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	docs, err := s.joins.List(ctx, email)
	if err != nil {
		return nil, domain.Fail("Failed to load joined camps", err)
	}
	return docs, nil
}

func (s *JoinService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.joins.DeleteByID(ctx, id)
	if err != nil {
		return nil, domain.Fail("Failed to delete camp", err)
	}
	return res, nil
}

func (s *JoinService) SetPaymentStatus(ctx context.Context, id string, status any) (*domain.UpdateResult, error) {
	res, err := s.joins.UpdateByID(ctx, id, domain.Document{domain.FieldPaymentStatus: status})
	if err != nil {
		return nil, domain.Fail("Failed to update payment status", err)
	}
	return res, nil
}

func (s *JoinService) SetFeedbackStatus(ctx context.Context, id string, status any) (*domain.UpdateResult, error) {
	res, err := s.joins.UpdateByID(ctx, id, domain.Document{domain.FieldFeedbackStatus: status})
	if err != nil {
		return nil, domain.Fail("Failed to update feedback status", err)
	}
	return res, nil
}

// Patch applies the truthy subset of the patchable fields in body.
func (s *JoinService) Patch(ctx context.Context, id string, body domain.Document) (*domain.UpdateResult, error) {
	res, err := s.joins.UpdateByID(ctx, id, domain.JoinPatch(body))
	if err != nil {
		return nil, domain.Fail("Failed to update camp", err)
	}
	return res, nil
}
