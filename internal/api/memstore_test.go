package api

import (
	"context"
	"errors"
	"maps"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// memCollection is an in-memory stand-in for one collection. calls counts
// every operation so tests can assert that a gate never reached the store.
type memCollection struct {
	mu    sync.Mutex
	docs  []domain.Document
	calls int
	err   error
}

func (m *memCollection) touch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

func (m *memCollection) insert(doc domain.Document) (*domain.InsertResult, error) {
	if err := m.touch(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID()
	stored := maps.Clone(doc)
	if stored == nil {
		stored = domain.Document{}
	}
	stored["_id"] = id.Hex()
	m.docs = append(m.docs, stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id.Hex()}, nil
}

func (m *memCollection) find(match func(domain.Document) bool) ([]domain.Document, error) {
	if err := m.touch(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Document{}
	for _, d := range m.docs {
		if match(d) {
			out = append(out, maps.Clone(d))
		}
	}
	return out, nil
}

func (m *memCollection) findOne(match func(domain.Document) bool) (domain.Document, error) {
	docs, err := m.find(match)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return docs[0], nil
}

func (m *memCollection) update(match func(domain.Document) bool, apply func(domain.Document)) (*domain.UpdateResult, error) {
	if err := m.touch(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	res := &domain.UpdateResult{Acknowledged: true}
	for _, d := range m.docs {
		if match(d) {
			apply(d)
			res.MatchedCount, res.ModifiedCount = 1, 1
			break
		}
	}
	return res, nil
}

func (m *memCollection) remove(match func(domain.Document) bool) (*domain.DeleteResult, error) {
	if err := m.touch(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.docs {
		if match(d) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func (m *memCollection) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func byID(id string) (func(domain.Document) bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	return func(d domain.Document) bool { return d["_id"] == id }, nil
}

func byField(field string, v any) func(domain.Document) bool {
	return func(d domain.Document) bool { return d[field] == v }
}

func all(domain.Document) bool { return true }

func set(fields domain.Document) func(domain.Document) {
	return func(d domain.Document) {
		for k, v := range fields {
			d[k] = v
		}
	}
}

type memUsers struct{ memCollection }

func (r *memUsers) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *memUsers) List(context.Context) ([]domain.Document, error) { return r.find(all) }
func (r *memUsers) FindByID(_ context.Context, id string) (domain.Document, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(m)
}
func (r *memUsers) FindByEmail(_ context.Context, email string) (domain.Document, error) {
	return r.findOne(byField(domain.FieldEmail, email))
}
func (r *memUsers) UpdateByID(_ context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.update(m, set(fields))
}
func (r *memUsers) UpdateByEmail(_ context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	return r.update(byField(domain.FieldEmail, email), set(fields))
}
func (r *memUsers) DeleteByID(_ context.Context, id string) (*domain.DeleteResult, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.remove(m)
}

type memCamps struct{ memCollection }

func (r *memCamps) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *memCamps) List(context.Context) ([]domain.Document, error) { return r.find(all) }
func (r *memCamps) FindByID(_ context.Context, id string) (domain.Document, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(m)
}
func (r *memCamps) UpdateByID(_ context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.update(m, set(fields))
}
func (r *memCamps) DeleteByID(_ context.Context, id string) (*domain.DeleteResult, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.remove(m)
}
func (r *memCamps) IncrementParticipants(_ context.Context, campName any) (*domain.UpdateResult, error) {
	return r.update(byField(domain.FieldCampName, campName), func(d domain.Document) {
		n, _ := d[domain.FieldParticipantCount].(int)
		d[domain.FieldParticipantCount] = n + 1
	})
}

type memJoins struct{ memCollection }

func (r *memJoins) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *memJoins) List(_ context.Context, email string) ([]domain.Document, error) {
	if email == "" {
		return r.find(all)
	}
	return r.find(byField(domain.FieldEmail, email))
}
func (r *memJoins) FindByID(_ context.Context, id string) (domain.Document, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(m)
}
func (r *memJoins) UpdateByID(_ context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.update(m, set(fields))
}
func (r *memJoins) DeleteByID(_ context.Context, id string) (*domain.DeleteResult, error) {
	m, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.remove(m)
}

type memFeedback struct{ memCollection }

func (r *memFeedback) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *memFeedback) List(context.Context) ([]domain.Document, error) { return r.find(all) }

type fakeProvider struct {
	last domain.PaymentIntentRequest
	err  error
}

func (p *fakeProvider) CreatePaymentIntent(_ context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	return &domain.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

var errStoreDown = errors.New("server selection timeout")
