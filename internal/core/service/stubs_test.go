package service

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// memCollection is an in-memory stand-in for a single Mongo collection.
type memCollection struct {
	mu     sync.Mutex
	docs   []domain.Document
	nextID int

	inserts int
	reads   int
	updates int

	insertErr error
	findErr   error
	updateErr error
	deleteErr error
}

func (m *memCollection) insert(doc domain.Document) (*domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts++
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.nextID++
	id := fmt.Sprintf("%024x", m.nextID)
	stored := maps.Clone(doc)
	if stored == nil {
		stored = domain.Document{}
	}
	stored["_id"] = id
	m.docs = append(m.docs, stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *memCollection) find(match func(domain.Document) bool) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.findErr != nil {
		return nil, m.findErr
	}
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
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	res := &domain.UpdateResult{Acknowledged: true}
	for _, d := range m.docs {
		if match(d) {
			apply(d)
			res.MatchedCount = 1
			res.ModifiedCount = 1
			break
		}
	}
	return res, nil
}

func (m *memCollection) delete(match func(domain.Document) bool) (*domain.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	for i, d := range m.docs {
		if match(d) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func all(domain.Document) bool { return true }

func byID(id string) func(domain.Document) bool {
	return func(d domain.Document) bool { return d["_id"] == id }
}

func byField(key string, v any) func(domain.Document) bool {
	return func(d domain.Document) bool { return d[key] == v }
}

func setFields(set domain.Document) func(domain.Document) {
	return func(d domain.Document) {
		for k, v := range set {
			d[k] = v
		}
	}
}

func validID(id string) error {
	if len(id) != 24 {
		return domain.ErrInvalidID
	}
	return nil
}

// --- users ---

type stubUserRepo struct{ memCollection }

func (r *stubUserRepo) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *stubUserRepo) List(context.Context) ([]domain.Document, error) { return r.find(all) }
func (r *stubUserRepo) FindByID(_ context.Context, id string) (domain.Document, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.findOne(byID(id))
}
func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (domain.Document, error) {
	return r.findOne(byField(domain.FieldEmail, email))
}
func (r *stubUserRepo) UpdateByID(_ context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.update(byID(id), setFields(set))
}
func (r *stubUserRepo) UpdateByEmail(_ context.Context, email string, set domain.Document) (*domain.UpdateResult, error) {
	return r.update(byField(domain.FieldEmail, email), setFields(set))
}
func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (*domain.DeleteResult, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.delete(byID(id))
}

// --- camps ---

type stubCampRepo struct{ memCollection }

func (r *stubCampRepo) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *stubCampRepo) List(context.Context) ([]domain.Document, error) { return r.find(all) }
func (r *stubCampRepo) FindByID(_ context.Context, id string) (domain.Document, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.findOne(byID(id))
}
func (r *stubCampRepo) UpdateByID(_ context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.update(byID(id), setFields(set))
}
func (r *stubCampRepo) DeleteByID(_ context.Context, id string) (*domain.DeleteResult, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.delete(byID(id))
}
func (r *stubCampRepo) IncrementParticipants(_ context.Context, campName any) (*domain.UpdateResult, error) {
	return r.update(byField(domain.FieldCampName, campName), func(d domain.Document) {
		n, _ := d[domain.FieldParticipantCount].(int)
		d[domain.FieldParticipantCount] = n + 1
	})
}

// --- joins ---

type stubJoinRepo struct{ memCollection }

func (r *stubJoinRepo) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *stubJoinRepo) List(_ context.Context, email string) ([]domain.Document, error) {
	if email == "" {
		return r.find(all)
	}
	return r.find(byField(domain.FieldEmail, email))
}
func (r *stubJoinRepo) FindByID(_ context.Context, id string) (domain.Document, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.findOne(byID(id))
}
func (r *stubJoinRepo) UpdateByID(_ context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.update(byID(id), setFields(set))
}
func (r *stubJoinRepo) DeleteByID(_ context.Context, id string) (*domain.DeleteResult, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return r.delete(byID(id))
}

// --- feedback ---

type stubFeedbackRepo struct{ memCollection }

func (r *stubFeedbackRepo) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(doc)
}
func (r *stubFeedbackRepo) List(context.Context) ([]domain.Document, error) { return r.find(all) }

// --- registration lock ---

// stubLock maps each held email to its holder's token.
type stubLock struct {
	held       map[string]string
	acquireErr error
	issued     int
	released   []string
}

func newStubLock() *stubLock { return &stubLock{held: map[string]string{}} }

func (l *stubLock) Acquire(_ context.Context, email string) (string, bool, error) {
	if l.acquireErr != nil {
		return "", false, l.acquireErr
	}
	if _, ok := l.held[email]; ok {
		return "", false, nil
	}
	l.issued++
	token := fmt.Sprintf("token-%d", l.issued)
	l.held[email] = token
	return token, true, nil
}

func (l *stubLock) Release(_ context.Context, email, token string) error {
	if l.held[email] == token {
		delete(l.held, email)
		l.released = append(l.released, email)
	}
	return nil
}

// --- payment provider ---

type stubProvider struct {
	got []domain.PaymentIntentRequest
	err error
}

func (p *stubProvider) CreatePaymentIntent(_ context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	p.got = append(p.got, req)
	if p.err != nil {
		return nil, p.err
	}
	return &domain.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}, nil
}
