package newsletter

import (
	"context"
	"time"
)

type repoMock struct {
	subscribers map[string]*Subscriber
	nextID      int
}

func NewMockSubscribersRepo() *repoMock {
	return &repoMock{
		subscribers: make(map[string]*Subscriber),
		nextID:      1,
	}
}

func (r *repoMock) Subscribe(_ context.Context, s *Subscriber) (*Subscriber, error) {
	if existing, ok := r.subscribers[s.Email]; ok {
		existing.UnsubscribedAt = nil
		existing.SubscribedAt = s.SubscribedAt
		s.ID = existing.ID
		return existing, nil
	}
	s.ID = r.nextID
	r.nextID++
	r.subscribers[s.Email] = s
	return s, nil
}

func (r *repoMock) Unsubscribe(_ context.Context, token string, at time.Time) error {
	for _, s := range r.subscribers {
		if s.UnsubscribeToken == token && s.UnsubscribedAt == nil {
			s.UnsubscribedAt = &at
			return nil
		}
	}
	return ErrSubscriberNotFound
}

func (r *repoMock) GetByEmail(_ context.Context, email string) (*Subscriber, error) {
	s, ok := r.subscribers[email]
	if !ok {
		return nil, ErrSubscriberNotFound
	}
	return s, nil
}
