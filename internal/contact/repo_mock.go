package contact

import "context"

type repoMock struct {
	messages map[int]*Message
	nextID   int
}

func NewMockMessagesRepo() *repoMock {
	return &repoMock{
		messages: make(map[int]*Message),
		nextID:   1,
	}
}

func (r *repoMock) Add(_ context.Context, m *Message) (*Message, error) {
	m.ID = r.nextID
	r.nextID++
	r.messages[m.ID] = m
	return m, nil
}

func (r *repoMock) List(_ context.Context, includeSpam bool) ([]Message, error) {
	messages := make([]Message, 0)
	for _, m := range r.messages {
		if m.IsSpam && !includeSpam {
			continue
		}
		messages = append(messages, *m)
	}
	return messages, nil
}
