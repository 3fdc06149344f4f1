package newsletter

import (
	"regexp"
	"time"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Subscriber struct {
	ID               int        `json:"id"`
	Email            string     `json:"email"`
	UnsubscribeToken string     `json:"-"`
	SubscribedAt     time.Time  `json:"subscribedAt"`
	UnsubscribedAt   *time.Time `json:"unsubscribedAt,omitempty"`
}

func EmailValid(email string) bool {
	return emailRegex.MatchString(email)
}
