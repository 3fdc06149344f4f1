package contact

import "time"

type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsSpam    bool      `json:"isSpam"`
	SpamScore int       `json:"spamScore"`
	CreatedAt time.Time `json:"createdAt"`
}
