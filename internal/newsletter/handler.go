package newsletter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/metrics"
	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"
	"github.com/ivanpet/ivanpetcom/pkg"

	log "github.com/sirupsen/logrus"
)

type subscribersRepo interface {
	Subscribe(ctx context.Context, s *Subscriber) (*Subscriber, error)
	Unsubscribe(ctx context.Context, token string, at time.Time) error
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
}

type Handler struct {
	repo    subscribersRepo
	metrics *metrics.Manager

	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewHandler(repo subscribersRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metrics:        metrics,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type unsubscribeRequest struct {
	Token string `json:"token"`
}

func (handler *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.newsletter.subscribe")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("newsletter subscribe, unmarshal json params: %s", err)
		http.Error(w, "subscribe failed", http.StatusBadRequest)
		return
	}

	if !EmailValid(req.Email) {
		http.Error(w, "error, invalid email", http.StatusBadRequest)
		return
	}

	token, err := handler.RandStringFunc(40)
	if err != nil {
		log.Errorf("newsletter subscribe, generate token: %s", err)
		http.Error(w, "subscribe failed", http.StatusInternalServerError)
		return
	}

	subscriber := &Subscriber{
		Email:            req.Email,
		UnsubscribeToken: token,
		SubscribedAt:     time.Now().UTC(),
	}
	if _, err := handler.repo.Subscribe(ctx, subscriber); err != nil {
		log.Errorf("failed to subscribe %s: %s", req.Email, err)
		http.Error(w, "subscribe failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSubscriptions.Inc()
	log.Debugf("newsletter subscriber added: %d", subscriber.ID)

	pkg.WriteTextResponseOK(w, "subscribed")
}

func (handler *Handler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.newsletter.unsubscribe")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req unsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("newsletter unsubscribe, unmarshal json params: %s", err)
		http.Error(w, "unsubscribe failed", http.StatusBadRequest)
		return
	}

	if req.Token == "" {
		http.Error(w, "error, token empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Unsubscribe(ctx, req.Token, time.Now().UTC()); err != nil {
		if errors.Is(err, ErrSubscriberNotFound) {
			http.Error(w, "unknown token", http.StatusNotFound)
			return
		}
		log.Errorf("failed to unsubscribe: %s", err)
		http.Error(w, "unsubscribe failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "unsubscribed")
}
