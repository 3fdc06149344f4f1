package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/metrics"
	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"
	"github.com/ivanpet/ivanpetcom/pkg"

	log "github.com/sirupsen/logrus"
)

type messagesRepo interface {
	Add(ctx context.Context, m *Message) (*Message, error)
	List(ctx context.Context, includeSpam bool) ([]Message, error)
}

type Handler struct {
	repo    messagesRepo
	metrics *metrics.Manager
}

func NewHandler(repo messagesRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

type sendMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// HandleSend accepts a contact form submission. Spam gets stored
// flagged and acknowledged like any other message, senders learn
// nothing from the response.
func (handler *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.contact.send")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("contact message, unmarshal json params: %s", err)
		http.Error(w, "send message failed", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Body == "" {
		http.Error(w, "error, email or message empty", http.StatusBadRequest)
		return
	}

	message := &Message{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now().UTC(),
	}
	message.SpamScore, message.IsSpam = CheckSpam(message)

	if _, err := handler.repo.Add(ctx, message); err != nil {
		log.Errorf("failed to store contact message from %s: %s", req.Email, err)
		http.Error(w, "send message failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterContactMessages.Inc()
	if message.IsSpam {
		handler.metrics.CounterSpamMessages.Inc()
		log.Warnf("spam contact message %d stored [score %d]", message.ID, message.SpamScore)
	} else {
		log.Debugf("contact message %d stored", message.ID)
	}

	pkg.WriteTextResponseOK(w, "message received")
}

// HandleList is an admin-only view over received messages.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.contact.list")
	defer span.End()

	includeSpam := r.URL.Query().Get("includeSpam") == "true"

	messages, err := handler.repo.List(ctx, includeSpam)
	if err != nil {
		log.Errorf("failed to list contact messages: %s", err)
		http.Error(w, "failed to list messages", http.StatusInternalServerError)
		return
	}

	messagesJson, err := json.Marshal(messages)
	if err != nil {
		log.Errorf("failed to marshal contact messages: %s", err)
		http.Error(w, "failed to list messages", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, messagesJson, http.StatusOK)
}
