package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"regexp"
	"time"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Mailer sends transactional email. Sends are best-effort: a failed send
// never fails the operation it decorates.
type Mailer interface {
	Send(to, subject, body string) error
}

// SubscriberService manages the daily-poem email list. Unsubscribing is
// soft so totalSubscribersEver stays meaningful.
type SubscriberService struct {
	store  store.KVStore
	now    func() time.Time
	mailer Mailer
}

// NewSubscriberService builds the service; mailer may be nil when SMTP is
// not configured.
func NewSubscriberService(s store.KVStore, mailer Mailer) *SubscriberService {
	return &SubscriberService{store: s, now: time.Now, mailer: mailer}
}

func (s *SubscriberService) load(ctx context.Context) ([]models.Subscriber, error) {
	raw, err := s.store.Get(ctx, store.SubscribersKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []models.Subscriber{}, nil
	}
	if err != nil {
		return nil, NewStorageError(err)
	}
	var subs []models.Subscriber
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, NewStorageError(err)
	}
	return subs, nil
}

func (s *SubscriberService) save(ctx context.Context, subs []models.Subscriber) error {
	if err := s.store.Set(ctx, store.SubscribersKey, subs); err != nil {
		return NewStorageError(err)
	}
	return nil
}

// Subscribe adds an email to the list and sends a best-effort welcome
// message. An address that is already on the list conflicts, even when
// inactive.
func (s *SubscriberService) Subscribe(ctx context.Context, email, language string) (*models.Subscriber, error) {
	if email == "" {
		return nil, NewValidationError("email is required")
	}
	if !emailRE.MatchString(email) {
		return nil, NewValidationError("invalid email format")
	}
	if language == "" {
		language = "english"
	}

	subs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.Email == email {
			return nil, NewConflictError("email already subscribed")
		}
	}

	subscriber := models.Subscriber{
		Email:        email,
		Language:     language,
		SubscribedAt: s.now(),
		IsActive:     true,
	}
	subs = append(subs, subscriber)
	if err := s.save(ctx, subs); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.Send(email,
			"Welcome to Rozana Shayari",
			"<p>You are subscribed to the daily poem. A new poem arrives every morning.</p>",
		); err != nil {
			log.Println("welcome email failed:", err)
		}
	}

	return &subscriber, nil
}

// Unsubscribe deactivates every record matching the email. Unknown
// addresses are a no-op, matching the idempotent behavior callers expect
// from unsubscribe links.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	if email == "" {
		return NewValidationError("email is required")
	}

	subs, err := s.load(ctx)
	if err != nil {
		return err
	}
	stamp := s.now()
	for i := range subs {
		if subs[i].Email == email {
			subs[i].IsActive = false
			subs[i].UnsubscribedAt = &stamp
		}
	}
	return s.save(ctx, subs)
}

// List returns active subscribers plus the all-time signup count.
func (s *SubscriberService) List(ctx context.Context) ([]models.Subscriber, int, error) {
	subs, err := s.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	active := make([]models.Subscriber, 0, len(subs))
	for _, sub := range subs {
		if sub.IsActive {
			active = append(active, sub)
		}
	}
	return active, len(subs), nil
}
