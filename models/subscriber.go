package models

import "time"

// Subscriber is one email signup for the daily poem. Unsubscribing is a
// soft operation so historical counts stay available to analytics.
type Subscriber struct {
	Email          string     `json:"email"`
	Language       string     `json:"language"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
	IsActive       bool       `json:"isActive"`
}
