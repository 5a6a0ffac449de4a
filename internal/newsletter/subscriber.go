// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package newsletter

import "time"

// Subscriber is an email address registered for newsletter updates.
//
// Subscribers are only ever created — never updated or deleted by this
// service. Email uniqueness (case-insensitive) is enforced by the database,
// not by application-level checks.
type Subscriber struct {
	ID           string    `json:"-"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
