// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package newsletter

import "context"

// Repository is the storage contract for newsletter subscribers.
type Repository interface {
	// Insert persists a new subscriber.
	//
	// It returns apperr.Conflict when the email is already subscribed (the
	// database unique index is the single source of truth — there is no
	// racy check-then-insert), and apperr.Internal when the insert does not
	// report a newly created identifier.
	Insert(context context.Context, subscriber *Subscriber) error
}
