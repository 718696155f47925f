package domain

import "errors"

var (
	ErrStripeKeyMissing    = errors.New("STRIPE_SECRET_KEY is not set")
	ErrDatabaseUnavailable = errors.New("database is not connected")
)
