package ports

import "context"

// PaymentGateway builds clients for the payment processor
type PaymentGateway interface {
	NewClient(secretKey string) (PaymentClient, error)
}

// PaymentClient is the subset of processor calls the backend relies on
type PaymentClient interface {
	// VerifyCredentials performs a read-only call that fails on a rejected key.
	VerifyCredentials(ctx context.Context) error
}
