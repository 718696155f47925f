package ports

import "context"

// DBPort defines the interface for the store database connection
type DBPort interface {
	URI() string
	Connect(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
