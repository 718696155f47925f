package mongodb

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
)

// Database implements ports.DBPort on top of the official MongoDB driver.
type Database struct {
	uri  string
	name string

	mu     sync.RWMutex
	client *mongo.Client
}

func NewDatabase(uri, name string) *Database {
	if uri == "" {
		uri = domain.DefaultMongoURI
	}
	if name == "" {
		name = domain.DefaultMongoDatabase
	}
	return &Database{uri: uri, name: name}
}

func (d *Database) URI() string {
	return d.uri
}

func (d *Database) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", d.name, err)
	}

	d.mu.Lock()
	previous := d.client
	d.client = client
	d.mu.Unlock()

	if previous != nil {
		_ = previous.Disconnect(ctx)
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	client := d.current()
	if client == nil {
		return domain.ErrDatabaseUnavailable
	}
	cmd := bson.D{{Key: "ping", Value: 1}}
	if err := client.Database(d.name).RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("ping %s: %w", d.name, err)
	}
	return nil
}

func (d *Database) Close(ctx context.Context) error {
	d.mu.Lock()
	client := d.client
	d.client = nil
	d.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func (d *Database) current() *mongo.Client {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.client
}
