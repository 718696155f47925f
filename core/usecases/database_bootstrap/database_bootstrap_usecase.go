package database_bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
	"github.com/ksdhruvateja/grocera-sub002/core/ports"
)

// DatabaseBootstrapUsecase opens the store database without holding up the server
type DatabaseBootstrapUsecase struct {
	db      ports.DBPort
	timeout time.Duration
	log     logrus.FieldLogger
	now     func() time.Time

	mu        sync.RWMutex
	status    domain.DatabaseStatus
	attempted bool
}

// NewDatabaseBootstrapUsecase creates a new instance of the usecase
func NewDatabaseBootstrapUsecase(db ports.DBPort, timeout time.Duration, log logrus.FieldLogger) *DatabaseBootstrapUsecase {
	if timeout <= 0 {
		timeout = domain.DefaultDBTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DatabaseBootstrapUsecase{
		db:      db,
		timeout: timeout,
		log:     log,
		now:     time.Now,
		status:  domain.DatabaseStatus{URI: redactURI(db.URI())},
	}
}

// Connect makes a single connection attempt. A failure is logged and kept in
// the status; it is never returned to the caller.
func (u *DatabaseBootstrapUsecase) Connect(ctx context.Context) domain.DatabaseStatus {
	uri := redactURI(u.db.URI())
	u.log.Infof("Connecting to MongoDB: %s", uri)

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	err := u.db.Connect(ctx)
	if err == nil {
		err = u.db.Ping(ctx)
	}
	if err != nil {
		u.log.Errorf("MongoDB connection error: %v", err)
	} else {
		u.log.Info("MongoDB connected")
	}

	st := u.newStatus(uri, err)
	u.mu.Lock()
	u.status = st
	u.attempted = true
	u.mu.Unlock()
	return st
}

// ConnectInBackground runs Connect on its own goroutine. The channel receives
// the outcome once and is then closed.
func (u *DatabaseBootstrapUsecase) ConnectInBackground(ctx context.Context) <-chan domain.DatabaseStatus {
	done := make(chan domain.DatabaseStatus, 1)
	go func() {
		defer close(done)
		done <- u.Connect(ctx)
	}()
	return done
}

// Check pings the database and refreshes the status. Before the first
// connection attempt has finished the database is reported unavailable and
// nothing is recorded.
func (u *DatabaseBootstrapUsecase) Check(ctx context.Context) domain.DatabaseStatus {
	uri := redactURI(u.db.URI())

	u.mu.RLock()
	attempted := u.attempted
	u.mu.RUnlock()
	if !attempted {
		return u.newStatus(uri, domain.ErrDatabaseUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	if err := u.db.Ping(ctx); err != nil {
		return u.record(uri, fmt.Errorf("ping: %w", err))
	}
	return u.record(uri, nil)
}

// Status returns the last recorded outcome without touching the database.
func (u *DatabaseBootstrapUsecase) Status() domain.DatabaseStatus {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.status
}

// Close disconnects from the database.
func (u *DatabaseBootstrapUsecase) Close(ctx context.Context) error {
	if err := u.db.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// record stores the outcome of a ping. It never marks the first connection
// attempt as done; only Connect does that.
func (u *DatabaseBootstrapUsecase) record(uri string, err error) domain.DatabaseStatus {
	st := u.newStatus(uri, err)
	u.mu.Lock()
	if u.attempted {
		u.status = st
	}
	u.mu.Unlock()
	return st
}

func (u *DatabaseBootstrapUsecase) newStatus(uri string, err error) domain.DatabaseStatus {
	st := domain.DatabaseStatus{
		URI:       uri,
		Connected: err == nil,
		CheckedAt: u.now(),
	}
	if err != nil {
		st.Error = err.Error()
	}
	return st
}

// redactURI hides the password of a connection string before it is logged.
func redactURI(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return parsed.Redacted()
}
