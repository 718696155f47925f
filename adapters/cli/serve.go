package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/spf13/cobra"

	"github.com/ksdhruvateja/grocera-sub002/adapters/api"
	"github.com/ksdhruvateja/grocera-sub002/adapters/cachestore"
	"github.com/ksdhruvateja/grocera-sub002/adapters/diagnostics"
	"github.com/ksdhruvateja/grocera-sub002/adapters/mongodb"
	"github.com/ksdhruvateja/grocera-sub002/adapters/payments"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/database_bootstrap"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/offline_worker"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/stripe_diagnostic"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/store_pages"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	s := a.settings
	log := a.log

	if !s.MongoURIFromEnv {
		log.Warnf("%s is not set, using %s", envMongoURI, s.MongoURI)
	}
	database := database_bootstrap.NewDatabaseBootstrapUsecase(
		mongodb.NewDatabase(s.MongoURI, s.MongoDatabase),
		s.MongoTimeout,
		log.WithField("component", "database"),
	)
	// The listener does not wait for MongoDB.
	database.ConnectInBackground(ctx)

	var upstream *url.URL
	if s.FrontendURL != "" {
		u, err := url.Parse(s.FrontendURL)
		if err != nil {
			return fmt.Errorf("parse %s: %w", envFrontendURL, err)
		}
		upstream = u
	}
	storage, err := cachestore.NewLRUStorage(0, 0)
	if err != nil {
		return err
	}
	worker := offline_worker.NewOfflineWorkerUsecase(storage, cleanhttp.DefaultPooledClient(), upstream, log.WithField("component", "worker"))
	worker.Install()
	if err := worker.Activate(ctx); err != nil {
		return err
	}

	stripeCheck := stripe_diagnostic.NewStripeDiagnosticUsecase(
		payments.NewStripeGateway(cleanhttp.DefaultClient(), log),
		log.WithField("component", "stripe"),
	)
	stripeCheck.Run(ctx, stripe_diagnostic.RunInput{SecretKey: s.StripeSecretKey})

	mcpServer := diagnostics.NewMCPServer(diagnostics.Deps{
		Stripe:    stripeCheck,
		StripeKey: s.StripeSecretKey,
		Database:  database,
		Worker:    worker,
	})

	deps := api.Deps{
		Database: database,
		Pages:    store_pages.NewStorePagesUsecase(s.AdminEmail, s.AdminPassword),
		MCP:      diagnostics.NewHTTPHandler(mcpServer),
		Log:      log,
	}
	if upstream != nil {
		deps.Worker = worker
	}

	srv := api.NewServer(s.HTTPAddr, api.NewRouter(deps), log)
	if err := srv.Start(); err != nil {
		return err
	}

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case serveErr = <-srv.Errors():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.Stop(shutdownCtx)
	if err := database.Close(shutdownCtx); err != nil {
		log.Warnf("Close database: %v", err)
	}
	return serveErr
}
