package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/ksdhruvateja/grocera-sub002/core/usecases/database_bootstrap"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/offline_worker"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/store_pages"
)

type Deps struct {
	Database *database_bootstrap.DatabaseBootstrapUsecase
	Pages    *store_pages.StorePagesUsecase
	// Worker forwards unmatched routes; nil means plain 404s.
	Worker *offline_worker.OfflineWorkerUsecase
	// MCP is mounted on /mcp when set.
	MCP http.Handler
	Log logrus.FieldLogger
}

func NewRouter(deps Deps) chi.Router {
	log := deps.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(NewRequestLogger(log))
	r.Use(middleware.Recoverer)

	status := NewStatusHandler(deps.Database)
	r.Get("/", status.Hello)
	r.Get("/health", status.Health)
	r.Get("/ready", status.Ready)

	if deps.Pages != nil {
		pages := NewPagesHandler(deps.Pages, log)
		r.Get("/about", pages.About)
		r.Get("/admin-info", pages.AdminInfo)
	}

	worker := NewWorkerHandler(deps.Worker)
	r.Get("/service-worker.js", worker.Script)

	if deps.MCP != nil {
		r.Handle("/mcp", deps.MCP)
	}

	if deps.Worker != nil {
		r.NotFound(worker.Passthrough)
	}

	return r
}
