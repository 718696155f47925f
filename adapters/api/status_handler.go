package api

import (
	"encoding/json"
	"net/http"

	"github.com/ksdhruvateja/grocera-sub002/core/usecases/database_bootstrap"
)

type StatusHandler struct {
	databaseUsecase *database_bootstrap.DatabaseBootstrapUsecase
}

func NewStatusHandler(databaseUsecase *database_bootstrap.DatabaseBootstrapUsecase) *StatusHandler {
	return &StatusHandler{
		databaseUsecase: databaseUsecase,
	}
}

// Hello answers the smoke test on the root route. It does not depend on the
// database being reachable.
func (h *StatusHandler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello"))
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StatusHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.databaseUsecase == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "not_ready",
			"database": "not_configured",
		})
		return
	}

	status := h.databaseUsecase.Check(r.Context())
	if !status.Connected {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "not_ready",
			"database": status,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"database": status,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
