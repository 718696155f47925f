package api

import (
	_ "embed"
	"net/http"

	"github.com/ksdhruvateja/grocera-sub002/core/usecases/offline_worker"
)

//go:embed web/service-worker.js
var serviceWorkerJS []byte

type WorkerHandler struct {
	workerUsecase *offline_worker.OfflineWorkerUsecase
}

func NewWorkerHandler(workerUsecase *offline_worker.OfflineWorkerUsecase) *WorkerHandler {
	return &WorkerHandler{
		workerUsecase: workerUsecase,
	}
}

// Script serves the browser service worker. Browsers must always revalidate
// it so that a disabled worker replaces older caching versions quickly.
func (h *WorkerHandler) Script(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", "/")
	w.WriteHeader(http.StatusOK)
	w.Write(serviceWorkerJS)
}

// Passthrough forwards unmatched requests to the frontend.
func (h *WorkerHandler) Passthrough(w http.ResponseWriter, r *http.Request) {
	resp := h.workerUsecase.Fetch(r.Context(), r)

	for k, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}
