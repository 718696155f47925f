package offline_worker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
	"github.com/ksdhruvateja/grocera-sub002/core/ports"
)

// Headers that only make sense for a single connection and must not be forwarded.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// OfflineWorkerUsecase is the server side twin of the disabled service worker:
// it keeps no caches and passes every request straight to the network.
type OfflineWorkerUsecase struct {
	caches   ports.CacheStorage
	fetcher  ports.Fetcher
	upstream *url.URL
	log      logrus.FieldLogger

	mu      sync.RWMutex
	state   domain.WorkerState
	claimed bool
}

// NewOfflineWorkerUsecase creates a new instance of the usecase. upstream may
// be nil, in which case every fetch falls back to the unavailable response.
func NewOfflineWorkerUsecase(caches ports.CacheStorage, fetcher ports.Fetcher, upstream *url.URL, log logrus.FieldLogger) *OfflineWorkerUsecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &OfflineWorkerUsecase{
		caches:   caches,
		fetcher:  fetcher,
		upstream: upstream,
		log:      log,
		state:    domain.WorkerParsed,
	}
}

// Install skips the waiting phase so the worker activates immediately.
func (u *OfflineWorkerUsecase) Install() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == domain.WorkerParsed {
		u.state = domain.WorkerActivating
	}
}

// Activate deletes every cache left by earlier worker versions and claims
// the clients. Once it returns without error the storage holds no caches.
func (u *OfflineWorkerUsecase) Activate(ctx context.Context) error {
	for _, name := range u.caches.Keys() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("activate interrupted: %w", err)
		}
		u.caches.Delete(name)
		u.log.Debugf("Deleted cache %q", name)
	}

	u.mu.Lock()
	u.state = domain.WorkerActivated
	u.claimed = true
	u.mu.Unlock()

	u.log.Info("Service worker activated, caches cleared")
	return nil
}

// State returns the lifecycle state and whether clients have been claimed.
func (u *OfflineWorkerUsecase) State() (domain.WorkerState, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state, u.claimed
}

// CacheCount is the number of caches currently in storage.
func (u *OfflineWorkerUsecase) CacheCount() int {
	return len(u.caches.Keys())
}

// Fetch forwards req to the upstream and returns its response verbatim.
// It never fails: any network error turns into an empty 503.
func (u *OfflineWorkerUsecase) Fetch(ctx context.Context, req *http.Request) domain.FetchResponse {
	if u.upstream == nil {
		return domain.UnavailableResponse()
	}

	out, err := u.outboundRequest(ctx, req)
	if err != nil {
		u.log.Warnf("Fetch %s %s: %v", req.Method, req.URL.Path, err)
		return domain.UnavailableResponse()
	}

	resp, err := u.fetcher.Do(out)
	if err != nil {
		u.log.Warnf("Fetch %s %s: %v", req.Method, out.URL, err)
		return domain.UnavailableResponse()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		u.log.Warnf("Fetch %s %s: reading body: %v", req.Method, out.URL, err)
		return domain.UnavailableResponse()
	}

	header := resp.Header.Clone()
	removeHopHeaders(header)
	return domain.FetchResponse{
		Status: resp.StatusCode,
		Header: header,
		Body:   body,
	}
}

func (u *OfflineWorkerUsecase) outboundRequest(ctx context.Context, req *http.Request) (*http.Request, error) {
	target := *u.upstream
	target.Path = strings.TrimSuffix(u.upstream.Path, "/") + req.URL.Path
	target.RawQuery = req.URL.RawQuery

	out, err := http.NewRequestWithContext(ctx, req.Method, target.String(), req.Body)
	if err != nil {
		return nil, err
	}
	out.Header = req.Header.Clone()
	removeHopHeaders(out.Header)
	out.ContentLength = req.ContentLength
	return out, nil
}

func removeHopHeaders(h http.Header) {
	for _, name := range hopHeaders {
		h.Del(name)
	}
}
