package ports

import "net/http"

// Fetcher performs outbound HTTP requests on behalf of the offline worker
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}
