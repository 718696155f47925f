package domain

import "net/http"

// WorkerState follows the browser service worker lifecycle.
type WorkerState string

const (
	WorkerParsed     WorkerState = "parsed"
	WorkerActivating WorkerState = "activating"
	WorkerActivated  WorkerState = "activated"
)

// FetchResponse is what the offline worker hands back for a proxied request.
type FetchResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// UnavailableResponse is the fallback served when the network is unreachable.
func UnavailableResponse() FetchResponse {
	return FetchResponse{
		Status: http.StatusServiceUnavailable,
		Header: http.Header{},
		Body:   []byte{},
	}
}
