package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRequestLogger logs one line per request through logrus. It is adapted
// from the chi 'logging' example.
func NewRequestLogger(log logrus.FieldLogger) func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&RequestLogFormatter{Log: log})
}

type RequestLogFormatter struct {
	Log logrus.FieldLogger
}

func (f *RequestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &RequestLogEntry{
		log: f.Log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"uri":        r.RequestURI,
			"remote":     r.RemoteAddr,
		}),
	}
}

type RequestLogEntry struct {
	log logrus.FieldLogger
}

func (e *RequestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	e.log.WithFields(logrus.Fields{
		"status":  status,
		"bytes":   bytes,
		"elapsed": elapsed.Round(time.Microsecond).String(),
	}).Info("request served")
}

// This will log panics to log
func (e *RequestLogEntry) Panic(v interface{}, stack []byte) {
	e.log.WithField("stack", string(stack)).Errorf("panic: %v", v)
}
