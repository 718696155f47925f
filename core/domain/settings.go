package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMongoURI      = "mongodb://localhost:27017/grocery"
	DefaultMongoDatabase = "grocery"
	DefaultPort          = "5000"
	DefaultMCPURL        = "http://localhost:5000/mcp"
	DefaultDBTimeout     = 5 * time.Second
)

// Settings holds everything the backend reads from the environment.
type Settings struct {
	HTTPAddr string
	Log      string

	StripeSecretKey string

	MongoURI        string
	MongoURIFromEnv bool
	MongoDatabase   string
	MongoTimeout    time.Duration

	// Upstream for the passthrough route, usually the frontend dev server.
	FrontendURL string

	AdminEmail    string
	AdminPassword string

	AnthropicAPIKey string
	MCPURL          string
}

// LogLevel maps the textual level to logrus, accepting numeric levels too.
func (s Settings) LogLevel() logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s.Log)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "trace":
		return logrus.TraceLevel
	case "info", "":
		return logrus.InfoLevel
	default:
		if n, err := strconv.Atoi(s.Log); err == nil && n >= 0 && n <= int(logrus.TraceLevel) {
			return logrus.Level(n)
		}
		return logrus.InfoLevel
	}
}
