package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
)

// environment variables
const (
	envStripeSecretKey  = "STRIPE_SECRET_KEY"
	envMongoURI         = "MONGODB_URI"
	envMongoDatabase    = "MONGODB_DATABASE"
	envDBConnectTimeout = "DB_CONNECT_TIMEOUT" // example: 5s
	envPort             = "PORT"
	envHTTPAddr         = "HTTP_ADDR" // example: 127.0.0.1:5000, wins over PORT
	envLogLevel         = "LOG_LEVEL"
	envFrontendURL      = "FRONTEND_URL" // example: http://localhost:3000
	envAdminEmail       = "ADMIN_EMAIL"
	envAdminPassword    = "ADMIN_PASSWORD"
	envAnthropicAPIKey  = "ANTHROPIC_API_KEY"
	envMCPURL           = "MCP_URL"
)

// LoadSettings reads the environment, falling back to envFile for anything
// unset. A missing envFile is not an error.
func LoadSettings(v *viper.Viper, envFile string) (domain.Settings, error) {
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return domain.Settings{}, fmt.Errorf("read %s: %w", envFile, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, fmt.Errorf("stat %s: %w", envFile, err)
		}
	}

	httpAddr := getString(v, envHTTPAddr, "")
	if httpAddr == "" {
		httpAddr = ":" + getString(v, envPort, domain.DefaultPort)
	}

	mongoURI := getString(v, envMongoURI, "")
	s := domain.Settings{
		HTTPAddr: httpAddr,
		Log:      getString(v, envLogLevel, "info"),

		StripeSecretKey: v.GetString(envStripeSecretKey),

		MongoURI:        mongoURI,
		MongoURIFromEnv: mongoURI != "",
		MongoDatabase:   getString(v, envMongoDatabase, domain.DefaultMongoDatabase),
		MongoTimeout:    v.GetDuration(envDBConnectTimeout),

		FrontendURL: getString(v, envFrontendURL, ""),

		AdminEmail:    getString(v, envAdminEmail, ""),
		AdminPassword: v.GetString(envAdminPassword),

		AnthropicAPIKey: v.GetString(envAnthropicAPIKey),
		MCPURL:          getString(v, envMCPURL, domain.DefaultMCPURL),
	}
	if !s.MongoURIFromEnv {
		s.MongoURI = domain.DefaultMongoURI
	}
	if s.MongoTimeout <= 0 {
		s.MongoTimeout = domain.DefaultDBTimeout
	}
	return s, nil
}

func getString(v *viper.Viper, key, fallback string) string {
	s := strings.TrimSpace(v.GetString(key))
	if s == "" {
		return fallback
	}
	return s
}
