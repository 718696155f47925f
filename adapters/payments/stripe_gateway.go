package payments

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/ksdhruvateja/grocera-sub002/core/ports"
)

// StripeGateway builds stripe-go clients. The zero value talks to the live API
// with the library defaults.
type StripeGateway struct {
	HTTPClient *http.Client
	// APIURL overrides the API endpoint, e.g. to point at stripe-mock.
	APIURL string
	Logger logrus.FieldLogger
}

// DefaultTimeout bounds every Stripe API call when the caller's client has no
// timeout of its own. It matches stripe-go's default client.
const DefaultTimeout = 80 * time.Second

// NewStripeGateway builds a gateway on httpClient. A nil client or one without
// a timeout is replaced by a copy bounded by DefaultTimeout.
func NewStripeGateway(httpClient *http.Client, logger logrus.FieldLogger) *StripeGateway {
	if httpClient == nil {
		httpClient = cleanhttp.DefaultClient()
	}
	if httpClient.Timeout == 0 {
		bounded := *httpClient
		bounded.Timeout = DefaultTimeout
		httpClient = &bounded
	}
	return &StripeGateway{
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

func (g *StripeGateway) NewClient(secretKey string) (ports.PaymentClient, error) {
	cfg := &stripe.BackendConfig{
		HTTPClient:        g.HTTPClient,
		MaxNetworkRetries: stripe.Int64(0),
	}
	if g.APIURL != "" {
		cfg.URL = stripe.String(g.APIURL)
	}
	if g.Logger != nil {
		cfg.LeveledLogger = &leveledLogger{log: g.Logger}
	}

	backends := &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
	}
	return &StripeClient{api: client.New(secretKey, backends)}, nil
}

// StripeClient wraps the stripe-go API client.
type StripeClient struct {
	api *client.API
}

// VerifyCredentials fetches the account balance, the cheapest call every
// restricted and secret key is allowed to make.
func (c *StripeClient) VerifyCredentials(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx
	_, err := c.api.Balance.Get(params)
	return err
}

// leveledLogger routes stripe-go's logging through logrus.
type leveledLogger struct {
	log logrus.FieldLogger
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) { l.log.Debugf(format, v...) }
func (l *leveledLogger) Infof(format string, v ...interface{})  { l.log.Infof(format, v...) }
func (l *leveledLogger) Warnf(format string, v ...interface{})  { l.log.Warnf(format, v...) }
func (l *leveledLogger) Errorf(format string, v ...interface{}) { l.log.Errorf(format, v...) }
