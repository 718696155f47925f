package stripe_diagnostic

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
	"github.com/ksdhruvateja/grocera-sub002/core/ports"
)

// RunInput carries what the diagnostic needs from the environment
type RunInput struct {
	SecretKey string
	// Verify asks the processor to accept the key with a read-only call.
	Verify bool
}

// StripeDiagnosticUsecase checks that the payment client can be loaded at startup
type StripeDiagnosticUsecase struct {
	gateway ports.PaymentGateway
	log     logrus.FieldLogger
}

// NewStripeDiagnosticUsecase creates a new instance of the usecase
func NewStripeDiagnosticUsecase(gateway ports.PaymentGateway, log logrus.FieldLogger) *StripeDiagnosticUsecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StripeDiagnosticUsecase{
		gateway: gateway,
		log:     log,
	}
}

// Run logs whether the secret key is present and builds a client when it is.
// A missing key or a failing client is reported, never fatal; panics raised
// while loading the client are recovered into the returned error.
func (u *StripeDiagnosticUsecase) Run(ctx context.Context, input RunInput) (report domain.StripeReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loading stripe client: %v", r)
			report.Error = err.Error()
			u.log.Errorf("Error loading Stripe: %v", err)
		}
	}()

	u.log.Info("Testing Stripe module loading...")

	report.KeyPresent = domain.HasStripeKey(input.SecretKey)
	u.log.Infof("Stripe Key present: %t", report.KeyPresent)

	if !report.KeyPresent {
		u.log.Errorf("Error: %v", domain.ErrStripeKeyMissing)
		report.Error = domain.ErrStripeKeyMissing.Error()
		return report, domain.ErrStripeKeyMissing
	}

	client, err := u.gateway.NewClient(strings.TrimSpace(input.SecretKey))
	if err != nil {
		err = fmt.Errorf("failed to create stripe client: %w", err)
		report.Error = err.Error()
		u.log.Errorf("Error loading Stripe: %v", err)
		return report, err
	}
	report.ClientCreated = true
	u.log.Info("Stripe initialized successfully")

	if !input.Verify {
		return report, nil
	}

	if err := client.VerifyCredentials(ctx); err != nil {
		err = fmt.Errorf("failed to verify stripe key: %w", err)
		report.Error = err.Error()
		u.log.Errorf("Error verifying Stripe key: %v", err)
		return report, err
	}
	report.Verified = true
	u.log.Info("Stripe key accepted by the API")

	return report, nil
}
