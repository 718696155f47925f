package stripe_diagnostic

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
	"github.com/ksdhruvateja/grocera-sub002/core/ports"
)

// Mock implementation of PaymentGateway for testing
type mockGateway struct {
	created     []string
	createErr   error
	verifyErr   error
	shouldPanic bool
}

type mockClient struct {
	verifyErr error
}

func (c *mockClient) VerifyCredentials(ctx context.Context) error {
	return c.verifyErr
}

func (m *mockGateway) NewClient(secretKey string) (ports.PaymentClient, error) {
	if m.shouldPanic {
		panic("cannot find module 'stripe'")
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, secretKey)
	return &mockClient{verifyErr: m.verifyErr}, nil
}

func hasMessage(entries []*logrus.Entry, level logrus.Level, msg string) bool {
	for _, e := range entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

func TestStripeDiagnosticUsecase_Run(t *testing.T) {
	tests := []struct {
		name          string
		input         RunInput
		setupMock     func(*mockGateway)
		expectPresent bool
		expectCreated bool
		expectVerify  bool
		expectErr     error
		expectAnyErr  bool
	}{
		{
			name:          "missing key",
			input:         RunInput{},
			setupMock:     func(m *mockGateway) {},
			expectPresent: false,
			expectErr:     domain.ErrStripeKeyMissing,
		},
		{
			name:          "whitespace key is still set",
			input:         RunInput{SecretKey: "   "},
			setupMock:     func(m *mockGateway) {},
			expectPresent: true,
			expectCreated: true,
		},
		{
			name:          "key present",
			input:         RunInput{SecretKey: "sk_test_123"},
			setupMock:     func(m *mockGateway) {},
			expectPresent: true,
			expectCreated: true,
		},
		{
			name:          "key present and verified",
			input:         RunInput{SecretKey: "sk_test_123", Verify: true},
			setupMock:     func(m *mockGateway) {},
			expectPresent: true,
			expectCreated: true,
			expectVerify:  true,
		},
		{
			name:  "verification rejected",
			input: RunInput{SecretKey: "sk_test_bad", Verify: true},
			setupMock: func(m *mockGateway) {
				m.verifyErr = errors.New("invalid api key")
			},
			expectPresent: true,
			expectCreated: true,
			expectAnyErr:  true,
		},
		{
			name:  "client construction fails",
			input: RunInput{SecretKey: "sk_test_123"},
			setupMock: func(m *mockGateway) {
				m.createErr = errors.New("mock error")
			},
			expectPresent: true,
			expectAnyErr:  true,
		},
		{
			name:  "panic while loading is recovered",
			input: RunInput{SecretKey: "sk_test_123"},
			setupMock: func(m *mockGateway) {
				m.shouldPanic = true
			},
			expectPresent: true,
			expectAnyErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockGateway{}
			tt.setupMock(gateway)
			logger, hook := test.NewNullLogger()

			usecase := NewStripeDiagnosticUsecase(gateway, logger)
			report, err := usecase.Run(context.Background(), tt.input)

			require.Equal(t, tt.expectPresent, report.KeyPresent)
			require.Equal(t, tt.expectCreated, report.ClientCreated)
			require.Equal(t, tt.expectVerify, report.Verified)

			switch {
			case tt.expectErr != nil:
				require.ErrorIs(t, err, tt.expectErr)
				require.NotEmpty(t, report.Error)
			case tt.expectAnyErr:
				require.Error(t, err)
				require.NotEmpty(t, report.Error)
			default:
				require.NoError(t, err)
				require.True(t, report.OK())
			}

			if tt.expectPresent {
				require.True(t, hasMessage(hook.AllEntries(), logrus.InfoLevel, "Stripe Key present: true"))
			} else {
				require.True(t, hasMessage(hook.AllEntries(), logrus.InfoLevel, "Stripe Key present: false"))
			}
		})
	}
}

func TestStripeDiagnosticUsecase_MissingKeyDoesNotBuildClient(t *testing.T) {
	gateway := &mockGateway{}
	logger, hook := test.NewNullLogger()

	report, _ := NewStripeDiagnosticUsecase(gateway, logger).Run(context.Background(), RunInput{})

	require.Empty(t, gateway.created)
	require.False(t, report.ClientCreated)

	var errorLogged bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errorLogged = true
		}
	}
	require.True(t, errorLogged, "missing key must be logged as an error")
}

func TestStripeDiagnosticUsecase_TrimsKey(t *testing.T) {
	gateway := &mockGateway{}
	logger, _ := test.NewNullLogger()

	_, err := NewStripeDiagnosticUsecase(gateway, logger).Run(context.Background(), RunInput{SecretKey: " sk_test_abc\n"})

	require.NoError(t, err)
	require.Equal(t, []string{"sk_test_abc"}, gateway.created)
}

func TestStripeDiagnosticUsecase_WhitespaceKeyBuildsClient(t *testing.T) {
	gateway := &mockGateway{}
	logger, hook := test.NewNullLogger()

	report, err := NewStripeDiagnosticUsecase(gateway, logger).Run(context.Background(), RunInput{SecretKey: "   "})

	require.NoError(t, err)
	require.True(t, report.KeyPresent)
	require.True(t, report.ClientCreated)
	require.Equal(t, []string{""}, gateway.created)
	require.True(t, hasMessage(hook.AllEntries(), logrus.InfoLevel, "Stripe Key present: true"))
	require.False(t, hasMessage(hook.AllEntries(), logrus.ErrorLevel, "Error: "+domain.ErrStripeKeyMissing.Error()))
}
