package diagnostics

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ksdhruvateja/grocera-sub002/core/usecases/database_bootstrap"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/offline_worker"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/stripe_diagnostic"
)

const (
	ServerName    = "grocera-diagnostics"
	ServerVersion = "1.0.0"

	ToolStripeKeyStatus     = "stripe_key_status"
	ToolDatabaseStatus      = "database_status"
	ToolServiceWorkerStatus = "service_worker_status"
)

// Deps are the usecases exposed as MCP tools. Any of them may be nil, in which
// case the matching tool is not registered.
type Deps struct {
	Stripe    *stripe_diagnostic.StripeDiagnosticUsecase
	StripeKey string
	Database  *database_bootstrap.DatabaseBootstrapUsecase
	Worker    *offline_worker.OfflineWorkerUsecase
}

type toolHandlers struct {
	deps Deps
}

// NewMCPServer registers the backend diagnostics as MCP tools.
func NewMCPServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions("Read-only health checks for the grocery store backend."),
	)
	h := &toolHandlers{deps: deps}

	if deps.Stripe != nil {
		s.AddTool(mcp.NewTool(ToolStripeKeyStatus,
			mcp.WithDescription("Report whether the Stripe secret key is configured and a client can be created"),
			mcp.WithBoolean("verify",
				mcp.Description("Also ask the Stripe API to accept the key"),
				mcp.DefaultBool(false),
			),
		), h.stripeKeyStatus)
	}
	if deps.Database != nil {
		s.AddTool(mcp.NewTool(ToolDatabaseStatus,
			mcp.WithDescription("Ping MongoDB and report the connection state"),
		), h.databaseStatus)
	}
	if deps.Worker != nil {
		s.AddTool(mcp.NewTool(ToolServiceWorkerStatus,
			mcp.WithDescription("Report the service worker lifecycle state and remaining caches"),
		), h.serviceWorkerStatus)
	}
	return s
}

// NewHTTPHandler serves s over streamable HTTP so it can be mounted on a router.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s)
}

func (h *toolHandlers) stripeKeyStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := stripe_diagnostic.RunInput{
		SecretKey: h.deps.StripeKey,
		Verify:    request.GetBool("verify", false),
	}
	// The report carries the error; the tool call itself still succeeds.
	report, _ := h.deps.Stripe.Run(ctx, input)
	return jsonResult(report)
}

func (h *toolHandlers) databaseStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.deps.Database.Check(ctx))
}

func (h *toolHandlers) serviceWorkerStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, claimed := h.deps.Worker.State()
	return jsonResult(map[string]interface{}{
		"state":       state,
		"clients":     claimed,
		"cache_count": h.deps.Worker.CacheCount(),
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("failed to encode result", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
