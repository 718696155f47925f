package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/ksdhruvateja/grocera-sub002/adapters/assistant"
)

const connectTimeout = 30 * time.Second

func newOpsCommand(a *app) *cobra.Command {
	var (
		mcpURL string
		prompt string
	)
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "Chat with Claude about the running backend through its MCP diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.settings.AnthropicAPIKey == "" {
				return errors.New(envAnthropicAPIKey + " is not set")
			}
			if mcpURL == "" {
				mcpURL = a.settings.MCPURL
			}

			ctx := cmd.Context()
			connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
			defer cancel()
			mcpClient, serverInfo, err := assistant.Connect(connectCtx, mcpURL)
			if err != nil {
				return err
			}
			defer mcpClient.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Connected to server: %s (version %s)\n",
				serverInfo.ServerInfo.Name,
				serverInfo.ServerInfo.Version)

			claude := anthropic.NewClient(option.WithAPIKey(a.settings.AnthropicAPIKey))
			console := assistant.NewConsole(mcpClient, claude, os.Stdin, out, a.log)
			if err := console.LoadTools(ctx); err != nil {
				return err
			}
			return console.Run(ctx, prompt)
		},
	}
	cmd.Flags().StringVar(&mcpURL, "mcp-url", "", "diagnostics endpoint, defaults to MCP_URL")
	cmd.Flags().StringVar(&prompt, "prompt", "Give me a status report of the store backend.", "first message sent to Claude")
	return cmd
}
