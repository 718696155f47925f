package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ksdhruvateja/grocera-sub002/core/domain"
)

// app is shared by every subcommand once the root has loaded the settings.
type app struct {
	envFile  string
	logLevel string

	settings domain.Settings
	log      *logrus.Logger
}

func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "grocera",
		Short: "Grocery delivery store backend",
		Long: `Grocery delivery store backend.
	Configure by passing environment variables or a .env file:
STRIPE_SECRET_KEY      // example: sk_test_...
MONGODB_URI            // default: mongodb://localhost:27017/grocery
MONGODB_DATABASE       // default: grocery
DB_CONNECT_TIMEOUT     // default: 5s
PORT                   // default: 5000
HTTP_ADDR              // example: 127.0.0.1:5000, wins over PORT
LOG_LEVEL              // debug, info, warn, error
FRONTEND_URL           // example: http://localhost:3000, enables passthrough of unknown routes
ADMIN_EMAIL            // shown on /admin-info
ADMIN_PASSWORD         // shown masked on /admin-info
ANTHROPIC_API_KEY      // used by the ops command
MCP_URL                // default: http://localhost:5000/mcp
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings(viper.New(), a.envFile)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				settings.Log = a.logLevel
			}
			a.settings = settings
			a.log = newLogger(cmd.ErrOrStderr(), settings.LogLevel())
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to read settings from")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override LOG_LEVEL")

	rootCmd.AddCommand(
		newServeCommand(a),
		newStripeCheckCommand(a),
		newOpsCommand(a),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}
