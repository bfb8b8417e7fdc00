// Package cli defines the cobra command tree for tg.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tecnigestion/tg/internal/gateway"
	"github.com/tecnigestion/tg/internal/logging"
)

var (
	flagFormat  string
	flagServer  string
	flagVerbose bool
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tg",
		Short:         "Manage customers, visits, and quotes from the terminal",
		Long:          "TecniGestión command-line client. Track customers, schedule field-service visits, and manage quotes through the TecniGestión API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flagVerbose)
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "API base URL (default: from session or http://localhost:8000/api)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newWhoamiCmd(),
		newDashboardCmd(),
		newCustomersCmd(),
		newVisitsCmd(),
		newQuotesCmd(),
		newVersionCmd(),
	)

	return root
}

// newGateway creates an API client carrying the stored session. A 401
// from any call clears that session before the error reaches the user.
// A token taken from the environment is not backed by the session file,
// so its rejection must not evict a session it never used.
func newGateway() (*gateway.Client, error) {
	if tok := envToken(); tok != "" {
		return gateway.New(getServerURL(), tok, nil), nil
	}
	st, err := sessionStore()
	if err != nil {
		return nil, err
	}
	return gateway.New(getServerURL(), getToken(), st), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
