// ABOUTME: Root command for the finflow CLI
// ABOUTME: Handles global flags, environment loading, and shared wiring

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/client"
	"github.com/jmercadier/finflow/internal/logger"
	"github.com/jmercadier/finflow/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:8000/api"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "finflow",
	Short: "CLI for the finflow personal-finance tracker",
	Long: `finflow is a command-line front-end for the finflow personal-finance API.

It manages your session, transactions, categories, and dashboard from the terminal.

Environment Variables:
  FINFLOW_API_URL  Backend API URL (default: http://localhost:8000/api)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env values fill in anything the environment doesn't already set
		_ = godotenv.Load()
		logger.Init()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides FINFLOW_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("FINFLOW_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newAPIClient builds the API client for the configured backend
func newAPIClient() *client.Client {
	return client.New(GetAPIURL())
}

// newSessionStore builds the session store bound to the given client and the
// default credential location
func newSessionStore(api *client.Client) *session.Store {
	return session.NewStore(api, session.NewCredentials(session.DefaultConfigDir()))
}

// restoreSession rehydrates the stored session for commands that need a
// bearer token, printing guidance when none exists
func restoreSession(w io.Writer, st *session.Store) bool {
	if !st.Restore() {
		fmt.Fprintln(w, "Not logged in. Run 'finflow login' first.")
		return false
	}
	return true
}
