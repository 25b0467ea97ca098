// ABOUTME: Whoami command for the finflow CLI
// ABOUTME: Restores the stored session and revalidates it against the backend

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Long: `Show the user associated with the stored session.

The cached session is revalidated against the backend; a revoked or expired
token clears the local session.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		st := newSessionStore(newAPIClient())
		exitCode := runWhoami(ctx, os.Stdout, st)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami restores, revalidates, and prints the current user
func runWhoami(ctx context.Context, w io.Writer, st *session.Store) int {
	if !st.Restore() {
		fmt.Fprintln(w, "Not logged in.")
		return 1
	}

	st.Revalidate(ctx)
	if !st.IsLoggedIn() {
		fmt.Fprintln(w, "Session is no longer valid. Run 'finflow login'.")
		return 1
	}

	user := st.CurrentUser()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	return 0
}
