// ABOUTME: Logout command for the finflow CLI
// ABOUTME: Ends the local session whether or not the remote sign-out succeeds

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Long: `Invalidate the server-side session and erase the locally stored token.

The local session is always cleared, even when the backend is unreachable.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		st := newSessionStore(newAPIClient())
		exitCode := runLogout(ctx, os.Stdout, st)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout executes the sign-out and returns an exit code. Remote failures
// are reported but never leave the local session in place.
func runLogout(ctx context.Context, w io.Writer, st *session.Store) int {
	if !st.Restore() {
		fmt.Fprintln(w, "Not logged in.")
		return 0
	}

	if err := st.Logout(ctx); err != nil {
		fmt.Fprintf(w, "Warning: remote sign-out failed: %v\n", err)
	}

	fmt.Fprintln(w, "Logged out.")
	return 0
}
