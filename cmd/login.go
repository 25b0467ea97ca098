// ABOUTME: Login command for the finflow CLI
// ABOUTME: Signs in against the backend and persists the session locally

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the finflow backend",
	Long: `Sign in with your email and password.

Prompts interactively when --email or --password are not provided.
The session token is stored locally and attached to subsequent commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if loginEmail == "" || loginPassword == "" {
			if err := promptLogin(&loginEmail, &loginPassword); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
		}

		st := newSessionStore(newAPIClient())
		exitCode := runLogin(ctx, os.Stdout, st, loginEmail, loginPassword)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// promptLogin collects credentials interactively
func promptLogin(email, password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	)
	return form.Run()
}

// runLogin executes the sign-in and returns an exit code
func runLogin(ctx context.Context, w io.Writer, st *session.Store, email, password string) int {
	if _, err := st.Login(ctx, email, password); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	// A 2xx response without a token is a backend quirk the session store
	// refuses to mask: the user is not signed in.
	if !st.IsLoggedIn() {
		fmt.Fprintln(w, "Login succeeded but the backend returned no session token.")
		return 1
	}

	if user := st.CurrentUser(); user != nil {
		fmt.Fprintf(w, "Logged in as %s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Fprintln(w, "Logged in.")
	}
	return 0
}
