// ABOUTME: Register command for the finflow CLI
// ABOUTME: Creates an account and signs the session in on success

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

	"github.com/jmercadier/finflow/internal/client"
	"github.com/jmercadier/finflow/internal/session"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerConfirm  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a finflow account",
	Long: `Create an account on the backend and sign in.

Prompts interactively when flags are omitted. Validation failures (duplicate
email, weak password) are reported with the backend's message.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if registerName == "" || registerEmail == "" || registerPassword == "" {
			if err := promptRegister(&registerName, &registerEmail, &registerPassword, &registerConfirm); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
		}
		if registerConfirm == "" {
			registerConfirm = registerPassword
		}

		st := newSessionStore(newAPIClient())
		exitCode := runRegister(ctx, os.Stdout, st, client.RegisterInput{
			Name:                 registerName,
			Email:                registerEmail,
			Password:             registerPassword,
			PasswordConfirmation: registerConfirm,
		})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerConfirm, "password-confirmation", "", "Password confirmation (defaults to --password)")
}

// promptRegister collects account details interactively
func promptRegister(name, email, password, confirm *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(name),
			huh.NewInput().
				Title("Email").
				Value(email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(confirm),
		),
	)
	return form.Run()
}

// runRegister executes the account creation and returns an exit code
func runRegister(ctx context.Context, w io.Writer, st *session.Store, input client.RegisterInput) int {
	if _, err := st.Register(ctx, input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if !st.IsLoggedIn() {
		fmt.Fprintln(w, "Account created but the backend returned no session token. Run 'finflow login'.")
		return 1
	}

	if user := st.CurrentUser(); user != nil {
		fmt.Fprintf(w, "Account created. Logged in as %s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Fprintln(w, "Account created.")
	}
	return 0
}
