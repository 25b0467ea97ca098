// ABOUTME: Dashboard command for the finflow CLI
// ABOUTME: One-shot summary output or a live bubbletea watch view

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/client"
	"github.com/jmercadier/finflow/internal/session"
	"github.com/jmercadier/finflow/internal/tui/dashboard"
)

var (
	dashboardWatch bool
	chartPeriod    string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the account summary",
	Long: `Display total income, expenses, balance, and top spending categories.

With --watch, opens a live view that refreshes periodically.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		api := newAPIClient()
		st := newSessionStore(api)

		if dashboardWatch {
			exitCode := runDashboardWatch(os.Stdout, api, st)
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return
		}

		exitCode := runDashboard(ctx, os.Stdout, api, st)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var dashboardChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show income and expenses per period",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runDashboardChart(ctx, os.Stdout, api, st, chartPeriod)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardWatch, "watch", false, "Open the live dashboard view")
	dashboardCmd.AddCommand(dashboardChartCmd)
	dashboardChartCmd.Flags().StringVar(&chartPeriod, "period", "month", "Grouping period (month or week)")
}

// runDashboard prints the summary once
func runDashboard(ctx context.Context, w io.Writer, api *client.Client, st *session.Store) int {
	if !restoreSession(w, st) {
		return 1
	}

	summary, err := api.GetDashboardSummary(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatSummaryHuman(summary))
	return 0
}

// runDashboardChart prints the income/expense series per period
func runDashboardChart(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, period string) int {
	if !restoreSession(w, st) {
		return 1
	}

	points, err := api.GetChartData(ctx, period)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(points, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(points) == 0 {
		fmt.Fprintln(w, "No data for this period.")
		return 0
	}

	fmt.Fprintf(w, "%-12s %12s %12s %12s\n", "PERIOD", "INCOME", "EXPENSES", "NET")
	for _, p := range points {
		fmt.Fprintf(w, "%-12s %12.2f %12.2f %12.2f\n", p.Period, p.TotalIncome, p.TotalExpenses, p.TotalIncome-p.TotalExpenses)
	}
	return 0
}

// runDashboardWatch runs the live bubbletea view
func runDashboardWatch(w io.Writer, api *client.Client, st *session.Store) int {
	if !restoreSession(w, st) {
		return 1
	}

	p := tea.NewProgram(dashboard.New(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	return 0
}

// formatSummaryHuman formats the dashboard summary for human readability
func formatSummaryHuman(s *client.DashboardSummary) string {
	out := fmt.Sprintf(`Income:       %10.2f
Expenses:     %10.2f
Balance:      %10.2f
Transactions: %d`,
		s.TotalIncome, s.TotalExpenses, s.Balance, s.TransactionsCount)

	if len(s.TopCategories) > 0 {
		out += "\n\nTop categories:"
		for _, tc := range s.TopCategories {
			out += fmt.Sprintf("\n  %-20s %10.2f", tc.Category, tc.Total)
		}
	}
	return out
}
