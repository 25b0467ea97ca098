// ABOUTME: Transaction commands for the finflow CLI
// ABOUTME: Filterable paginated listing plus add, update, and delete

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/client"
	"github.com/jmercadier/finflow/internal/session"
)

var (
	txType     string
	txCategory int
	txFrom     string
	txTo       string
	txPage     int

	txAmount      float64
	txDescription string
	txDate        string
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Manage transactions",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long: `List transactions with optional filters and pagination.

Filters: --type income|expense, --category <id>, --from/--to (YYYY-MM-DD).`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runTransactionsList(ctx, os.Stdout, api, st, client.TransactionFilters{
			Type:       txType,
			CategoryID: txCategory,
			StartDate:  txFrom,
			EndDate:    txTo,
			Page:       txPage,
		})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var transactionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runTransactionsAdd(ctx, os.Stdout, api, st, client.TransactionInput{
			Amount:          txAmount,
			Type:            txType,
			Description:     txDescription,
			TransactionDate: txDate,
			CategoryID:      txCategory,
		})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var transactionsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a transaction",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid transaction id %q\n", args[0])
			os.Exit(2)
		}

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runTransactionsUpdate(ctx, os.Stdout, api, st, id, client.TransactionInput{
			Amount:          txAmount,
			Type:            txType,
			Description:     txDescription,
			TransactionDate: txDate,
			CategoryID:      txCategory,
		})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var transactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid transaction id %q\n", args[0])
			os.Exit(2)
		}

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runTransactionsDelete(ctx, os.Stdout, api, st, id)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.AddCommand(transactionsListCmd)
	transactionsCmd.AddCommand(transactionsAddCmd)
	transactionsCmd.AddCommand(transactionsUpdateCmd)
	transactionsCmd.AddCommand(transactionsDeleteCmd)

	transactionsListCmd.Flags().StringVar(&txType, "type", "", "Filter by type (income or expense)")
	transactionsListCmd.Flags().IntVar(&txCategory, "category", 0, "Filter by category id")
	transactionsListCmd.Flags().StringVar(&txFrom, "from", "", "Filter from date (YYYY-MM-DD)")
	transactionsListCmd.Flags().StringVar(&txTo, "to", "", "Filter to date (YYYY-MM-DD)")
	transactionsListCmd.Flags().IntVar(&txPage, "page", 1, "Page number")

	for _, c := range []*cobra.Command{transactionsAddCmd, transactionsUpdateCmd} {
		c.Flags().Float64Var(&txAmount, "amount", 0, "Amount")
		c.Flags().StringVar(&txType, "type", "expense", "Type (income or expense)")
		c.Flags().StringVar(&txDescription, "description", "", "Description")
		c.Flags().StringVar(&txDate, "date", time.Now().Format("2006-01-02"), "Transaction date (YYYY-MM-DD)")
		c.Flags().IntVar(&txCategory, "category", 0, "Category id")
	}
}

// runTransactionsList fetches and prints one page of transactions
func runTransactionsList(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, filters client.TransactionFilters) int {
	if !restoreSession(w, st) {
		return 1
	}

	page, err := api.ListTransactions(ctx, filters)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(page, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatTransactionsHuman(page))
	return 0
}

// runTransactionsAdd creates a transaction
func runTransactionsAdd(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, input client.TransactionInput) int {
	if !restoreSession(w, st) {
		return 1
	}

	tx, err := api.CreateTransaction(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Added transaction %d: %s %.2f (%s)\n", tx.ID, signFor(tx.Type), tx.Amount, tx.Description)
	return 0
}

// runTransactionsUpdate updates a transaction
func runTransactionsUpdate(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, id int, input client.TransactionInput) int {
	if !restoreSession(w, st) {
		return 1
	}

	tx, err := api.UpdateTransaction(ctx, id, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Updated transaction %d: %s %.2f (%s)\n", tx.ID, signFor(tx.Type), tx.Amount, tx.Description)
	return 0
}

// runTransactionsDelete deletes a transaction
func runTransactionsDelete(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, id int) int {
	if !restoreSession(w, st) {
		return 1
	}

	if err := api.DeleteTransaction(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted transaction %d\n", id)
	return 0
}

// formatTransactionsHuman renders a page of transactions as a table
func formatTransactionsHuman(page *client.TransactionPage) string {
	if len(page.Data) == 0 {
		return "No transactions found."
	}

	out := fmt.Sprintf("%-6s %-12s %-10s %-28s %-16s %10s\n", "ID", "DATE", "TYPE", "DESCRIPTION", "CATEGORY", "AMOUNT")
	for _, tx := range page.Data {
		out += fmt.Sprintf("%-6d %-12s %-10s %-28s %-16s %s%9.2f\n",
			tx.ID, tx.TransactionDate, tx.Type, clip(tx.Description, 28), clip(tx.Category.Name, 16), signFor(tx.Type), tx.Amount)
	}

	meta := page.Meta
	if meta.Total > meta.PerPage && meta.PerPage > 0 {
		lastPage := meta.LastPage
		if lastPage == 0 {
			lastPage = (meta.Total + meta.PerPage - 1) / meta.PerPage
		}
		out += fmt.Sprintf("\nPage %d of %d (%d transactions)", meta.CurrentPage, lastPage, meta.Total)
	}
	return out
}

func signFor(txType string) string {
	if txType == "income" {
		return "+"
	}
	return "-"
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
