// ABOUTME: Category commands for the finflow CLI
// ABOUTME: Listing and management of income/expense categories

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

	"github.com/spf13/cobra"

	"github.com/jmercadier/finflow/internal/client"
	"github.com/jmercadier/finflow/internal/session"
)

var (
	catName  string
	catType  string
	catColor string
	catIcon  string
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runCategoriesList(ctx, os.Stdout, api, st)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runCategoriesAdd(ctx, os.Stdout, api, st, client.CategoryInput{
			Name:  catName,
			Type:  catType,
			Color: catColor,
			Icon:  catIcon,
		})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid category id %q\n", args[0])
			os.Exit(2)
		}

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runCategoriesUpdate(ctx, os.Stdout, api, st, id, client.CategoryInput{
			Name:  catName,
			Type:  catType,
			Color: catColor,
			Icon:  catIcon,
		})
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid category id %q\n", args[0])
			os.Exit(2)
		}

		api := newAPIClient()
		st := newSessionStore(api)
		exitCode := runCategoriesDelete(ctx, os.Stdout, api, st, id)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesUpdateCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)

	for _, c := range []*cobra.Command{categoriesAddCmd, categoriesUpdateCmd} {
		c.Flags().StringVar(&catName, "name", "", "Category name")
		c.Flags().StringVar(&catType, "type", "expense", "Type (income or expense)")
		c.Flags().StringVar(&catColor, "color", "#6B7280", "Display color (hex)")
		c.Flags().StringVar(&catIcon, "icon", "", "Display icon")
	}
}

// runCategoriesList fetches and prints all categories
func runCategoriesList(ctx context.Context, w io.Writer, api *client.Client, st *session.Store) int {
	if !restoreSession(w, st) {
		return 1
	}

	categories, err := api.ListCategories(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(categories, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(categories) == 0 {
		fmt.Fprintln(w, "No categories found.")
		return 0
	}

	fmt.Fprintf(w, "%-6s %-20s %-10s %-8s %s\n", "ID", "NAME", "TYPE", "COLOR", "ICON")
	for _, c := range categories {
		fmt.Fprintf(w, "%-6d %-20s %-10s %-8s %s\n", c.ID, c.Name, c.Type, c.Color, c.Icon)
	}
	return 0
}

// runCategoriesAdd creates a category
func runCategoriesAdd(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, input client.CategoryInput) int {
	if !restoreSession(w, st) {
		return 1
	}

	cat, err := api.CreateCategory(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Added category %d: %s (%s)\n", cat.ID, cat.Name, cat.Type)
	return 0
}

// runCategoriesUpdate updates a category
func runCategoriesUpdate(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, id int, input client.CategoryInput) int {
	if !restoreSession(w, st) {
		return 1
	}

	cat, err := api.UpdateCategory(ctx, id, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Updated category %d: %s (%s)\n", cat.ID, cat.Name, cat.Type)
	return 0
}

// runCategoriesDelete deletes a category
func runCategoriesDelete(ctx context.Context, w io.Writer, api *client.Client, st *session.Store, id int) int {
	if !restoreSession(w, st) {
		return 1
	}

	if err := api.DeleteCategory(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted category %d\n", id)
	return 0
}
