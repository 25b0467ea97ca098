// ABOUTME: Live dashboard watch view as a bubbletea model
// ABOUTME: Shows income/expense totals, top categories, and recent transactions

package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jmercadier/finflow/internal/client"
	"github.com/jmercadier/finflow/internal/tui/styles"
	"github.com/jmercadier/finflow/internal/tui/widgets"
)

const (
	refreshInterval = 30 * time.Second
	recentCount     = 5
)

// api is the slice of the client the dashboard needs
type api interface {
	GetDashboardSummary(ctx context.Context) (*client.DashboardSummary, error)
	ListTransactions(ctx context.Context, filters client.TransactionFilters) (*client.TransactionPage, error)
}

// dataMsg carries a completed fetch
type dataMsg struct {
	summary *client.DashboardSummary
	recent  []client.Transaction
}

// errMsg carries a failed fetch
type errMsg struct {
	err error
}

// tickMsg triggers the periodic refresh
type tickMsg time.Time

// Model is the dashboard watch view
type Model struct {
	api     api
	spinner spinner.Model

	summary *client.DashboardSummary
	recent  []client.Transaction
	err     error
	loading bool
	width   int
}

// New creates a dashboard model backed by the given API client
func New(a api) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return Model{
		api:     a,
		spinner: sp,
		loading: true,
		width:   80,
	}
}

// Init starts the spinner, the first fetch, and the refresh ticker
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(), tick())
}

// Update handles keys, fetch results, and refresh ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetch())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case dataMsg:
		m.summary = msg.summary
		m.recent = msg.recent
		m.err = nil
		m.loading = false

	case errMsg:
		m.err = msg.err
		m.loading = false

	case tickMsg:
		return m, tea.Batch(m.fetch(), tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("finflow dashboard"))
	sb.WriteString("\n")

	switch {
	case m.loading && m.summary == nil:
		sb.WriteString(fmt.Sprintf("%s Loading dashboard...\n", m.spinner.View()))
	case m.err != nil:
		sb.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		sb.WriteString("\n")
	default:
		sb.WriteString(renderSummary(m.summary))
		sb.WriteString("\n")
		sb.WriteString(renderRecent(m.recent))
	}

	sb.WriteString(styles.Help.Render("r refresh · q quit"))
	return sb.String()
}

// fetch loads the summary and the most recent transactions concurrently
func (m Model) fetch() tea.Cmd {
	a := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			summary *client.DashboardSummary
			page    *client.TransactionPage
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			summary, err = a.GetDashboardSummary(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			page, err = a.ListTransactions(gctx, client.TransactionFilters{Page: 1})
			return err
		})
		if err := g.Wait(); err != nil {
			return errMsg{err: err}
		}

		recent := page.Data
		if len(recent) > recentCount {
			recent = recent[:recentCount]
		}
		return dataMsg{summary: summary, recent: recent}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// renderSummary renders the income/expense/balance cards and top categories
func renderSummary(s *client.DashboardSummary) string {
	var sb strings.Builder

	income := styles.Panel.Render(fmt.Sprintf("Income\n%s", styles.IncomeAmount.Render(fmt.Sprintf("%.2f", s.TotalIncome))))
	expenses := styles.Panel.Render(fmt.Sprintf("Expenses\n%s", styles.ExpenseAmount.Render(fmt.Sprintf("%.2f", s.TotalExpenses))))

	balanceStyle := styles.IncomeAmount
	if s.Balance < 0 {
		balanceStyle = styles.ExpenseAmount
	}
	balance := styles.Panel.Render(fmt.Sprintf("Balance\n%s", balanceStyle.Render(fmt.Sprintf("%.2f", s.Balance))))

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, income, " ", expenses, " ", balance))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d transactions", s.TransactionsCount)))
	sb.WriteString("\n")

	if len(s.TopCategories) > 0 {
		sb.WriteString("Top categories\n")
		for _, tc := range s.TopCategories {
			share := 0.0
			if s.TotalExpenses > 0 {
				share = tc.Total / s.TotalExpenses * 100
			}
			sb.WriteString(fmt.Sprintf("  %s %-16s %s %8.2f\n",
				tc.Icon, tc.Category, widgets.ShareBar(share, 20, tc.Color), tc.Total))
		}
	}

	return sb.String()
}

// renderRecent renders the recent transactions list
func renderRecent(transactions []client.Transaction) string {
	if len(transactions) == 0 {
		return styles.Subtitle.Render("No recent transactions") + "\n"
	}

	var sb strings.Builder
	sb.WriteString("Recent transactions\n")
	for _, tx := range transactions {
		amount := fmt.Sprintf("-%.2f", tx.Amount)
		amountStyle := styles.ExpenseAmount
		if tx.Type == "income" {
			amount = fmt.Sprintf("+%.2f", tx.Amount)
			amountStyle = styles.IncomeAmount
		}
		sb.WriteString(fmt.Sprintf("  %s %-24s %-14s %s\n",
			tx.Category.Icon, truncate(tx.Description, 24), tx.Category.Name, amountStyle.Render(amount)))
	}
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
