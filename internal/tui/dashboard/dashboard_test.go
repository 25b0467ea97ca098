// ABOUTME: Tests for the dashboard watch view model
// ABOUTME: Covers message handling, fetch fan-out, and rendering

package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmercadier/finflow/internal/client"
)

// fakeAPI serves canned dashboard data
type fakeAPI struct {
	summary *client.DashboardSummary
	page    *client.TransactionPage
	err     error
}

func (f *fakeAPI) GetDashboardSummary(ctx context.Context) (*client.DashboardSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeAPI) ListTransactions(ctx context.Context, filters client.TransactionFilters) (*client.TransactionPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func testSummary() *client.DashboardSummary {
	return &client.DashboardSummary{
		TotalIncome:       3200,
		TotalExpenses:     1850.75,
		Balance:           1349.25,
		TransactionsCount: 42,
		TopCategories: []client.CategoryExpense{
			{Category: "Food", Total: 620.50, Color: "#EF4444"},
		},
	}
}

func testPage(n int) *client.TransactionPage {
	page := &client.TransactionPage{}
	for i := 0; i < n; i++ {
		page.Data = append(page.Data, client.Transaction{
			ID:          i + 1,
			Amount:      10,
			Type:        "expense",
			Description: "Coffee",
			Category:    client.Category{Name: "Food"},
		})
	}
	return page
}

func TestFetch_ReturnsDataMsg(t *testing.T) {
	api := &fakeAPI{summary: testSummary(), page: testPage(3)}
	m := New(api)

	msg := m.fetch()()
	data, ok := msg.(dataMsg)
	if !ok {
		t.Fatalf("expected dataMsg, got %T", msg)
	}
	if data.summary.TransactionsCount != 42 {
		t.Errorf("unexpected summary: %+v", data.summary)
	}
	if len(data.recent) != 3 {
		t.Errorf("expected 3 recent transactions, got %d", len(data.recent))
	}
}

func TestFetch_LimitsRecentTransactions(t *testing.T) {
	api := &fakeAPI{summary: testSummary(), page: testPage(12)}
	m := New(api)

	msg := m.fetch()()
	data, ok := msg.(dataMsg)
	if !ok {
		t.Fatalf("expected dataMsg, got %T", msg)
	}
	if len(data.recent) != recentCount {
		t.Errorf("expected recent list capped at %d, got %d", recentCount, len(data.recent))
	}
}

func TestFetch_ReturnsErrMsg(t *testing.T) {
	api := &fakeAPI{err: errors.New("backend unavailable")}
	m := New(api)

	msg := m.fetch()()
	if _, ok := msg.(errMsg); !ok {
		t.Fatalf("expected errMsg, got %T", msg)
	}
}

func TestUpdate_DataMsgStopsLoading(t *testing.T) {
	m := New(&fakeAPI{})

	updated, _ := m.Update(dataMsg{summary: testSummary(), recent: testPage(2).Data})
	got := updated.(Model)

	if got.loading {
		t.Error("expected loading cleared after data")
	}
	if got.summary == nil || got.err != nil {
		t.Errorf("unexpected state: summary=%v err=%v", got.summary, got.err)
	}
}

func TestUpdate_ErrMsgKeepsLastData(t *testing.T) {
	m := New(&fakeAPI{})
	updated, _ := m.Update(dataMsg{summary: testSummary()})
	m = updated.(Model)

	updated, _ = m.Update(errMsg{err: errors.New("refresh failed")})
	got := updated.(Model)

	if got.err == nil {
		t.Error("expected error recorded")
	}
	if got.summary == nil {
		t.Error("expected previous summary kept")
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := New(&fakeAPI{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command for q")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestUpdate_RefreshKeySetsLoading(t *testing.T) {
	m := New(&fakeAPI{summary: testSummary(), page: testPage(1)})
	updated, _ := m.Update(dataMsg{summary: testSummary()})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	got := updated.(Model)

	if !got.loading {
		t.Error("expected loading set on refresh")
	}
	if cmd == nil {
		t.Error("expected refresh command")
	}
}

func TestView_RendersSummaryAndRecent(t *testing.T) {
	m := New(&fakeAPI{})
	updated, _ := m.Update(dataMsg{summary: testSummary(), recent: testPage(2).Data})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"finflow dashboard", "Income", "Expenses", "Balance", "42 transactions", "Top categories", "Recent transactions", "Coffee"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestView_RendersErrorState(t *testing.T) {
	m := New(&fakeAPI{})
	updated, _ := m.Update(errMsg{err: errors.New("backend unavailable")})
	m = updated.(Model)

	if view := m.View(); !strings.Contains(view, "backend unavailable") {
		t.Error("expected error message in view")
	}
}

func TestView_RendersLoadingState(t *testing.T) {
	m := New(&fakeAPI{})

	if view := m.View(); !strings.Contains(view, "Loading dashboard") {
		t.Error("expected loading message in view")
	}
}

func TestRenderRecent_EmptyList(t *testing.T) {
	if got := renderRecent(nil); !strings.Contains(got, "No recent transactions") {
		t.Errorf("unexpected empty rendering: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a long description here", 10, "a long de…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
