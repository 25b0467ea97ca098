// ABOUTME: Tests for the dashboard endpoints
// ABOUTME: Covers summary parsing, short-lived caching, and chart series

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetDashboardSummary_ParsesAndCaches(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/summary" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_income": 3200.00,
			"total_expenses": 1850.75,
			"balance": 1349.25,
			"transactions_count": 42,
			"top_categories": [
				{"category":"Food","total":620.50,"color":"#EF4444","icon":"cart"},
				{"category":"Rent","total":900.00,"color":"#8B5CF6","icon":"home"}
			]
		}`))
	}))
	defer server.Close()

	c := New(server.URL)
	summary, err := c.GetDashboardSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalIncome != 3200 || summary.TotalExpenses != 1850.75 || summary.Balance != 1349.25 {
		t.Errorf("unexpected totals: %+v", summary)
	}
	if summary.TransactionsCount != 42 {
		t.Errorf("expected 42 transactions, got %d", summary.TransactionsCount)
	}
	if len(summary.TopCategories) != 2 || summary.TopCategories[0].Category != "Food" {
		t.Errorf("unexpected top categories: %+v", summary.TopCategories)
	}

	if _, err := c.GetDashboardSummary(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected second call served from cache, got %d hits", got)
	}
}

func TestGetChartData_ForwardsPeriod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/chart-data" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("period"); got != "week" {
			t.Errorf("expected period=week, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"period":"2025-W03","total_income":800,"total_expenses":420.10}]}`))
	}))
	defer server.Close()

	c := New(server.URL)
	points, err := c.GetChartData(context.Background(), "week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Period != "2025-W03" || points[0].TotalExpenses != 420.10 {
		t.Errorf("unexpected chart points: %+v", points)
	}
}

func TestGetChartData_OmitsEmptyPeriod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query string, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	c := New(server.URL)
	if _, err := c.GetChartData(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
