// ABOUTME: Dashboard endpoints of the finflow API
// ABOUTME: Summary totals, top categories, and chart series

package client

import (
	"context"
	"net/url"
	"time"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 30 * time.Second
)

// CategoryExpense is one entry of the top-spending breakdown
type CategoryExpense struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Color    string  `json:"color"`
	Icon     string  `json:"icon"`
}

// DashboardSummary is the aggregate view of the account
type DashboardSummary struct {
	TotalIncome       float64           `json:"total_income"`
	TotalExpenses     float64           `json:"total_expenses"`
	Balance           float64           `json:"balance"`
	TransactionsCount int               `json:"transactions_count"`
	TopCategories     []CategoryExpense `json:"top_categories"`
}

// ChartPoint is one period of the income/expense chart series
type ChartPoint struct {
	Period        string  `json:"period"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
}

// GetDashboardSummary calls GET /dashboard/summary. Cached for a short window
// so the watch view's refresh loop doesn't hammer the backend.
func (c *Client) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	if val, ok := c.cache.Get(summaryCacheKey); ok {
		return val.(*DashboardSummary), nil
	}

	var summary DashboardSummary
	if err := c.getJSON(ctx, "/dashboard/summary", nil, &summary); err != nil {
		return nil, err
	}

	c.cache.SetWithTTL(summaryCacheKey, &summary, summaryCacheTTL)
	return &summary, nil
}

// GetChartData calls GET /dashboard/chart-data for the given period
// ("month" by default on the backend)
func (c *Client) GetChartData(ctx context.Context, period string) ([]ChartPoint, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}

	var envelope struct {
		Data []ChartPoint `json:"data"`
	}
	if err := c.getJSON(ctx, "/dashboard/chart-data", q, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
