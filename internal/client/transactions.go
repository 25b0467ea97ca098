// ABOUTME: Transaction CRUD endpoints of the finflow API
// ABOUTME: Paginated, filterable listing plus mutations guarded by CSRF bootstrap

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Transaction is a single income or expense entry
type Transaction struct {
	ID              int      `json:"id"`
	Amount          float64  `json:"amount"`
	Type            string   `json:"type"` // "income" or "expense"
	Description     string   `json:"description"`
	TransactionDate string   `json:"transaction_date"`
	Category        Category `json:"category"`
	CreatedAt       string   `json:"created_at,omitempty"`
}

// TransactionInput is the create/update payload
type TransactionInput struct {
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	CategoryID      int     `json:"category_id"`
}

// TransactionFilters narrows the transaction listing. Zero values are omitted
// from the query string.
type TransactionFilters struct {
	Type       string
	CategoryID int
	StartDate  string
	EndDate    string
	Page       int
}

func (f TransactionFilters) values() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.CategoryID > 0 {
		q.Set("category_id", strconv.Itoa(f.CategoryID))
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}

// PageMeta is the pagination envelope from list endpoints
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// TransactionPage is one page of transactions with pagination metadata
type TransactionPage struct {
	Data []Transaction `json:"data"`
	Meta PageMeta      `json:"meta"`
}

// ListTransactions calls GET /transactions with the given filters
func (c *Client) ListTransactions(ctx context.Context, filters TransactionFilters) (*TransactionPage, error) {
	var page TransactionPage
	if err := c.getJSON(ctx, "/transactions", filters.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTransaction calls GET /transactions/{id}
func (c *Client) GetTransaction(ctx context.Context, id int) (*Transaction, error) {
	var envelope struct {
		Data Transaction `json:"data"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/transactions/%d", id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// CreateTransaction calls POST /transactions after a fresh CSRF bootstrap
func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*Transaction, error) {
	if err := c.GetCsrfCookie(ctx); err != nil {
		return nil, err
	}
	var envelope struct {
		Data Transaction `json:"data"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/transactions", input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// UpdateTransaction calls PUT /transactions/{id} after a fresh CSRF bootstrap
func (c *Client) UpdateTransaction(ctx context.Context, id int, input TransactionInput) (*Transaction, error) {
	if err := c.GetCsrfCookie(ctx); err != nil {
		return nil, err
	}
	var envelope struct {
		Data Transaction `json:"data"`
	}
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), input, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// DeleteTransaction calls DELETE /transactions/{id} after a fresh CSRF bootstrap
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	if err := c.GetCsrfCookie(ctx); err != nil {
		return err
	}
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil)
}
