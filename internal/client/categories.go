// ABOUTME: Category CRUD endpoints of the finflow API
// ABOUTME: Listing is served from the TTL cache; mutations invalidate it

package client

import (
	"context"
	"fmt"
	"net/http"
)

const categoriesCacheKey = "categories"

// Category classifies transactions as a named income or expense bucket
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"` // "income" or "expense"
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryInput is the create/update payload
type CategoryInput struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ListCategories calls GET /categories. Results are cached briefly since
// categories change rarely and several commands resolve them.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	if val, ok := c.cache.Get(categoriesCacheKey); ok {
		return val.([]Category), nil
	}

	var envelope struct {
		Data []Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/categories", nil, &envelope); err != nil {
		return nil, err
	}

	c.cache.Set(categoriesCacheKey, envelope.Data)
	return envelope.Data, nil
}

// CreateCategory calls POST /categories after a fresh CSRF bootstrap
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	if err := c.GetCsrfCookie(ctx); err != nil {
		return nil, err
	}
	var envelope struct {
		Data Category `json:"data"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/categories", input, &envelope); err != nil {
		return nil, err
	}
	c.cache.Clear(categoriesCacheKey)
	return &envelope.Data, nil
}

// UpdateCategory calls PUT /categories/{id} after a fresh CSRF bootstrap
func (c *Client) UpdateCategory(ctx context.Context, id int, input CategoryInput) (*Category, error) {
	if err := c.GetCsrfCookie(ctx); err != nil {
		return nil, err
	}
	var envelope struct {
		Data Category `json:"data"`
	}
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), input, &envelope); err != nil {
		return nil, err
	}
	c.cache.Clear(categoriesCacheKey)
	return &envelope.Data, nil
}

// DeleteCategory calls DELETE /categories/{id} after a fresh CSRF bootstrap
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	if err := c.GetCsrfCookie(ctx); err != nil {
		return err
	}
	if err := c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.Clear(categoriesCacheKey)
	return nil
}
