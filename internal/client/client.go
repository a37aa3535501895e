// Package client provides a typed HTTP client for the catalog API, used by
// the board CLI and the message composer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mneis/alternative-communicator/internal/apierror"
	"github.com/mneis/alternative-communicator/internal/dto"
	"github.com/mneis/alternative-communicator/internal/model"
)

// Client talks to the catalog REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Categories fetches all board categories in display order.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.get(ctx, "/api/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Category fetches one category by id.
func (c *Client) Category(ctx context.Context, id int) (*model.Category, error) {
	var out model.Category
	if err := c.get(ctx, fmt.Sprintf("/api/categories/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cards fetches every card, without a defined order.
func (c *Client) Cards(ctx context.Context) ([]model.Card, error) {
	var out []model.Card
	if err := c.get(ctx, "/api/cards", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CardsByCategory fetches one category's cards in display order.
func (c *Client) CardsByCategory(ctx context.Context, categoryID int) ([]model.Card, error) {
	var out []model.Card
	if err := c.get(ctx, fmt.Sprintf("/api/categories/%d/cards", categoryID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a new board category.
func (c *Client) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*model.Category, error) {
	var out model.Category
	if err := c.post(ctx, "/api/categories", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCard creates a new card in an existing category.
func (c *Client) CreateCard(ctx context.Context, req dto.CreateCardRequest) (*model.Card, error) {
	var out model.Card
	if err := c.post(ctx, "/api/cards", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog: create request: %w", err)
	}
	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("catalog: marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("catalog: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		// The API always answers errors with the {"message"} envelope.
		var apiErr apierror.APIError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return fmt.Errorf("catalog: %s (status %d)", apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("catalog: server returned %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("catalog: decode response: %w", err)
	}
	return nil
}
