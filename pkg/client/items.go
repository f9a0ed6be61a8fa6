package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dsemenov/go-shield/models"
)

// CreateItem creates a record owned by the authenticated user.
func (c *Client) CreateItem(ctx context.Context, create models.ItemCreateRequest) (models.Item, error) {
	var created models.Item

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		SetResult(&created).
		Post("/api/v1/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

// GetItem fetches a single record by id.
func (c *Client) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	var found models.Item

	resp, err := c.request(ctx).
		SetResult(&found).
		Get("/api/v1/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return found, nil
}

// ListItems returns a page of the caller's records. Zero limit and offset
// leave the server defaults in effect.
func (c *Client) ListItems(ctx context.Context, limit, offset int64) ([]models.Item, error) {
	var items []models.Item

	req := c.request(ctx).SetResult(&items)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatInt(limit, 10))
	}
	if offset > 0 {
		req.SetQueryParam("offset", strconv.FormatInt(offset, 10))
	}

	resp, err := req.Get("/api/v1/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateItem applies a partial update to a record. Nil fields in update are
// left untouched server-side.
func (c *Client) UpdateItem(ctx context.Context, itemID int64, update models.ItemUpdateRequest) (models.Item, error) {
	var updated models.Item

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		Patch("/api/v1/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return updated, nil
}

// DeleteItem removes a record by id.
func (c *Client) DeleteItem(ctx context.Context, itemID int64) error {
	resp, err := c.request(ctx).
		Delete("/api/v1/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapHTTPError(resp)
}
