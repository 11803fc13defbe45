package sortly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ListItems retrieves a page of items.
func (c *Client) ListItems(ctx context.Context, opts ListOptions) ([]Item, error) {
	raw, err := c.do(ctx, http.MethodGet, "/items", opts.values(), nil)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(items)).Msg("Retrieved items from Sortly")
	return items, nil
}

// RecentItems retrieves recently updated items.
func (c *Client) RecentItems(ctx context.Context, opts ListOptions) ([]Item, error) {
	raw, err := c.do(ctx, http.MethodGet, "/items/recent", opts.values(), nil)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw)
}

// FetchItem retrieves a single item by id. A missing item is not an
// error: the result is nil when the API returns 404.
func (c *Client) FetchItem(ctx context.Context, id int) (*Item, error) {
	if id <= 0 {
		return nil, &ValidationError{Field: "id", Message: "item id is required"}
	}

	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return decodeItem(raw)
}

// CreateItem creates an item or folder. The name is required; when it is
// missing a ValidationError is returned without any network call.
func (c *Client) CreateItem(ctx context.Context, item Item) (*Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, &ValidationError{Field: "name", Message: "item name is required"}
	}

	raw, err := c.do(ctx, http.MethodPost, "/items", nil, item)
	if err != nil {
		return nil, err
	}

	created, err := decodeItem(raw)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Int("item_id", created.ID).Str("name", created.Name).Msg("Created Sortly item")
	return created, nil
}

// UpdateItem updates an existing item.
func (c *Client) UpdateItem(ctx context.Context, id int, item Item) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: "item id is required"}
	}

	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), nil, item)
	return err
}

// DeleteItem deletes an item by id.
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: "item id is required"}
	}

	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil); err != nil {
		return err
	}

	c.logger.Info().Int("item_id", id).Msg("Deleted Sortly item")
	return nil
}

// MoveItem moves quantity units of an item into the given folder. A zero
// quantity is valid and moves nothing but the item's folder assignment.
func (c *Client) MoveItem(ctx context.Context, id, quantity, folderID int) (*Item, error) {
	if id <= 0 {
		return nil, &ValidationError{Field: "id", Message: "item id is required"}
	}
	if quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Message: "quantity cannot be negative"}
	}

	payload := map[string]int{
		"quantity":  quantity,
		"folder_id": folderID,
	}
	raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/items/%d/move", id), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeItem(raw)
}

// SearchItems runs a server-side item search.
func (c *Client) SearchItems(ctx context.Context, query SearchQuery) ([]Item, error) {
	raw, err := c.do(ctx, http.MethodPost, "/items/search", nil, query)
	if err != nil {
		return nil, err
	}
	return decodeItems(raw)
}

// decodeItem unwraps a single-item data envelope. A nil raw value (a
// missing resource on read) decodes to a nil item.
func decodeItem(raw json.RawMessage) (*Item, error) {
	if raw == nil {
		return nil, nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &UnclassifiedError{Message: "failed to decode item response", Err: err}
	}

	var item Item
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &item); err != nil {
			return nil, &UnclassifiedError{Message: "failed to decode item", Err: err}
		}
	}
	return &item, nil
}

// decodeItems unwraps a list data envelope. A nil raw value (a missing
// collection on read) decodes to an empty list.
func decodeItems(raw json.RawMessage) ([]Item, error) {
	if raw == nil {
		return nil, nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &UnclassifiedError{Message: "failed to decode item list response", Err: err}
	}

	var items []Item
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &items); err != nil {
			return nil, &UnclassifiedError{Message: "failed to decode item list", Err: err}
		}
	}
	return items, nil
}
