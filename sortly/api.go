package sortly

import (
	"context"
)

// API defines the interface for Sortly operations. Consumers should
// depend on this rather than *Client so tests can substitute mocks.
type API interface {
	// ListItems retrieves a page of items
	ListItems(ctx context.Context, opts ListOptions) ([]Item, error)

	// RecentItems retrieves recently updated items
	RecentItems(ctx context.Context, opts ListOptions) ([]Item, error)

	// FetchItem retrieves a single item; nil result when not found
	FetchItem(ctx context.Context, id int) (*Item, error)

	// FetchItems retrieves several items concurrently
	FetchItems(ctx context.Context, ids []int) ([]*Item, error)

	// CreateItem creates an item or folder
	CreateItem(ctx context.Context, item Item) (*Item, error)

	// UpdateItem updates an existing item
	UpdateItem(ctx context.Context, id int, item Item) error

	// DeleteItem deletes an item
	DeleteItem(ctx context.Context, id int) error

	// MoveItem moves quantity units of an item into a folder
	MoveItem(ctx context.Context, id, quantity, folderID int) (*Item, error)

	// SearchItems runs a server-side item search
	SearchItems(ctx context.Context, query SearchQuery) ([]Item, error)

	// ListCustomFields retrieves all custom field definitions
	ListCustomFields(ctx context.Context) ([]CustomField, error)

	// FetchCustomField retrieves one custom field definition; nil when not found
	FetchCustomField(ctx context.Context, id int) (*CustomField, error)

	// RateLimit returns the most recent rate-limit snapshot
	RateLimit() RateLimit
}

var _ API = (*Client)(nil)
