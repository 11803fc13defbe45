package sortly

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"
)

// Item types as reported by the API. Folders are items of type "folder".
const (
	TypeItem   = "item"
	TypeFolder = "folder"
)

// Item represents a Sortly item or folder. Fields pass through the API's
// JSON verbatim; polymorphic parts (photos, custom attribute values) are
// kept as raw JSON.
type Item struct {
	ID          int      `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Type        string   `json:"type,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	MinQuantity *float64 `json:"min_quantity,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	ParentID    *int     `json:"parent_id,omitempty"`
	SID         string   `json:"sid,omitempty"`
	LabelURL    string   `json:"label_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	Photos                json.RawMessage `json:"photos,omitempty"`
	CustomAttributeValues json.RawMessage `json:"custom_attribute_values,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// IsFolder reports whether the item is a folder.
func (i *Item) IsFolder() bool {
	return i.Type == TypeFolder
}

// CustomField represents a custom field definition.
type CustomField struct {
	ID        int      `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Type      string   `json:"type,omitempty"`
	AppliesTo []string `json:"applies_to,omitempty"`
}

// ListOptions controls paging and scoping of list requests. The zero
// value requests the API's defaults.
type ListOptions struct {
	Page     int
	PerPage  int
	FolderID *int
	// IncludeFields requests optional item fields (e.g. "photos").
	IncludeFields []string
}

// values serializes the options to a query string mapping. Returns nil
// when nothing is set so the request URL carries no query at all.
func (o ListOptions) values() url.Values {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.FolderID != nil {
		v.Set("folder_id", strconv.Itoa(*o.FolderID))
	}
	for _, field := range o.IncludeFields {
		v.Add("include", field)
	}
	if len(v) == 0 {
		return nil
	}
	return v
}

// SearchQuery is the payload for the item search endpoint.
type SearchQuery struct {
	Query     string   `json:"query,omitempty"`
	FolderIDs []int    `json:"folder_ids,omitempty"`
	ItemType  string   `json:"type,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Page      int      `json:"page,omitempty"`
	PerPage   int      `json:"per_page,omitempty"`
}

// dataEnvelope is the `{"data": ...}` wrapper around every payload the
// API returns.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}
