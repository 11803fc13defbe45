package sortly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListCustomFields retrieves all custom field definitions.
func (c *Client) ListCustomFields(ctx context.Context) ([]CustomField, error) {
	raw, err := c.do(ctx, http.MethodGet, "/custom_fields", nil, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &UnclassifiedError{Message: "failed to decode custom field list response", Err: err}
	}

	var fields []CustomField
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &fields); err != nil {
			return nil, &UnclassifiedError{Message: "failed to decode custom field list", Err: err}
		}
	}
	return fields, nil
}

// FetchCustomField retrieves a single custom field definition by id. The
// result is nil when the API returns 404.
func (c *Client) FetchCustomField(ctx context.Context, id int) (*CustomField, error) {
	if id <= 0 {
		return nil, &ValidationError{Field: "id", Message: "custom field id is required"}
	}

	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/custom_fields/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &UnclassifiedError{Message: "failed to decode custom field response", Err: err}
	}

	var field CustomField
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &field); err != nil {
			return nil, &UnclassifiedError{Message: "failed to decode custom field", Err: err}
		}
	}
	return &field, nil
}
