package sfdc

import (
	"context"
	"fmt"
)

// CreateResult is the instance's response to a record insert.
type CreateResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Errors  []any  `json:"errors"`
}

// Create inserts a new record of the given object type and returns its id.
func (c *Client) Create(ctx context.Context, object string, data map[string]any) (*CreateResult, error) {
	var out CreateResult
	if err := c.postJSON(ctx, c.restURL("/sobjects/"+object), data, &out); err != nil {
		return nil, fmt.Errorf("creating %s: %w", object, err)
	}
	c.log.Infow("created record", "object", object, "id", out.ID)
	return &out, nil
}
