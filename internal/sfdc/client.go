package sfdc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/colinp85/simpler-salesforce/internal/records"
	"github.com/colinp85/simpler-salesforce/internal/schema"
)

func (c *Client) restURL(path string) string {
	return fmt.Sprintf("%s/services/data/v%s%s", c.instanceURL, c.apiVersion, path)
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, rawURL string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: %s: %s", req.Method, req.URL.Path, resp.Status, bytes.TrimSpace(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type describeResponse struct {
	Fields []schema.FieldMetadata `json:"fields"`
}

// Describe fetches the raw field metadata listing for one object name.
func (c *Client) Describe(ctx context.Context, object string) ([]schema.FieldMetadata, error) {
	var out describeResponse
	if err := c.get(ctx, c.restURL("/sobjects/"+object+"/describe"), &out); err != nil {
		return nil, fmt.Errorf("describing %s: %w", object, err)
	}
	return out.Fields, nil
}

type globalDescribeResponse struct {
	SObjects []struct {
		Name string `json:"name"`
	} `json:"sobjects"`
}

// ObjectNames returns the API name of every object the instance exposes.
func (c *Client) ObjectNames(ctx context.Context) ([]string, error) {
	var out globalDescribeResponse
	if err := c.get(ctx, c.restURL("/sobjects"), &out); err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}
	names := make([]string, len(out.SObjects))
	for i, o := range out.SObjects {
		names[i] = o.Name
	}
	return names, nil
}

type queryResponse struct {
	Done           bool             `json:"done"`
	NextRecordsURL string           `json:"nextRecordsUrl"`
	TotalSize      int              `json:"totalSize"`
	Records        []records.Record `json:"records"`
}

// Query executes a SOQL query, following nextRecordsUrl until the result
// set is complete, and returns all matching records in source order.
func (c *Client) Query(ctx context.Context, query string) ([]records.Record, error) {
	next := c.restURL("/query?q=" + url.QueryEscape(query))

	var all []records.Record
	for {
		var page queryResponse
		if err := c.get(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("running query: %w", err)
		}
		all = append(all, page.Records...)
		if page.Done || page.NextRecordsURL == "" {
			break
		}
		next = c.instanceURL + page.NextRecordsURL
	}
	return all, nil
}
