package sfdc

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UploadFile attaches the file at path to the given record id as a new
// ContentVersion. The title is the file name without its extension.
func (c *Client) UploadFile(ctx context.Context, recordID, path string) (*CreateResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	body := map[string]any{
		"Title":                  strings.TrimSuffix(name, filepath.Ext(name)),
		"PathOnClient":           path,
		"VersionData":            base64.StdEncoding.EncodeToString(data),
		"FirstPublishLocationId": recordID,
	}

	res, err := c.Create(ctx, "ContentVersion", body)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", name, err)
	}
	c.log.Infow("uploaded file", "file", name, "record", recordID)
	return res, nil
}
