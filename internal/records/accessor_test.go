package records

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/colinp85/simpler-salesforce/internal/schema"
)

type staticSource struct {
	snaps []schema.ObjectSnapshot
}

func (s staticSource) List() ([]schema.ObjectSnapshot, error) {
	return s.snaps, nil
}

// fakeExecutor returns canned responses keyed by the exact query string,
// recording every query it sees.
type fakeExecutor struct {
	queries   []string
	responses map[string][]Record
	err       error
}

func (f *fakeExecutor) Query(_ context.Context, query string) ([]Record, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.responses[query], nil
}

func testCatalog(t *testing.T) *schema.Catalog {
	t.Helper()
	cat := schema.NewCatalog(zap.NewNop().Sugar())
	cat.LoadSnapshots(staticSource{snaps: []schema.ObjectSnapshot{
		{Object: "Account", Fields: []*schema.Field{
			{Name: "Id", Type: "id"},
			{Name: "Name", Type: "string"},
			{Name: "OwnerId", Type: "reference", Reference: "User"},
			{Name: "Parent__c", Type: "reference", Reference: "Account"},
		}},
		{Object: "User", Fields: []*schema.Field{
			{Name: "Id", Type: "id"},
			{Name: "Name", Type: "string"},
		}},
	}}, nil)
	return cat
}

func newAccessor(t *testing.T, exec QueryExecutor) *Accessor {
	t.Helper()
	return NewAccessor(testCatalog(t), exec, zap.NewNop().Sugar())
}

func TestGetObjectBuildsSchemaOrderQuery(t *testing.T) {
	exec := &fakeExecutor{responses: map[string][]Record{
		"SELECT Id, Name FROM User": {{"Id": "005", "Name": "Jane"}},
	}}
	acc := newAccessor(t, exec)

	recs := acc.GetObject(context.Background(), "User", "")
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"SELECT Id, Name FROM User"}, exec.queries)
}

func TestGetObjectMissingSchema(t *testing.T) {
	exec := &fakeExecutor{}
	acc := newAccessor(t, exec)

	recs := acc.GetObject(context.Background(), "Contact", "")
	assert.Empty(t, recs)
	assert.Empty(t, exec.queries, "no query should run without a schema")
}

func TestGetObjectQueryFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("connection reset")}
	acc := newAccessor(t, exec)

	assert.Empty(t, acc.GetObject(context.Background(), "Account", ""))
}

func TestGetObjectByIDNotFound(t *testing.T) {
	exec := &fakeExecutor{responses: map[string][]Record{}}
	acc := newAccessor(t, exec)

	rec := acc.GetObjectByID(context.Background(), "Account", "001x0000003DGT2AAC")
	assert.Nil(t, rec)
	assert.Equal(t,
		[]string{"SELECT Id, Name, OwnerId, Parent__c FROM Account WHERE Id = '001x0000003DGT2AAC'"},
		exec.queries)
}

func TestGetObjectByIDFirstMatchWins(t *testing.T) {
	exec := &fakeExecutor{responses: map[string][]Record{
		"SELECT Id, Name, OwnerId, Parent__c FROM Account WHERE Id = '001A'": {
			{"Id": "001A", "Name": "first"},
			{"Id": "001A", "Name": "second"},
		},
	}}
	acc := newAccessor(t, exec)

	rec := acc.GetObjectByID(context.Background(), "Account", "001A")
	require.NotNil(t, rec)
	assert.Equal(t, "first", rec["Name"])
}
