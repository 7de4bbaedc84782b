package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/colinp85/simpler-salesforce/internal/schema"
)

func testStore(t *testing.T) *Store {
	return New(t.TempDir(), zap.NewNop().Sugar())
}

func TestWriteListRoundTrip(t *testing.T) {
	store := testStore(t)

	fields := []*schema.Field{
		{Name: "Id", Label: "Account ID", Type: "id", Length: 18},
		{Name: "OwnerId", Label: "Owner ID", Type: "reference", Reference: "User"},
		{Name: "Status__c", Type: "picklist", PicklistValues: []string{"New", "Open", "Closed"}},
	}
	require.NoError(t, store.Write("Account", fields))

	snaps, err := store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	assert.Equal(t, "Account", snaps[0].Object)
	assert.Equal(t, fields, snaps[0].Fields)
}

func TestListSkipsUnparseableSnapshot(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Write("Account", []*schema.Field{{Name: "Id"}}))

	// Invalid YAML and a non-list document both get skipped, not fatal.
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "Broken.yaml"), []byte("{invalid: [yaml"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "Mapping.yaml"), []byte("name: not-a-list\n"), 0o644))

	snaps, err := store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "Account", snaps[0].Object)
}

func TestListEmptyDir(t *testing.T) {
	store := testStore(t)
	snaps, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

type roundTripProvider struct {
	objects map[string][]schema.FieldMetadata
}

func (p roundTripProvider) Describe(_ context.Context, object string) ([]schema.FieldMetadata, error) {
	metas, ok := p.objects[object]
	if !ok {
		return nil, errors.New("no such object")
	}
	return metas, nil
}

func (p roundTripProvider) ObjectNames(context.Context) ([]string, error) {
	names := make([]string, 0, len(p.objects))
	for name := range p.objects {
		names = append(names, name)
	}
	return names, nil
}

// Live mode and snapshot mode must produce structurally identical schemas
// when fed the same underlying field data.
func TestLiveAndSnapshotModesAgree(t *testing.T) {
	store := testStore(t)
	provider := roundTripProvider{objects: map[string][]schema.FieldMetadata{
		"Account": {
			{Name: "Id", Label: "Account ID", Type: "id", Length: 18},
			{Name: "Name", Label: "Account Name", Type: "string", Length: 255},
			{Name: "OwnerId", Label: "Owner ID", Type: "reference", ReferenceTo: []string{"User", "Group"}},
			{Name: "Industry", Type: "picklist", PicklistValues: []schema.PicklistEntry{
				{Value: "Tech"}, {Value: "Energy"}, {Value: "Retail"},
			}},
		},
		"User": {
			{Name: "Id", Type: "id"},
			{Name: "Name", Type: "string"},
		},
	}}

	live := schema.NewCatalog(zap.NewNop().Sugar())
	live.LoadLive(context.Background(), provider, nil, store)

	cached := schema.NewCatalog(zap.NewNop().Sugar())
	cached.LoadSnapshots(store, nil)

	require.Equal(t, live.Objects(), cached.Objects())
	for _, object := range live.Objects() {
		assert.Equal(t, live.Fields(object).Fields(), cached.Fields(object).Fields(), "object %s", object)
	}
}
