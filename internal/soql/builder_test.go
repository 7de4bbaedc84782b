package soql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colinp85/simpler-salesforce/internal/schema"
)

func accountSchema() *schema.ObjectSchema {
	os := schema.NewObjectSchema()
	os.Add(&schema.Field{Name: "Id", Type: "id"})
	os.Add(&schema.Field{Name: "Name", Type: "string"})
	os.Add(&schema.Field{Name: "OwnerId", Type: "reference", Reference: "User"})
	return os
}

func TestBuildSelect(t *testing.T) {
	q := BuildSelect("Account", accountSchema(), "")
	assert.Equal(t, "SELECT Id, Name, OwnerId FROM Account", q)
}

func TestBuildSelectWhereIsVerbatim(t *testing.T) {
	// The predicate is caller-trusted and must pass through untouched.
	where := "Name = 'O''Brien & Sons' AND IsDeleted = false"
	q := BuildSelect("Account", accountSchema(), where)
	assert.Equal(t, "SELECT Id, Name, OwnerId FROM Account WHERE "+where, q)
}

func TestBuildSelectMissingSchema(t *testing.T) {
	assert.Empty(t, BuildSelect("Account", nil, "Id != null"))
	assert.Empty(t, BuildSelect("Account", schema.NewObjectSchema(), ""))
}

func TestByID(t *testing.T) {
	assert.Equal(t, "Id = '001x0000003DGT2AAC'", ByID("001x0000003DGT2AAC"))
}
