package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/catalog"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

func TestMemoryLookupRelation(t *testing.T) {
	cat := catalog.NewMemory()
	cat.Register(plan.NewRelation("orders", []*expr.AttributeRef{
		expr.NewAttributeRef(expr.NewAttrID(), "id", types.Int64, false),
	}))

	rel, err := cat.LookupRelation("orders")
	require.NoError(t, err)
	assert.Equal(t, "orders", rel.Name)
	assert.Len(t, rel.Schema, 1)
}

func TestMemoryLookupUnknownTable(t *testing.T) {
	cat := catalog.NewMemory()
	_, err := cat.LookupRelation("missing")
	assert.Error(t, err)
}

type customer struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Bio  string
}

func TestStructCatalogDerivesSchemaFromTags(t *testing.T) {
	cat := catalog.NewStructCatalog()
	cat.RegisterStruct("customers", &customer{})

	rel, err := cat.LookupRelation("customers")
	require.NoError(t, err)
	require.Len(t, rel.Schema, 3)

	byName := map[string]*expr.AttributeRef{}
	for _, c := range rel.Schema {
		byName[c.Name] = c
	}

	require.Contains(t, byName, "id")
	assert.Equal(t, types.Int64, byName["id"].Typ)
	assert.False(t, byName["id"].Nullable(), "primary key column should be non-nullable")

	require.Contains(t, byName, "name")
	assert.False(t, byName["name"].Nullable(), "not-null tagged column should be non-nullable")

	require.Contains(t, byName, "bio")
	assert.True(t, byName["bio"].Nullable())
}

func TestStructCatalogUnknownTable(t *testing.T) {
	cat := catalog.NewStructCatalog()
	_, err := cat.LookupRelation("missing")
	assert.Error(t, err)
}
