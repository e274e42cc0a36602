package planner_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/planner"
	"github.com/sqlplan/logicplan/pkg/types"
)

func sampleRelation() *plan.Relation {
	return plan.NewRelation("orders", []*expr.AttributeRef{
		expr.NewAttributeRef(expr.NewAttrID(), "id", types.Int64, false),
	})
}

func TestFingerprintIsStableAndDistinguishesInput(t *testing.T) {
	a := planner.Fingerprint("SELECT * FROM orders")
	b := planner.Fingerprint("SELECT * FROM orders")
	c := planner.Fingerprint("SELECT * FROM customers")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMemoryCacheGetPutAndStats(t *testing.T) {
	cache := planner.NewMemoryCache(8)
	fp := planner.Fingerprint("SELECT * FROM orders")

	_, ok := cache.Get(fp)
	assert.False(t, ok)

	rel := sampleRelation()
	cache.Put(fp, rel)

	got, ok := cache.Get(fp)
	require.True(t, ok)
	assert.Same(t, plan.LogicalPlan(rel), got)

	hits, misses := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestMemoryCacheInvalidateClearsEntries(t *testing.T) {
	cache := planner.NewMemoryCache(8)
	fp := planner.Fingerprint("SELECT * FROM orders")
	cache.Put(fp, sampleRelation())

	cache.Invalidate()

	_, ok := cache.Get(fp)
	assert.False(t, ok)
}

func TestMemoryCacheEvictsLeastRecentlyHit(t *testing.T) {
	cache := planner.NewMemoryCache(1)
	fp1 := planner.Fingerprint("SELECT * FROM a")
	fp2 := planner.Fingerprint("SELECT * FROM b")

	cache.Put(fp1, sampleRelation())
	cache.Put(fp2, sampleRelation())

	_, ok := cache.Get(fp1)
	assert.False(t, ok, "first entry should have been evicted to make room for the second")

	_, ok = cache.Get(fp2)
	assert.True(t, ok)
}

func TestBadgerCachePersistsPlans(t *testing.T) {
	dir := t.TempDir()
	cache, err := planner.NewBadgerCache(filepath.Join(dir, "plancache"))
	require.NoError(t, err)
	defer cache.Close()

	fp := planner.Fingerprint("SELECT id FROM orders")
	rel := sampleRelation()
	cache.Put(fp, rel)

	got, ok := cache.Get(fp)
	require.True(t, ok)
	gotRel, ok := got.(*plan.Relation)
	require.True(t, ok)
	assert.Equal(t, rel.Name, gotRel.Name)
	require.Len(t, gotRel.Schema, 1)
	assert.Equal(t, rel.Schema[0].Name, gotRel.Schema[0].Name)
	assert.Equal(t, rel.Schema[0].Typ, gotRel.Schema[0].Typ)
}

func TestBadgerCacheMissReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	cache, err := planner.NewBadgerCache(filepath.Join(dir, "plancache"))
	require.NoError(t, err)
	defer cache.Close()

	_, ok := cache.Get(planner.Fingerprint("SELECT * FROM missing"))
	assert.False(t, ok)
}
