package catalog

import (
	"sync"

	"gorm.io/gorm/schema"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// StructCatalog derives Relation schemas from tagged Go structs using
// gorm.io/gorm/schema's field parser, the same field-reflection API the
// teacher's pkg/api/gorm/dialect.go uses for DataTypeOf. No live
// database connection is required.
type StructCatalog struct {
	mu     sync.RWMutex
	cache  *sync.Map
	tables map[string]any
}

// NewStructCatalog builds an empty StructCatalog.
func NewStructCatalog() *StructCatalog {
	return &StructCatalog{cache: &sync.Map{}, tables: make(map[string]any)}
}

// RegisterStruct maps name to the schema gorm derives from a zero value
// of dest (typically a pointer to a struct with `gorm` tags).
func (c *StructCatalog) RegisterStruct(name string, dest any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[name] = dest
}

// LookupRelation implements analyzer.Catalog.
func (c *StructCatalog) LookupRelation(name string) (*plan.Relation, error) {
	c.mu.RLock()
	dest, ok := c.tables[name]
	c.mu.RUnlock()
	if !ok {
		return nil, compileerr.NewTableNotFound(name)
	}

	parsed, err := schema.Parse(dest, c.cache, schema.NamingStrategy{})
	if err != nil {
		return nil, compileerr.NewInternalError(err.Error())
	}

	cols := make([]*expr.AttributeRef, 0, len(parsed.Fields))
	for _, f := range parsed.Fields {
		dt, ok := mapGormDataType(f.DataType)
		if !ok {
			continue
		}
		nullable := !f.NotNull && !f.PrimaryKey
		cols = append(cols, expr.NewAttributeRef(expr.NewAttrID(), f.DBName, dt, nullable))
	}
	return plan.NewRelation(name, cols), nil
}

// mapGormDataType mirrors the teacher's Dialector.DataTypeOf switch,
// collapsing gorm's schema.DataType vocabulary onto our three scalar
// types instead of engine-specific column types.
func mapGormDataType(dt schema.DataType) (types.DataType, bool) {
	switch dt {
	case schema.Bool:
		return types.Bool, true
	case schema.Int, schema.Uint:
		return types.Int64, true
	case schema.Float:
		return types.Float64, true
	case schema.String:
		return types.String, true
	default:
		return types.Unknown, false
	}
}
