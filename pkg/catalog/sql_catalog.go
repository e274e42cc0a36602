package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/expr"
	"github.com/sqlplan/logicplan/pkg/plan"
	"github.com/sqlplan/logicplan/pkg/types"
)

// rawColumn is one row of a dialect's column-metadata query, before
// mapping its engine-native type name onto our scalar vocabulary.
type rawColumn struct {
	name     string
	dataType string
	nullable bool
}

// sqlDialect isolates the one part that differs between engines:
// how to ask for a table's columns.
type sqlDialect interface {
	listColumns(db *sql.DB, table string) ([]rawColumn, error)
}

// SQLCatalog answers LookupRelation by querying a live engine's
// information-schema equivalent, constructing a resolved plan.Relation
// from the column metadata it reads back. Grounded on
// server/datasource/postgresql/datasource.go and
// pkg/resource/mysql_source.go, which wrap a SQL driver behind the
// teacher's own DataSource interface the same way.
type SQLCatalog struct {
	db      *sql.DB
	dialect sqlDialect
}

func newSQLCatalog(driver, dsn string, dialect sqlDialect) (*SQLCatalog, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("catalog: ping %s: %w", driver, err)
	}
	return &SQLCatalog{db: db, dialect: dialect}, nil
}

// NewSQLiteCatalog opens dsn through modernc.org/sqlite, a pure-Go
// SQLite driver.
func NewSQLiteCatalog(dsn string) (*SQLCatalog, error) {
	return newSQLCatalog("sqlite", dsn, sqliteDialect{})
}

// NewMySQLCatalog opens dsn through github.com/go-sql-driver/mysql.
func NewMySQLCatalog(dsn string) (*SQLCatalog, error) {
	return newSQLCatalog("mysql", dsn, informationSchemaDialect{placeholder: "?"})
}

// NewPostgresCatalog opens dsn through github.com/lib/pq.
func NewPostgresCatalog(dsn string) (*SQLCatalog, error) {
	return newSQLCatalog("postgres", dsn, informationSchemaDialect{placeholder: "$1"})
}

// Close releases the underlying connection pool.
func (c *SQLCatalog) Close() error { return c.db.Close() }

// LookupRelation implements analyzer.Catalog.
func (c *SQLCatalog) LookupRelation(name string) (*plan.Relation, error) {
	raw, err := c.dialect.listColumns(c.db, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if len(raw) == 0 {
		return nil, compileerr.NewTableNotFound(name)
	}

	cols := make([]*expr.AttributeRef, len(raw))
	for i, rc := range raw {
		cols[i] = expr.NewAttributeRef(expr.NewAttrID(), rc.name, mapSQLType(rc.dataType), rc.nullable)
	}
	return plan.NewRelation(name, cols), nil
}

// mapSQLType collapses an engine's native column type name onto our
// scalar vocabulary, following the same case/numeric/string grouping
// as the teacher's PostgreSQLDialect.MapColumnType.
func mapSQLType(dbType string) types.DataType {
	t := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(dbType), "[]"))
	if idx := strings.Index(t, "("); idx != -1 {
		t = t[:idx]
	}
	switch t {
	case "tinyint", "smallint", "mediumint", "int", "integer", "bigint",
		"serial", "bigserial", "smallserial", "int2", "int4", "int8":
		return types.Int64
	case "float", "double", "real", "float4", "float8", "decimal", "numeric", "money":
		return types.Float64
	case "bool", "boolean":
		return types.Bool
	default:
		return types.String
	}
}

// informationSchemaDialect covers MySQL and Postgres, both of which
// expose information_schema.columns; only the placeholder syntax for
// the table-name bind parameter differs between the two drivers.
type informationSchemaDialect struct {
	placeholder string
}

func (d informationSchemaDialect) listColumns(db *sql.DB, table string) ([]rawColumn, error) {
	query := fmt.Sprintf(
		`SELECT column_name, data_type, is_nullable FROM information_schema.columns WHERE table_name = %s ORDER BY ordinal_position`,
		d.placeholder,
	)
	rows, err := db.Query(query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rawColumn
	for rows.Next() {
		var colName, dataType, isNullable string
		if err := rows.Scan(&colName, &dataType, &isNullable); err != nil {
			return nil, err
		}
		out = append(out, rawColumn{
			name:     colName,
			dataType: dataType,
			nullable: strings.EqualFold(isNullable, "YES"),
		})
	}
	return out, rows.Err()
}

// sqliteDialect reads column metadata back from PRAGMA table_info,
// SQLite's equivalent of information_schema.columns.
type sqliteDialect struct{}

func (sqliteDialect) listColumns(db *sql.DB, table string) ([]rawColumn, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", quoteSQLiteIdent(table)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []rawColumn
	for rows.Next() {
		var cid int
		var colName, colType string
		var notNull, pk int
		var dflt any
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		out = append(out, rawColumn{
			name:     colName,
			dataType: colType,
			nullable: notNull == 0 && pk == 0,
		})
	}
	return out, rows.Err()
}

func quoteSQLiteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
