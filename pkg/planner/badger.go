package planner

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"github.com/sqlplan/logicplan/pkg/plan"
)

// BadgerCache is a PlanCache backend that persists entries through
// github.com/dgraph-io/badger/v4, so the cache survives process
// restarts. Keyed the same way as MemoryCache (an 8-byte big-endian
// fingerprint), with each plan tree gob-encoded as the value. Grounded
// on the teacher's pkg/resource/badger datasource, which wraps the same
// db.Update/db.View + txn.Set/item.Value idiom around its own key
// encoding.
type BadgerCache struct {
	db     *badger.DB
	hits   int64
	misses int64
}

// NewBadgerCache opens (or creates) a Badger database rooted at dir.
func NewBadgerCache(dir string) (*BadgerCache, error) {
	opts := badger.DefaultOptions(dir)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerCache{db: db}, nil
}

// Close releases the underlying Badger database.
func (c *BadgerCache) Close() error { return c.db.Close() }

func encodeKey(fingerprint uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, fingerprint)
	return key
}

func (c *BadgerCache) Get(fingerprint uint64) (plan.LogicalPlan, bool) {
	var p plan.LogicalPlan
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(fingerprint))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			dec := gob.NewDecoder(bytes.NewReader(val))
			if err := dec.Decode(&p); err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil || !found {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return p, true
}

func (c *BadgerCache) Put(fingerprint uint64, p plan.LogicalPlan) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&p); err != nil {
		return
	}
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(fingerprint), buf.Bytes())
	})
}

func (c *BadgerCache) Invalidate() {
	_ = c.db.DropAll()
}

func (c *BadgerCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}
