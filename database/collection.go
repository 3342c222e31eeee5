package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Record is any entity stored in a collection document.
type Record interface {
	GetID() uint
}

// Collection is a JSON-file-backed record store for one entity type. The
// whole document is loaded and rewritten on every unit of work; a
// per-collection mutex serializes load-mutate-save cycles so two concurrent
// requests cannot discard each other's writes.
type Collection[T Record] struct {
	name     string // top-level array key and file base name
	path     string
	optional bool // missing file loads as an empty collection
	mu       sync.Mutex
}

// Tx is the in-memory state of one load-mutate-save cycle.
type Tx[T Record] struct {
	Records []T
	lastID  uint
}

// NextID returns the next value of the persisted monotonic id counter.
// Ids are never reused, even after deletions.
func (tx *Tx[T]) NextID() uint {
	tx.lastID++
	return tx.lastID
}

func OpenCollection[T Record](dir, name string, optional bool) *Collection[T] {
	return &Collection[T]{
		name:     name,
		path:     filepath.Join(dir, name+".json"),
		optional: optional,
	}
}

// Ensure creates an empty document if none exists yet.
func (c *Collection[T]) Ensure() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s collection: %w", c.name, err)
	}
	return c.write(&Tx[T]{})
}

// All returns the current snapshot of the collection.
func (c *Collection[T]) All() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.read()
	if err != nil {
		return nil, err
	}
	return tx.Records, nil
}

// Update runs fn as one atomic load-mutate-save unit of work under the
// collection lock. If fn returns an error nothing is written and the
// previous durable state stays intact.
func (c *Collection[T]) Update(fn func(tx *Tx[T]) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.read()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return c.write(tx)
}

func (c *Collection[T]) read() (*Tx[T], error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) && c.optional {
			return &Tx[T]{}, nil
		}
		return nil, fmt.Errorf("read %s collection: %w", c.name, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", c.name, err)
	}

	tx := &Tx[T]{}
	if records, ok := doc[c.name]; ok {
		if err := json.Unmarshal(records, &tx.Records); err != nil {
			return nil, fmt.Errorf("decode %s records: %w", c.name, err)
		}
	}
	if last, ok := doc["lastId"]; ok {
		if err := json.Unmarshal(last, &tx.lastID); err != nil {
			return nil, fmt.Errorf("decode %s id counter: %w", c.name, err)
		}
	}

	// Hand-seeded documents carry no counter; derive it from the records.
	if tx.lastID == 0 {
		for _, r := range tx.Records {
			if r.GetID() > tx.lastID {
				tx.lastID = r.GetID()
			}
		}
	}
	return tx, nil
}

// write persists the document with a temp-file-then-rename so a failed save
// never corrupts the previous durable state.
func (c *Collection[T]) write(tx *Tx[T]) error {
	records := tx.Records
	if records == nil {
		records = []T{}
	}

	buf, err := json.MarshalIndent(map[string]interface{}{
		c.name:   records,
		"lastId": tx.lastID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", c.name, err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return fmt.Errorf("write %s collection: %w", c.name, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace %s collection: %w", c.name, err)
	}
	return nil
}
