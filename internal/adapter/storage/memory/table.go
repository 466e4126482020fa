package memory

import (
	"cmp"
	"errors"
	"slices"
)

var (
	// ErrDuplicateKey is returned by Insert when the primary key exists.
	ErrDuplicateKey = errors.New("duplicate primary key")
	// ErrNotFound is returned when no record carries the requested key.
	ErrNotFound = errors.New("record not found")
)

// Record is the capability a type needs to live in a Table: a stable,
// comparable primary key.
type Record[K cmp.Ordered] interface {
	PrimaryKey() K
}

// Table is an indexed in-memory record store. Reads are strongly
// consistent with prior writes. Tables carry no locking: the ledger
// serializes whole calls, so mutation is never interleaved.
type Table[K cmp.Ordered, R Record[K]] struct {
	rows map[K]R
	keys []K // sorted, for First and ordered scans
}

// NewTable creates an empty table.
func NewTable[K cmp.Ordered, R Record[K]]() *Table[K, R] {
	return &Table[K, R]{rows: make(map[K]R)}
}

// Insert stores a new record. Fails with ErrDuplicateKey if the primary
// key is already present.
func (t *Table[K, R]) Insert(r R) error {
	k := r.PrimaryKey()
	if _, ok := t.rows[k]; ok {
		return ErrDuplicateKey
	}
	t.rows[k] = r
	i, _ := slices.BinarySearch(t.keys, k)
	t.keys = slices.Insert(t.keys, i, k)
	return nil
}

// Get returns the record with the given primary key, or ErrNotFound.
func (t *Table[K, R]) Get(k K) (R, error) {
	r, ok := t.rows[k]
	if !ok {
		var zero R
		return zero, ErrNotFound
	}
	return r, nil
}

// Update replaces the stored record. Fails with ErrNotFound if the
// primary key is no longer present.
func (t *Table[K, R]) Update(r R) error {
	k := r.PrimaryKey()
	if _, ok := t.rows[k]; !ok {
		return ErrNotFound
	}
	t.rows[k] = r
	return nil
}

// Remove deletes the record with the given primary key, if present.
func (t *Table[K, R]) Remove(k K) error {
	if _, ok := t.rows[k]; !ok {
		return ErrNotFound
	}
	delete(t.rows, k)
	if i, found := slices.BinarySearch(t.keys, k); found {
		t.keys = slices.Delete(t.keys, i, i+1)
	}
	return nil
}

// First returns the record with the smallest primary key and true, or
// the zero record and false when the table is empty.
func (t *Table[K, R]) First() (R, bool) {
	if len(t.keys) == 0 {
		var zero R
		return zero, false
	}
	return t.rows[t.keys[0]], true
}

// Exists reports whether a record with the key is present.
func (t *Table[K, R]) Exists(k K) bool {
	_, ok := t.rows[k]
	return ok
}

// Len returns the number of records.
func (t *Table[K, R]) Len() int {
	return len(t.rows)
}

// IsEmpty reports whether the table has no records.
func (t *Table[K, R]) IsEmpty() bool {
	return len(t.rows) == 0
}

// Keys returns the primary keys in ascending order.
func (t *Table[K, R]) Keys() []K {
	return slices.Clone(t.keys)
}
