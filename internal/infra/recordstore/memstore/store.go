package memstore

import (
	"context"
	"encoding/json"
	"os"
	"slices"
	"strings"
	"sync"

	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/errs"
)

type Op string

const (
	OpFind    Op = "find"
	OpSelect  Op = "select"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDestroy Op = "destroy"
)

type table struct {
	order []string
	rows  map[string]recordstore.Record
}

type failure struct {
	err       error
	remaining int // negative means every call
}

// Store keeps tables in process memory. It backs local development and tests.
type Store struct {
	mu       sync.RWMutex
	tables   map[string]*table
	failures map[string]*failure
	clock    clock.Clock
}

var _ recordstore.Client = (*Store)(nil)

func New(clk clock.Clock) *Store {
	return &Store{
		tables:   make(map[string]*table),
		failures: make(map[string]*failure),
		clock:    clk,
	}
}

// seedFile maps table name to its records
type seedFile map[string][]struct {
	ID     string             `json:"id"`
	Fields recordstore.Fields `json:"fields"`
}

func (s *Store) LoadSeedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrap(err, "failed to read seed file")
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return errs.Wrap(err, "failed to parse seed file")
	}

	for name, rows := range seed {
		for _, r := range rows {
			if _, err := s.Seed(name, r.ID, r.Fields); err != nil {
				return err
			}
		}
	}
	return nil
}

// Seed inserts a record with a fixed id, or a generated one when id is empty
func (s *Store) Seed(tableName, id string, fields recordstore.Fields) (recordstore.Record, error) {
	normalized, err := normalize(fields)
	if err != nil {
		return recordstore.Record{}, err
	}
	if id == "" {
		id = recordstore.NewID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := recordstore.Record{ID: id, CreatedTime: s.clock.Now(), Fields: normalized}
	s.insertLocked(tableName, rec)
	return copyRecord(rec), nil
}

// InjectFailure makes the next times calls of op on table fail with err; times < 0 fails every call
func (s *Store) InjectFailure(op Op, tableName string, err error, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[failureKey(op, tableName)] = &failure{err: err, remaining: times}
}

func (s *Store) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]*failure)
}

// Count of records in a table
func (s *Store) Count(tableName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tables[tableName]; ok {
		return len(t.order)
	}
	return 0
}

func (s *Store) Find(ctx context.Context, tableName, id string) (recordstore.Record, error) {
	if err := ctx.Err(); err != nil {
		return recordstore.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failLocked(OpFind, tableName); err != nil {
		return recordstore.Record{}, err
	}
	t, ok := s.tables[tableName]
	if !ok {
		return recordstore.Record{}, recordstore.NotFound(tableName, id)
	}
	rec, ok := t.rows[id]
	if !ok {
		return recordstore.Record{}, recordstore.NotFound(tableName, id)
	}
	return copyRecord(rec), nil
}

func (s *Store) Select(ctx context.Context, tableName string, opts recordstore.SelectOptions) ([]recordstore.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failLocked(OpSelect, tableName); err != nil {
		return nil, err
	}
	t, ok := s.tables[tableName]
	if !ok {
		return []recordstore.Record{}, nil
	}

	out := make([]recordstore.Record, 0, len(t.order))
	for _, id := range t.order {
		rec := t.rows[id]
		if opts.Filter != nil && !opts.Filter.Match(rec.Fields) {
			continue
		}
		out = append(out, rec)
	}

	if len(opts.Sort) > 0 {
		slices.SortStableFunc(out, func(a, b recordstore.Record) int {
			for _, srt := range opts.Sort {
				c := strings.Compare(recordstore.Text(a.Fields, srt.Field), recordstore.Text(b.Fields, srt.Field))
				if srt.Desc {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})
	}
	if opts.MaxRecords > 0 && len(out) > opts.MaxRecords {
		out = out[:opts.MaxRecords]
	}

	for i := range out {
		out[i] = recordstore.Record{
			ID:          out[i].ID,
			CreatedTime: out[i].CreatedTime,
			Fields:      recordstore.Project(out[i].Fields, opts.Fields),
		}
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, tableName string, records ...recordstore.Fields) ([]recordstore.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := make([]recordstore.Fields, 0, len(records))
	for _, f := range records {
		n, err := normalize(f)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failLocked(OpCreate, tableName); err != nil {
		return nil, err
	}

	out := make([]recordstore.Record, 0, len(normalized))
	for _, f := range normalized {
		rec := recordstore.Record{ID: recordstore.NewID(), CreatedTime: s.clock.Now(), Fields: f}
		s.insertLocked(tableName, rec)
		out = append(out, copyRecord(rec))
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, tableName, id string, fields recordstore.Fields) (recordstore.Record, error) {
	if err := ctx.Err(); err != nil {
		return recordstore.Record{}, err
	}

	patch, err := normalize(fields)
	if err != nil {
		return recordstore.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failLocked(OpUpdate, tableName); err != nil {
		return recordstore.Record{}, err
	}
	t, ok := s.tables[tableName]
	if !ok {
		return recordstore.Record{}, recordstore.NotFound(tableName, id)
	}
	rec, ok := t.rows[id]
	if !ok {
		return recordstore.Record{}, recordstore.NotFound(tableName, id)
	}

	merged := rec.Fields.Clone()
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	rec.Fields = merged
	t.rows[id] = rec
	return copyRecord(rec), nil
}

func (s *Store) Destroy(ctx context.Context, tableName, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failLocked(OpDestroy, tableName); err != nil {
		return err
	}
	t, ok := s.tables[tableName]
	if !ok {
		return recordstore.NotFound(tableName, id)
	}
	if _, ok := t.rows[id]; !ok {
		return recordstore.NotFound(tableName, id)
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(v string) bool { return v == id })
	return nil
}

func (s *Store) insertLocked(tableName string, rec recordstore.Record) {
	t, ok := s.tables[tableName]
	if !ok {
		t = &table{rows: make(map[string]recordstore.Record)}
		s.tables[tableName] = t
	}
	if _, exists := t.rows[rec.ID]; !exists {
		t.order = append(t.order, rec.ID)
	}
	t.rows[rec.ID] = rec
}

func (s *Store) failLocked(op Op, tableName string) error {
	f, ok := s.failures[failureKey(op, tableName)]
	if !ok {
		return nil
	}
	if f.remaining == 0 {
		delete(s.failures, failureKey(op, tableName))
		return nil
	}
	if f.remaining > 0 {
		f.remaining--
	}
	return f.err
}

func failureKey(op Op, tableName string) string {
	return string(op) + "/" + tableName
}

// normalize round-trips through JSON so stored values have the same shapes a remote store returns
func normalize(f recordstore.Fields) (recordstore.Fields, error) {
	if f == nil {
		return recordstore.Fields{}, nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, recordstore.InvalidRecord("fields are not serializable", err)
	}
	var out recordstore.Fields
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, recordstore.InvalidRecord("fields are not serializable", err)
	}
	return out, nil
}

func copyRecord(r recordstore.Record) recordstore.Record {
	return recordstore.Record{ID: r.ID, CreatedTime: r.CreatedTime, Fields: r.Fields.Clone()}
}
