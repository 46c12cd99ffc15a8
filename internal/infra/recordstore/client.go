package recordstore

import (
	"context"
	"strings"
	"time"

	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

// Fields is the column name to value map of a record. Values follow JSON decoding:
// string, float64, bool, []any, map[string]any or nil.
type Fields map[string]any

type Record struct {
	ID          string
	CreatedTime time.Time
	Fields      Fields
}

type Sort struct {
	Field string
	Desc  bool
}

type SelectOptions struct {
	Filter     Formula
	Fields     []string
	Sort       []Sort
	MaxRecords int
}

// Client is the generic records API. Calls are independent; none of them share a transaction.
type Client interface {
	Find(ctx context.Context, table, id string) (Record, error)
	Select(ctx context.Context, table string, opts SelectOptions) ([]Record, error)
	Create(ctx context.Context, table string, records ...Fields) ([]Record, error)
	// Update overwrites only the named fields. List values are replaced whole; nil clears a field.
	Update(ctx context.Context, table, id string, fields Fields) (Record, error)
	Destroy(ctx context.Context, table, id string) error
}

var ErrNotFound = errs.New("record not found")

func NotFound(table, id string) error {
	return errs.Mark(infra.NewRepoErr(infra.KindNotFound, "record "+id+" not found in "+table, nil), ErrNotFound)
}

func Failure(msg string, err error) error {
	return infra.NewRepoErr(infra.KindStoreFailure, msg, err)
}

func RateLimited(msg string, err error) error {
	return infra.NewRepoErr(infra.KindRateLimited, msg, err)
}

func InvalidRecord(msg string, err error) error {
	return infra.NewRepoErr(infra.KindInvalidRecord, msg, err)
}

// Project keeps only the requested fields; an empty list keeps all of them
func Project(f Fields, names []string) Fields {
	if len(names) == 0 {
		return f.Clone()
	}
	out := make(Fields, len(names))
	for _, n := range names {
		if v, ok := f[n]; ok {
			out[n] = v
		}
	}
	return out
}

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if list, ok := v.([]any); ok {
			v = append([]any(nil), list...)
		}
		out[k] = v
	}
	return out
}

// NewID mimics the 17 character record ids of the hosted store
func NewID() string {
	return "rec" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}
