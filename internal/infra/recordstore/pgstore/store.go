package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sponsor-portal/internal/infra/recordstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps every table in one JSONB records table
type Store struct {
	pool *pgxpool.Pool
}

var _ recordstore.Client = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const recordColumns = "id, fields, created_at"

func (s *Store) Find(ctx context.Context, table, id string) (recordstore.Record, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT "+recordColumns+" FROM records WHERE table_name = $1 AND id = $2",
		table, id)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return recordstore.Record{}, recordstore.NotFound(table, id)
	}
	if err != nil {
		return recordstore.Record{}, recordstore.Failure("failed to find record in "+table, err)
	}
	return rec, nil
}

func (s *Store) Select(ctx context.Context, table string, opts recordstore.SelectOptions) ([]recordstore.Record, error) {
	sql, args, err := buildSelect(table, opts)
	if err != nil {
		return nil, recordstore.InvalidRecord("failed to compile filter", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, recordstore.Failure("failed to select records from "+table, err)
	}
	defer rows.Close()

	out := make([]recordstore.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, recordstore.Failure("failed to scan record from "+table, err)
		}
		rec.Fields = recordstore.Project(rec.Fields, opts.Fields)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, recordstore.Failure("failed to iterate records from "+table, err)
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, table string, records ...recordstore.Fields) ([]recordstore.Record, error) {
	if len(records) == 0 {
		return []recordstore.Record{}, nil
	}

	batch := &pgx.Batch{}
	for _, f := range records {
		data, err := marshalFields(f)
		if err != nil {
			return nil, err
		}
		batch.Queue(
			"INSERT INTO records (table_name, id, fields) VALUES ($1, $2, $3::jsonb) RETURNING "+recordColumns,
			table, recordstore.NewID(), data,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	out := make([]recordstore.Record, 0, len(records))
	for range records {
		rec, err := scanRecord(br.QueryRow())
		if err != nil {
			return out, recordstore.Failure("failed to create record in "+table, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, table, id string, fields recordstore.Fields) (recordstore.Record, error) {
	data, err := marshalFields(fields)
	if err != nil {
		return recordstore.Record{}, err
	}

	// null values in the patch clear the field
	row := s.pool.QueryRow(ctx,
		"UPDATE records SET fields = jsonb_strip_nulls(fields || $3::jsonb) "+
			"WHERE table_name = $1 AND id = $2 RETURNING "+recordColumns,
		table, id, data)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return recordstore.Record{}, recordstore.NotFound(table, id)
	}
	if err != nil {
		return recordstore.Record{}, recordstore.Failure("failed to update record in "+table, err)
	}
	return rec, nil
}

func (s *Store) Destroy(ctx context.Context, table, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM records WHERE table_name = $1 AND id = $2", table, id)
	if err != nil {
		return recordstore.Failure("failed to delete record from "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return recordstore.NotFound(table, id)
	}
	return nil
}

func scanRecord(row pgx.Row) (recordstore.Record, error) {
	var (
		id        string
		raw       []byte
		createdAt time.Time
	)
	if err := row.Scan(&id, &raw, &createdAt); err != nil {
		return recordstore.Record{}, err
	}

	fields := recordstore.Fields{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return recordstore.Record{}, err
		}
	}
	return recordstore.Record{ID: id, CreatedTime: createdAt, Fields: fields}, nil
}

func marshalFields(f recordstore.Fields) (string, error) {
	if f == nil {
		return "{}", nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return "", recordstore.InvalidRecord("fields are not serializable", err)
	}
	return string(data), nil
}
