// Package postgres persists flattened rows with idempotent batch upserts.
// Each batch commits as one transaction, so an interrupted run leaves every
// committed batch durable and a re-run from scratch converges to the same
// state.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nba-ingest/internal/logging"
	"nba-ingest/internal/metrics"
)

const defaultBatchSize = 500

// Options tunes the store.
type Options struct {
	BatchSize int
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// Store applies upserts against a Postgres pool.
type Store struct {
	pool      *pgxpool.Pool
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, databaseURL string, opts Options) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return NewWithPool(pool, opts), nil
}

// NewWithPool wraps an existing pool; the caller keeps ownership of it.
func NewWithPool(pool *pgxpool.Pool, opts Options) *Store {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Store{
		pool:      pool,
		batchSize: batchSize,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// RowError reports one row the store rejected, keyed by its natural id.
// Referential violations are data-source fidelity issues, not loader bugs;
// they are surfaced instead of silently dropped.
type RowError struct {
	Key int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Key, e.Err)
}

// Result summarizes one entity load.
type Result struct {
	Upserted  int
	Batches   int
	RowErrors []RowError
}

// upsertRows chunks rows into batches, committing each batch as one
// transaction. A batch that trips an integrity violation is re-applied
// row-at-a-time so the valid rows still land and the offenders are reported.
func (s *Store) upsertRows(ctx context.Context, entity, sql string, keys []int, args [][]any) (Result, error) {
	var res Result

	for start := 0; start < len(args); start += s.batchSize {
		end := min(start+s.batchSize, len(args))

		if err := s.applyBatch(ctx, sql, args[start:end]); err != nil {
			if !isIntegrityViolation(err) {
				return res, fmt.Errorf("store: upsert %s batch: %w", entity, err)
			}
			applied, rowErrs, fatal := s.applyRowByRow(ctx, sql, keys[start:end], args[start:end])
			res.Upserted += applied
			res.RowErrors = append(res.RowErrors, rowErrs...)
			if fatal != nil {
				return res, fmt.Errorf("store: upsert %s rows: %w", entity, fatal)
			}
		} else {
			res.Upserted += end - start
		}

		res.Batches++
		s.metrics.RecordBatchCommit(entity)
		logging.Debug(s.logger, "batch committed",
			slog.String(logging.FieldStage, entity),
			slog.Int(logging.FieldBatch, res.Batches),
			slog.Int(logging.FieldCount, end-start),
		)
	}

	s.metrics.RecordUpserts(entity, res.Upserted)
	for _, rowErr := range res.RowErrors {
		s.metrics.RecordRowError(entity)
		logging.Warn(s.logger, "row rejected by store",
			slog.String(logging.FieldStage, entity),
			slog.Int(logging.FieldKey, rowErr.Key),
			slog.String("reason", rowErr.Err.Error()),
		)
	}
	return res, nil
}

func (s *Store) applyBatch(ctx context.Context, sql string, args [][]any) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	b := &pgx.Batch{}
	for _, rowArgs := range args {
		b.Queue(sql, rowArgs...)
	}

	br := tx.SendBatch(ctx, b)
	for range args {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	if err := br.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// applyRowByRow applies each row in its own implicit transaction. Integrity
// violations are collected per row; any other failure aborts.
func (s *Store) applyRowByRow(ctx context.Context, sql string, keys []int, args [][]any) (int, []RowError, error) {
	applied := 0
	var rowErrs []RowError

	for i, rowArgs := range args {
		if _, err := s.pool.Exec(ctx, sql, rowArgs...); err != nil {
			if isIntegrityViolation(err) {
				rowErrs = append(rowErrs, RowError{Key: keys[i], Err: err})
				continue
			}
			return applied, rowErrs, err
		}
		applied++
	}
	return applied, rowErrs, nil
}

func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// foreign_key_violation, not_null_violation
	return pgErr.Code == "23503" || pgErr.Code == "23502"
}
