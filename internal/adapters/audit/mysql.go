package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"delivery-profile-assigner/internal/domain/model"
)

const createBatchesTable = `
CREATE TABLE IF NOT EXISTS delivery_profile_batches (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	run_id VARCHAR(32) NOT NULL,
	profile_id VARCHAR(255) NOT NULL,
	profile_name VARCHAR(255) NOT NULL DEFAULT '',
	batch_index INT NOT NULL,
	variant_count INT NOT NULL,
	variant_ids JSON NOT NULL,
	created_at DATETIME NOT NULL,
	KEY idx_run (run_id)
)`

const insertBatch = `
INSERT INTO delivery_profile_batches
	(run_id, profile_id, profile_name, batch_index, variant_count, variant_ids, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// MysqlRecorder appends one row per committed batch. Nothing reads it back during a run.
type MysqlRecorder struct {
	db  execer
	now func() time.Time
}

func NewMysqlRecorder(ctx context.Context, db *sql.DB) (*MysqlRecorder, error) {
	if db == nil {
		return nil, errors.New("audit: mysql db is nil")
	}
	return newRecorder(ctx, db)
}

func newRecorder(ctx context.Context, db execer) (*MysqlRecorder, error) {
	if _, err := db.ExecContext(ctx, createBatchesTable); err != nil {
		return nil, fmt.Errorf("audit: create table: %w", err)
	}
	return &MysqlRecorder{db: db, now: time.Now}, nil
}

func (r *MysqlRecorder) RecordBatch(ctx context.Context, record model.BatchRecord) error {
	ids, err := json.Marshal(record.VariantIDs)
	if err != nil {
		return fmt.Errorf("audit: encode variant ids: %w", err)
	}
	_, err = r.db.ExecContext(ctx, insertBatch,
		record.RunID,
		record.ProfileID,
		record.ProfileName,
		record.BatchIndex,
		len(record.VariantIDs),
		string(ids),
		r.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("audit: insert batch %d: %w", record.BatchIndex, err)
	}
	return nil
}
