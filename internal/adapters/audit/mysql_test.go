package audit

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"delivery-profile-assigner/internal/domain/model"

	"github.com/google/go-cmp/cmp"
)

type execCall struct {
	query string
	args  []any
}

type fakeExecer struct {
	calls []execCall
	err   error
}

func (f *fakeExecer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls = append(f.calls, execCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func TestRecorderCreatesTableAndInsertsBatch(t *testing.T) {
	db := &fakeExecer{}
	recorder, err := newRecorder(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stamp := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	recorder.now = func() time.Time { return stamp }

	err = recorder.RecordBatch(context.Background(), model.BatchRecord{
		RunID:       "run-1",
		ProfileID:   "gid://shopify/DeliveryProfile/2",
		ProfileName: "Dropship",
		BatchIndex:  3,
		VariantIDs:  []string{"v1", "v2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(db.calls) != 2 {
		t.Fatalf("exec calls = %d, want 2", len(db.calls))
	}
	if !strings.Contains(db.calls[0].query, "CREATE TABLE IF NOT EXISTS delivery_profile_batches") {
		t.Errorf("first statement should create the table: %s", db.calls[0].query)
	}
	want := []any{"run-1", "gid://shopify/DeliveryProfile/2", "Dropship", 3, 2, `["v1","v2"]`, stamp}
	if d := cmp.Diff(want, db.calls[1].args); d != "" {
		t.Errorf("insert args (-want +got):\n%s", d)
	}
}

func TestRecorderWrapsErrors(t *testing.T) {
	db := &fakeExecer{err: errors.New("read-only")}
	if _, err := newRecorder(context.Background(), db); err == nil || !strings.Contains(err.Error(), "create table") {
		t.Fatalf("expected create table error, got %v", err)
	}

	recorder := &MysqlRecorder{db: db, now: time.Now}
	err := recorder.RecordBatch(context.Background(), model.BatchRecord{BatchIndex: 1})
	if err == nil || !strings.Contains(err.Error(), "insert batch 1") {
		t.Fatalf("expected insert error, got %v", err)
	}
}

func TestNewMysqlRecorderRejectsNilDB(t *testing.T) {
	if _, err := NewMysqlRecorder(context.Background(), nil); err == nil {
		t.Fatalf("expected error")
	}
}
