package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
	"github.com/nerrad567/gray-logic-homegraph/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-homegraph/migrations"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.Open(database.Config{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // test cleanup

	if err := db.Migrate(context.Background(), migrations.FS, "."); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewSQLiteRepository(db.DB)
}

func TestCreateFillsDefaults(t *testing.T) {
	repo := newTestRepo(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	e := &Entry{Operation: enumerate.OpEnumerateHomes, Transport: TransportHTTP, Outcome: OutcomeOK, ItemCount: 2}
	if err := repo.Create(context.Background(), e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if !e.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", e.CreatedAt, fixed)
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	ops := []string{enumerate.OpEnumerateHomes, enumerate.OpEnumerateRooms, enumerate.OpEnumerateHomes}
	for i, op := range ops {
		e := &Entry{
			RequestID: fmt.Sprintf("req-%d", i),
			Operation: op,
			Home:      "Main",
			Transport: TransportHTTP,
			Outcome:   OutcomeOK,
			ItemCount: i,
			Duration:  time.Duration(i+1) * time.Millisecond,
			// Sub-second offsets check the fixed-width timestamp ordering.
			CreatedAt: base.Add(time.Duration(i) * 500 * time.Millisecond),
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	res, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 3 || len(res.Entries) != 3 {
		t.Fatalf("Total=%d len=%d, want 3", res.Total, len(res.Entries))
	}
	if res.Entries[0].RequestID != "req-2" || res.Entries[2].RequestID != "req-0" {
		t.Errorf("entries not newest first: %s .. %s", res.Entries[0].RequestID, res.Entries[2].RequestID)
	}
	if res.Entries[0].Duration != 3*time.Millisecond {
		t.Errorf("Duration = %v, want 3ms", res.Entries[0].Duration)
	}
	if res.Limit != defaultLimit {
		t.Errorf("Limit = %d, want %d", res.Limit, defaultLimit)
	}

	res, err = repo.List(ctx, Filter{Operation: enumerate.OpEnumerateHomes, Limit: 1})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 2 || len(res.Entries) != 1 {
		t.Errorf("filtered Total=%d len=%d, want 2 and 1", res.Total, len(res.Entries))
	}
}

func TestListFiltersOutcome(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, o := range []Outcome{OutcomeOK, OutcomeNotFound, OutcomeNotFound} {
		if err := repo.Create(ctx, &Entry{Operation: enumerate.OpEnumerateRooms, Transport: TransportMCP, Outcome: o}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	res, err := repo.List(ctx, Filter{Outcome: OutcomeNotFound, Limit: 1000, Offset: -5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 2 {
		t.Errorf("Total = %d, want 2", res.Total)
	}
	if res.Limit != maxLimit || res.Offset != 0 {
		t.Errorf("Limit=%d Offset=%d, want clamped to %d and 0", res.Limit, res.Offset, maxLimit)
	}
}

func TestListEmpty(t *testing.T) {
	res, err := newTestRepo(t).List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Entries == nil || len(res.Entries) != 0 {
		t.Errorf("Entries = %#v, want empty non-nil slice", res.Entries)
	}
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Outcome
	}{
		{nil, OutcomeOK},
		{fmt.Errorf("%w: home %q", enumerate.ErrNotFound, "x"), OutcomeNotFound},
		{enumerate.ErrNotImplemented, OutcomeNotImplemented},
		{fmt.Errorf("%w: bad json", enumerate.ErrInvalidArgument), OutcomeInvalidArgument},
		{enumerate.ErrInternal, OutcomeInternal},
		{errors.New("anything else"), OutcomeInternal},
	}
	for _, tt := range tests {
		if got := OutcomeOf(tt.err); got != tt.want {
			t.Errorf("OutcomeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
