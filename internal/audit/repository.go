// Package audit records every RPC call made against the home graph in the
// request_audit table and lists recent entries.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome classifies how a call ended.
type Outcome string

// Outcomes mirror the enumeration error vocabulary.
const (
	OutcomeOK              Outcome = "ok"
	OutcomeNotFound        Outcome = "not_found"
	OutcomeNotImplemented  Outcome = "not_implemented"
	OutcomeInvalidArgument Outcome = "invalid_argument"
	OutcomeInternal        Outcome = "internal"
)

// Transports that reach the enumeration service.
const (
	TransportHTTP = "http"
	TransportMCP  = "mcp"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	// timeLayout is fixed width so created_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// Entry is one recorded call.
type Entry struct {
	ID        string        `json:"id"`
	RequestID string        `json:"request_id,omitempty"`
	Operation string        `json:"operation"`
	Home      string        `json:"home,omitempty"`
	Transport string        `json:"transport"`
	Subject   string        `json:"subject,omitempty"`
	Outcome   Outcome       `json:"outcome"`
	Error     string        `json:"error,omitempty"`
	ItemCount int           `json:"item_count"`
	Duration  time.Duration `json:"duration_ns"`
	CreatedAt time.Time     `json:"created_at"`
}

// Filter controls which entries List returns.
type Filter struct {
	Operation string  // optional exact operation name
	Outcome   Outcome // optional
	Limit     int     // default 50, max 200
	Offset    int
}

// ListResult is one page of entries, newest first.
type ListResult struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}

// Repository stores and lists audit entries.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, filter Filter) (*ListResult, error)
}

// SQLiteRepository is the Repository backed by the request_audit table.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates a repository on an already migrated database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// Create inserts e, filling in ID and CreatedAt when they are empty.
func (r *SQLiteRepository) Create(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO request_audit
		 (id, request_id, operation, home, transport, subject, outcome, error, item_count, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.RequestID, e.Operation, e.Home, e.Transport, e.Subject,
		string(e.Outcome), e.Error, e.ItemCount, e.Duration.Milliseconds(),
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}
	return nil
}

// List returns entries matching filter, most recent first.
func (r *SQLiteRepository) List(ctx context.Context, filter Filter) (*ListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	filter.Limit = min(filter.Limit, maxLimit)
	filter.Offset = max(filter.Offset, 0)

	var conditions []string
	var args []any
	if filter.Operation != "" {
		conditions = append(conditions, "operation = ?")
		args = append(args, filter.Operation)
	}
	if filter.Outcome != "" {
		conditions = append(conditions, "outcome = ?")
		args = append(args, string(filter.Outcome))
	}
	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM request_audit " + where //nolint:gosec // WHERE holds placeholders only
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting audit entries: %w", err)
	}

	query := `SELECT id, request_id, operation, home, transport, subject, outcome, error, item_count, duration_ms, created_at
		FROM request_audit ` + where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?` //nolint:gosec // WHERE holds placeholders only
	rows, err := r.db.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("querying audit entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var outcome, createdAt string
		var durationMS int64
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Operation, &e.Home, &e.Transport, &e.Subject,
			&outcome, &e.Error, &e.ItemCount, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if e.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing audit timestamp %q: %w", createdAt, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating audit entries: %w", err)
	}

	return &ListResult{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}
