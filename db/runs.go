package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// timeLayout sorts lexically in time order, so range queries work on TEXT.
const timeLayout = "2006-01-02 15:04:05.000"

// Run is one recorded invocation of a node.
type Run struct {
	ID         int64     `json:"-"`
	RunID      string    `json:"run_id"`
	Node       string    `json:"node"`
	Status     string    `json:"status"`
	DurationMS int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRunID returns a short correlation ID.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// RecordRun inserts run. Empty RunID and zero CreatedAt are filled in.
func (d *Database) RecordRun(ctx context.Context, run Run) (int64, error) {
	if run.Node == "" {
		return 0, fmt.Errorf("run node is required")
	}
	if run.RunID == "" {
		run.RunID = NewRunID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.Status == "" {
		run.Status = StatusOK
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	conn, err := d.conn()
	if err != nil {
		return 0, err
	}

	res, err := conn.ExecContext(ctx,
		`INSERT INTO runs (run_id, node, status, duration_ms, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Node, run.Status, run.DurationMS, run.Error,
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

// RecentRuns returns up to limit runs, newest first.
func (d *Database) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	conn, err := d.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx,
		`SELECT id, run_id, node, status, duration_ms, error, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created string
		)
		if err := rows.Scan(&r.ID, &r.RunID, &r.Node, &r.Status, &r.DurationMS, &r.Error, &created); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("failed to parse run time %q: %w", created, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// PruneRuns deletes runs created before now minus retention. A zero
// retention keeps everything.
func (d *Database) PruneRuns(ctx context.Context, retention time.Duration, now time.Time) (int64, error) {
	if retention < 0 {
		return 0, fmt.Errorf("retention must be non-negative, got %v", retention)
	}
	if retention == 0 {
		return 0, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	conn, err := d.conn()
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-retention).UTC().Format(timeLayout)
	res, err := conn.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return res.RowsAffected()
}
