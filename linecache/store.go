package linecache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"ebu_workflow/logging"
)

// Default lock settings.
const (
	DefaultLockTimeout = 10 * time.Second
	DefaultLockRetry   = 25 * time.Millisecond
)

// Request describes one Merge call.
type Request struct {
	Dir  string // created if absent
	Name string // file name inside Dir

	// Candidates is a raw block of newline-separated lines. Blank input makes
	// the call a read-only sample.
	Candidates string

	SampleSize   int // lines to return; clamped to what is available
	RetentionCap int // maximum persisted lines after the merge

	// ShuffleKey makes shuffling and sampling reproducible when set.
	ShuffleKey *int64
}

func (r Request) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidRequest)
	}
	if r.SampleSize < 0 {
		return fmt.Errorf("%w: sample size %d is negative", ErrInvalidRequest, r.SampleSize)
	}
	if r.RetentionCap < 1 {
		return fmt.Errorf("%w: retention cap %d must be at least 1", ErrInvalidRequest, r.RetentionCap)
	}
	return nil
}

// Result is what a Merge call hands back to the caller.
type Result struct {
	Sample   []string // random lines, never ones from this call's input
	Input    []string // cleaned candidate lines
	Combined []string // Input followed by Sample

	Persisted int  // size of the stored set after the call
	Wrote     bool // false on the read-only path
}

// SampleText joins Sample with newlines.
func (r *Result) SampleText() string { return strings.Join(r.Sample, "\n") }

// InputText joins Input with newlines.
func (r *Result) InputText() string { return strings.Join(r.Input, "\n") }

// CombinedText joins Combined with newlines.
func (r *Result) CombinedText() string { return strings.Join(r.Combined, "\n") }

// Store merges candidate lines into persisted line sets. A Store holds no
// per-location state and is safe for concurrent use.
type Store struct {
	logger      *logging.Logger
	lockTimeout time.Duration
	lockRetry   time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. nil means no logging.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.logger = logging.OrNop(l) }
}

// WithLockTimeout bounds how long Merge waits for a busy location.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithLockRetry sets the polling interval while waiting for the lock.
func WithLockRetry(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockRetry = d
		}
	}
}

// NewStore returns a Store with the given options applied.
func NewStore(opts ...Option) *Store {
	s := &Store{
		logger:      logging.Nop(),
		lockTimeout: DefaultLockTimeout,
		lockRetry:   DefaultLockRetry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Merge runs one load-merge-write cycle for req under the location lock.
//
// With blank candidates it only samples the stored set and writes nothing.
// Otherwise the cleaned candidates are unioned with the stored set, the union
// is shuffled and truncated to RetentionCap, the previous file is copied to
// its backup and the new set is written. The sample is drawn from the stored
// lines that were not part of this call's input.
func (s *Store) Merge(ctx context.Context, req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	path := Path(req.Dir, req.Name)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	unlock, err := lockLocation(ctx, path, s.lockTimeout, s.lockRetry)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := unlock(); err != nil {
			s.logger.Warn("failed to release cache lock", zap.String("path", path), zap.Error(err))
		}
	}()

	persisted, err := loadLines(path)
	if err != nil {
		return nil, err
	}

	rng := newRand(req.ShuffleKey)
	input := CleanLines(req.Candidates)

	if len(input) == 0 {
		sample := sampleLines(rng, persisted, req.SampleSize)
		s.logger.Debug("cache sampled", logging.CacheFields(logging.CacheMetrics{
			Path:      path,
			Previous:  len(persisted),
			Persisted: len(persisted),
			Sample:    len(sample),
		}))
		return &Result{
			Sample:    sample,
			Input:     []string{},
			Combined:  slices.Clone(sample),
			Persisted: len(persisted),
		}, nil
	}

	merged := union(persisted, input)
	rng.Shuffle(len(merged), func(i, j int) {
		merged[i], merged[j] = merged[j], merged[i]
	})
	evicted := 0
	if len(merged) > req.RetentionCap {
		evicted = len(merged) - req.RetentionCap
		merged = merged[:req.RetentionCap]
	}

	if _, err := backupFile(path); err != nil {
		s.logger.Warn("cache backup failed, writing without backup",
			zap.String("path", path),
			zap.Error(err),
		)
	}
	if err := writeLines(path, merged); err != nil {
		return nil, fmt.Errorf("write cache %s: %w", path, err)
	}

	sample := sampleLines(rng, difference(merged, input), req.SampleSize)
	combined := make([]string, 0, len(input)+len(sample))
	combined = append(combined, input...)
	combined = append(combined, sample...)

	s.logger.Debug("cache merged", logging.CacheFields(logging.CacheMetrics{
		Path:      path,
		Previous:  len(persisted),
		Input:     len(input),
		Persisted: len(merged),
		Evicted:   evicted,
		Sample:    len(sample),
		Wrote:     true,
	}))

	return &Result{
		Sample:    sample,
		Input:     input,
		Combined:  combined,
		Persisted: len(merged),
		Wrote:     true,
	}, nil
}
