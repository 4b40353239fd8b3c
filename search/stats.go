package search

import (
	"context"
	"sync/atomic"

	"github.com/seekerror/logw"

	"github.com/G4mingJon4s/govo/board"
)

// Move aliases board.Move so callers of this package can name result
// moves without importing board directly.
type Move = board.Move

// Stats accumulates transposition-table and node-count bookkeeping over
// one search call, copied almost verbatim in shape from the teacher's
// engine.Stats because the transposition table here needs identical
// hit/miss counting.
type Stats struct {
	CacheHit  uint64
	CacheMiss uint64
	Nodes     uint64
}

// CacheHitRatio returns CacheHit/(CacheHit+CacheMiss), or 0 if neither
// has been recorded yet.
func (s *Stats) CacheHitRatio() float64 {
	total := s.CacheHit + s.CacheMiss
	if total == 0 {
		return 0
	}
	return float64(s.CacheHit) / float64(total)
}

func (s *Stats) recordNode() { atomic.AddUint64(&s.Nodes, 1) }
func (s *Stats) recordHit()  { atomic.AddUint64(&s.CacheHit, 1) }
func (s *Stats) recordMiss() { atomic.AddUint64(&s.CacheMiss, 1) }

// Logger receives search lifecycle events. It is optional; a nil Logger
// is replaced by NopLogger. DefaultLogger reports through
// github.com/seekerror/logw instead of the teacher's raw UCI text
// writer, since govo has no UCI wire protocol to emit into.
type Logger interface {
	BeginSearch(ctx context.Context, depth uint8)
	EndSearch(ctx context.Context, stats Stats, best Move, score float64)
}

type nopLogger struct{}

func (nopLogger) BeginSearch(context.Context, uint8)              {}
func (nopLogger) EndSearch(context.Context, Stats, Move, float64) {}

// NopLogger discards every event; it is the zero-friendly default for
// tests and for callers uninterested in lifecycle logging.
var NopLogger Logger = nopLogger{}

type logwLogger struct{}

// DefaultLogger reports search lifecycle events through logw.Infof,
// grounded on herohde-morlock/pkg/search and pkg/engine's use of
// logw.Infof(ctx, ...) for search start/end lines.
var DefaultLogger Logger = logwLogger{}

func (logwLogger) BeginSearch(ctx context.Context, depth uint8) {
	logw.Infof(ctx, "search: begin depth=%d", depth)
}

func (logwLogger) EndSearch(ctx context.Context, stats Stats, best Move, score float64) {
	logw.Infof(ctx, "search: end best=%v score=%.3f nodes=%d cacheHitRatio=%.3f",
		best, score, stats.Nodes, stats.CacheHitRatio())
}
