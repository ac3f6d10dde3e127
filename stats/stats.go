// Package stats counts shots, scores and bounces from session events.
// Counters are exported through the global OTel meter provider (no-op unless
// one is installed) and mirrored in an in-process tally for the status line.
package stats

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/vi-golf/engine"
)

// Tally is a point-in-time copy of the in-process counters
type Tally struct {
	Shots        int64
	AbortedShots int64
	Scores       int64
	WallBounces  int64
	ObstacleHits int64
}

// String formats the tally for the status line
func (t Tally) String() string {
	return fmt.Sprintf("shots %d  aborted %d  scores %d  bounces %d/%d",
		t.Shots, t.AbortedShots, t.Scores, t.WallBounces, t.ObstacleHits)
}

// Recorder implements engine.EventHandler
type Recorder struct {
	shots   metric.Int64Counter
	aborted metric.Int64Counter
	scores  metric.Int64Counter
	bounces metric.Int64Counter

	nShots    atomic.Int64
	nAborted  atomic.Int64
	nScores   atomic.Int64
	nWall     atomic.Int64
	nObstacle atomic.Int64
}

var (
	wallAttr     = metric.WithAttributes(attribute.String("surface", "wall"))
	obstacleAttr = metric.WithAttributes(attribute.String("surface", "obstacle"))
)

// New creates a Recorder on the global meter
func New() (*Recorder, error) {
	return NewWithMeter(meter())
}

// NewWithMeter creates a Recorder whose counters come from m
func NewWithMeter(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}

	var err error
	r.shots, err = m.Int64Counter(
		"golf.shots",
		metric.WithDescription("Shots launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	r.aborted, err = m.Int64Counter(
		"golf.aborted_shots",
		metric.WithDescription("Drags released below the launch threshold"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating aborted shots counter: %w", err)
	}

	r.scores, err = m.Int64Counter(
		"golf.scores",
		metric.WithDescription("Balls holed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scores counter: %w", err)
	}

	r.bounces, err = m.Int64Counter(
		"golf.bounces",
		metric.WithDescription("Wall and obstacle contacts"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating bounces counter: %w", err)
	}

	return r, nil
}

// HandleEvent counts one session event
func (r *Recorder) HandleEvent(ev engine.Event) {
	ctx := context.Background()
	switch ev.Type {
	case engine.EventLaunch:
		r.nShots.Add(1)
		r.shots.Add(ctx, 1)
	case engine.EventAbort:
		r.nAborted.Add(1)
		r.aborted.Add(ctx, 1)
	case engine.EventScore:
		r.nScores.Add(1)
		r.scores.Add(ctx, 1)
	case engine.EventWallBounce:
		r.nWall.Add(1)
		r.bounces.Add(ctx, 1, wallAttr)
	case engine.EventObstacleBounce:
		r.nObstacle.Add(1)
		r.bounces.Add(ctx, 1, obstacleAttr)
	}
}

// Snapshot returns the current tally
func (r *Recorder) Snapshot() Tally {
	return Tally{
		Shots:        r.nShots.Load(),
		AbortedShots: r.nAborted.Load(),
		Scores:       r.nScores.Load(),
		WallBounces:  r.nWall.Load(),
		ObstacleHits: r.nObstacle.Load(),
	}
}
