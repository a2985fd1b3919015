// Package sm2 implements the SM-2 spaced-repetition interval algorithm.
// Everything here is pure: no DB, no context, no logger, no clock.
package sm2

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// ErrInvalidState is returned when an input state violates the model invariants.
var ErrInvalidState = errors.New("sm2: invalid state")

// Parameters holds the SM-2 coefficients.
type Parameters struct {
	InitialEase     float64
	MinEase         float64
	FailEasePenalty float64
	FirstInterval   int
	SecondInterval  int
	FailInterval    int
	MaxIntervalDays int
}

// DefaultParameters returns the classic SM-2 coefficients.
func DefaultParameters() Parameters {
	return Parameters{
		InitialEase:     2.5,
		MinEase:         1.3,
		FailEasePenalty: 0.2,
		FirstInterval:   1,
		SecondInterval:  6,
		FailInterval:    1,
		MaxIntervalDays: 36500,
	}
}

// ParametersFromConfig builds Parameters from the domain SRS config.
func ParametersFromConfig(cfg domain.SRSConfig) Parameters {
	return Parameters{
		InitialEase:     cfg.InitialEase,
		MinEase:         cfg.MinEase,
		FailEasePenalty: cfg.FailEasePenalty,
		FirstInterval:   cfg.FirstInterval,
		SecondInterval:  cfg.SecondInterval,
		FailInterval:    cfg.FailInterval,
		MaxIntervalDays: cfg.MaxIntervalDays,
	}
}

// Validate checks that the coefficients can only produce valid states.
func (p Parameters) Validate() error {
	switch {
	case p.MinEase <= 0:
		return fmt.Errorf("min ease must be > 0 (got %v)", p.MinEase)
	case p.InitialEase < p.MinEase:
		return fmt.Errorf("initial ease %v below min ease %v", p.InitialEase, p.MinEase)
	case p.FailEasePenalty < 0:
		return fmt.Errorf("fail ease penalty must be >= 0 (got %v)", p.FailEasePenalty)
	case p.FirstInterval < 1 || p.SecondInterval < 1 || p.FailInterval < 1:
		return fmt.Errorf("intervals must be >= 1 day (got %d/%d/%d)", p.FirstInterval, p.SecondInterval, p.FailInterval)
	case p.SecondInterval < p.FirstInterval:
		return fmt.Errorf("second interval %d shorter than first interval %d", p.SecondInterval, p.FirstInterval)
	case p.MaxIntervalDays < p.SecondInterval:
		return fmt.Errorf("max interval %d shorter than second interval %d", p.MaxIntervalDays, p.SecondInterval)
	}
	return nil
}

// State is the part of a memory state the algorithm reads and writes.
type State struct {
	Repetitions  int
	IntervalDays int
	Ease         float64
}

// StateOf extracts the algorithm state from a stored memory state.
func StateOf(ms domain.MemoryState) State {
	return State{Repetitions: ms.Repetitions, IntervalDays: ms.IntervalDays, Ease: ms.Ease}
}

// Initial returns the state assigned to a card that has never been reviewed.
func (p Parameters) Initial() State {
	return State{Repetitions: 0, IntervalDays: p.FirstInterval, Ease: p.InitialEase}
}

// Check reports whether s satisfies the model invariants. It never repairs the state.
func (p Parameters) Check(s State) error {
	switch {
	case s.Repetitions < 0:
		return fmt.Errorf("%w: repetitions %d < 0", ErrInvalidState, s.Repetitions)
	case s.IntervalDays < 1:
		return fmt.Errorf("%w: interval %d < 1", ErrInvalidState, s.IntervalDays)
	case math.IsNaN(s.Ease) || math.IsInf(s.Ease, 0):
		return fmt.Errorf("%w: ease %v is not finite", ErrInvalidState, s.Ease)
	case s.Ease < p.MinEase:
		return fmt.Errorf("%w: ease %v < %v", ErrInvalidState, s.Ease, p.MinEase)
	}
	return nil
}

// CheckMemoryState runs Check and also verifies the due timestamp against the last review.
func (p Parameters) CheckMemoryState(ms domain.MemoryState) error {
	if err := p.Check(StateOf(ms)); err != nil {
		return err
	}
	if q := ms.LastQuality; !q.IsValid() {
		return fmt.Errorf("%w: last quality %d out of range", ErrInvalidState, int(q))
	}
	if want := DueAt(ms.LastReviewedAt, ms.IntervalDays); !ms.DueAt.Equal(want) {
		return fmt.Errorf("%w: due %s does not match last review + %d days", ErrInvalidState,
			ms.DueAt.UTC().Format(time.RFC3339), ms.IntervalDays)
	}
	return nil
}

// EaseDelta is the SM-2 ease adjustment for a passing grade:
//
//	0.1 - (5-q) * (0.08 + (5-q) * 0.02)
func EaseDelta(q domain.Quality) float64 {
	d := float64(domain.QualityMax - q)
	return 0.1 - d*(0.08+d*0.02)
}

// Next computes the state after one review of quality q. Deterministic.
func (p Parameters) Next(s State, q domain.Quality) (State, error) {
	outcome, err := Classify(q)
	if err != nil {
		return State{}, err
	}
	if err := p.Check(s); err != nil {
		return State{}, err
	}

	if outcome == domain.OutcomeFail {
		return State{
			Repetitions:  0,
			IntervalDays: p.FailInterval,
			Ease:         math.Max(p.MinEase, roundEase(s.Ease-p.FailEasePenalty)),
		}, nil
	}

	next := State{
		Repetitions: s.Repetitions + 1,
		Ease:        math.Max(p.MinEase, roundEase(s.Ease+EaseDelta(q))),
	}
	switch next.Repetitions {
	case 1:
		next.IntervalDays = p.FirstInterval
	case 2:
		next.IntervalDays = p.SecondInterval
	default:
		next.IntervalDays = p.grow(s.IntervalDays, next.Ease)
	}
	next.IntervalDays = min(max(next.IntervalDays, 1), p.MaxIntervalDays)

	return next, nil
}

// Schedule applies a review at reviewedAt and returns the full memory state to persist.
func (p Parameters) Schedule(prev State, q domain.Quality, reviewedAt time.Time) (domain.MemoryState, error) {
	next, err := p.Next(prev, q)
	if err != nil {
		return domain.MemoryState{}, err
	}

	reviewedAt = reviewedAt.UTC()
	return domain.MemoryState{
		Repetitions:    next.Repetitions,
		IntervalDays:   next.IntervalDays,
		Ease:           next.Ease,
		DueAt:          DueAt(reviewedAt, next.IntervalDays),
		LastReviewedAt: reviewedAt,
		LastQuality:    q,
	}, nil
}

// DueAt returns reviewedAt plus intervalDays calendar days, in UTC.
func DueAt(reviewedAt time.Time, intervalDays int) time.Time {
	return reviewedAt.UTC().AddDate(0, 0, intervalDays)
}

// grow returns interval*ease rounded half up, capped at MaxIntervalDays.
// The product is taken in hundredths of ease so that e.g. 25*1.94 is exactly 48.5.
func (p Parameters) grow(interval int, ease float64) int {
	if float64(interval)*ease >= float64(p.MaxIntervalDays) {
		return p.MaxIntervalDays
	}
	hundredths := int64(math.Round(ease * 100))
	return int((int64(interval)*hundredths + 50) / 100)
}

// roundEase keeps ease at two decimals so repeated updates do not drift.
func roundEase(e float64) float64 {
	if math.Abs(e) >= 1<<50 {
		return e
	}
	return math.Round(e*100) / 100
}
