package series

import (
	"errors"
	"fmt"
	"time"

	"github.com/Acizza/anup/pkg/machine"
)

var (
	// ErrScoreOutOfRange rejects personal ratings outside 0..=100.
	ErrScoreOutOfRange = errors.New("score must be between 0 and 100")
	// ErrInvalidTransition rejects an explicit status override to an
	// undefined target. The entry is left unchanged.
	ErrInvalidTransition = machine.ErrInvalidTransition
)

// ResumePolicy controls what happens to watch progress when a dropped series
// is picked back up.
type ResumePolicy string

const (
	// ResumeNextEpisode keeps the previous progress and continues from the
	// episode after the last watched one.
	ResumeNextEpisode ResumePolicy = "next-episode"
	// ResumeRestart discards the previous progress and starts over from the
	// first episode.
	ResumeRestart ResumePolicy = "restart"
)

// ParseResumePolicy validates a configured resume policy string.
func ParseResumePolicy(value string) (ResumePolicy, error) {
	switch policy := ResumePolicy(value); policy {
	case ResumeNextEpisode, ResumeRestart:
		return policy, nil
	default:
		return "", fmt.Errorf("unknown resume policy %q", value)
	}
}

// Entry is the personal watch progress for one series. Mutating methods mark
// NeedsSync; clearing it is the sync engine's job after a confirmed push or
// pull.
type Entry struct {
	ID              int32
	WatchedEpisodes int32
	Score           *int32
	Status          Status
	TimesRewatched  int32
	StartDate       *time.Time
	FinishDate      *time.Time
	NeedsSync       bool
}

// AdvanceEpisode records one more watched episode and walks the status
// transitions that follow from it: a planned or shelved series moves to
// watching, and reaching the final episode completes the series. When the
// total episode count is unknown (zero) progress grows unbounded and no
// completion is inferred.
func (e *Entry) AdvanceEpisode(totalEpisodes int32, policy ResumePolicy, now time.Time) {
	if e.Status == StatusDropped && policy == ResumeRestart {
		e.WatchedEpisodes = 0
	}

	e.WatchedEpisodes++
	if totalEpisodes > 0 && e.WatchedEpisodes > totalEpisodes {
		e.WatchedEpisodes = totalEpisodes
	}
	e.NeedsSync = true

	switch e.Status {
	case StatusPlanToWatch:
		e.transition(StatusWatching, false, now)
	case StatusOnHold, StatusDropped:
		e.Status = StatusWatching
	}

	if totalEpisodes == 0 || e.WatchedEpisodes < totalEpisodes {
		return
	}

	switch e.Status {
	case StatusRewatching:
		e.TimesRewatched++
		e.transition(StatusCompleted, false, now)
	case StatusWatching:
		e.transition(StatusCompleted, false, now)
	}
}

// RegressEpisode undoes the last watched episode, saturating at zero. A
// completed series with prior rewatches falls back to rewatching; anything
// else that is not already rewatching falls back to watching.
func (e *Entry) RegressEpisode(now time.Time) {
	if e.WatchedEpisodes > 0 {
		e.WatchedEpisodes--
	}
	e.NeedsSync = true

	switch {
	case e.Status == StatusRewatching:
	case e.Status == StatusCompleted && e.TimesRewatched > 0:
		e.transition(StatusRewatching, false, now)
	default:
		e.transition(StatusWatching, false, now)
	}
}

// BeginRewatch starts a fresh watch of a completed series. Progress resets to
// zero; the original watch dates are kept unless resetDates is set, in which
// case the start date becomes today and the finish date is cleared.
func (e *Entry) BeginRewatch(resetDates bool, now time.Time) error {
	guard := machine.New(e.Status, machine.From(StatusCompleted).To(StatusRewatching))
	if err := guard.ToState(StatusRewatching); err != nil {
		return fmt.Errorf("cannot rewatch a series with status %q: %w", e.Status, err)
	}

	e.Status = StatusRewatching
	e.WatchedEpisodes = 0
	e.NeedsSync = true
	if resetDates {
		e.StartDate = dayOf(now)
		e.FinishDate = nil
	}

	return nil
}

// BeginWatching prepares the entry for playback to start. It covers the edge
// case where every episode has been watched but the status was never moved
// off watching or rewatching, rolling such an entry into a fresh rewatch.
func (e *Entry) BeginWatching(totalEpisodes int32, policy ResumePolicy, resetDates bool, now time.Time) {
	last := e.Status

	switch last {
	case StatusWatching, StatusRewatching:
		if totalEpisodes > 0 && e.WatchedEpisodes >= totalEpisodes {
			e.transition(StatusRewatching, resetDates, now)
			e.WatchedEpisodes = 0

			if last == StatusRewatching {
				e.TimesRewatched++
			}
		}
	case StatusCompleted:
		e.transition(StatusRewatching, resetDates, now)
		e.WatchedEpisodes = 0
	case StatusPlanToWatch, StatusOnHold:
		e.transition(StatusWatching, false, now)
	case StatusDropped:
		e.transition(StatusWatching, false, now)
		if policy == ResumeRestart {
			e.WatchedEpisodes = 0
		}
	}
}

// SetScore records a personal rating in 0..=100.
func (e *Entry) SetScore(score int32) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: got %d", ErrScoreOutOfRange, score)
	}

	e.Score = &score
	e.NeedsSync = true
	return nil
}

// ClearScore removes the personal rating.
func (e *Entry) ClearScore() {
	e.Score = nil
	e.NeedsSync = true
}

// SetStatus is an explicit override that skips the automatic transitions.
// Any defined status is a legal target; undefined values fail with
// ErrInvalidTransition and leave the entry untouched.
func (e *Entry) SetStatus(target Status, resetDates bool, now time.Time) error {
	if err := statusOverrides(e.Status).ToState(target); err != nil {
		return fmt.Errorf("cannot set status to %q: %w", target, err)
	}

	e.transition(target, resetDates, now)
	return nil
}

// transition moves to target, stamping watch dates on the boundaries that
// define them. Starting a watch or rewatch sets the start date; finishing or
// dropping sets the finish date. Existing dates are kept unless resetDates
// asks for a rewatch cycle to restart them.
func (e *Entry) transition(target Status, resetDates bool, now time.Time) {
	switch target {
	case StatusWatching:
		if e.StartDate == nil {
			e.StartDate = dayOf(now)
		}
	case StatusRewatching:
		if e.StartDate == nil || (e.Status == StatusCompleted && resetDates) {
			e.StartDate = dayOf(now)
		}
	case StatusCompleted:
		if e.FinishDate == nil || (e.Status == StatusRewatching && resetDates) {
			e.FinishDate = dayOf(now)
		}
	case StatusDropped:
		if e.FinishDate == nil {
			e.FinishDate = dayOf(now)
		}
	}

	e.Status = target
	e.NeedsSync = true
}

var allStatuses = []Status{
	StatusPlanToWatch,
	StatusWatching,
	StatusRewatching,
	StatusCompleted,
	StatusOnHold,
	StatusDropped,
}

func statusOverrides(current Status) *machine.StateMachine[Status] {
	transitions := make([]machine.Allowable[Status], 0, len(allStatuses))
	for _, from := range allStatuses {
		transitions = append(transitions, machine.From(from).To(allStatuses...))
	}

	return machine.New(current, transitions...)
}

// dayOf truncates now to midnight UTC so persisted dates carry no time
// component.
func dayOf(now time.Time) *time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}
