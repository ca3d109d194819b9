package series

import "fmt"

// Status is the watch state of a tracked series. The numeric values are the
// stored representation and must not be reordered.
type Status int32

const (
	StatusPlanToWatch Status = iota
	StatusWatching
	StatusRewatching
	StatusCompleted
	StatusOnHold
	StatusDropped
)

func (s Status) String() string {
	switch s {
	case StatusPlanToWatch:
		return "plan to watch"
	case StatusWatching:
		return "watching"
	case StatusRewatching:
		return "rewatching"
	case StatusCompleted:
		return "completed"
	case StatusOnHold:
		return "on hold"
	case StatusDropped:
		return "dropped"
	default:
		return fmt.Sprintf("unknown (%d)", int32(s))
	}
}

// Defined reports whether s is one of the known status codes.
func (s Status) Defined() bool {
	return s >= StatusPlanToWatch && s <= StatusDropped
}

// ParseStatus maps the short command-line forms to a status.
func ParseStatus(value string) (Status, error) {
	switch value {
	case "plan", "plan-to-watch":
		return StatusPlanToWatch, nil
	case "watching", "watch":
		return StatusWatching, nil
	case "rewatch", "rewatching":
		return StatusRewatching, nil
	case "completed", "complete":
		return StatusCompleted, nil
	case "hold", "on-hold":
		return StatusOnHold, nil
	case "drop", "dropped":
		return StatusDropped, nil
	default:
		return 0, fmt.Errorf("unknown status %q", value)
	}
}
