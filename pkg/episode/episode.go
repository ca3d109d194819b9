// Package episode maps video filenames to episode numbers.
//
// Matching is driven by patterns: either a custom pattern written in a small
// token language ({title}, {episode}, *) or a fixed-priority list of built-in
// patterns covering the common release naming schemes.
package episode

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrNoMatch is returned when a single filename does not fit a pattern.
	ErrNoMatch = errors.New("filename does not match pattern")

	// ErrMissingEpisodeToken is returned for custom patterns without {episode}.
	ErrMissingEpisodeToken = errors.New("pattern must contain {episode}")
)

// PatternMismatchError is returned when no candidate pattern matches every
// file in a directory. Recoverable: the caller should prompt for a custom
// pattern.
type PatternMismatchError struct {
	Dir      string
	Filename string
}

func (e *PatternMismatchError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("no pattern matches every file in %s (first failure: %s)", e.Dir, e.Filename)
	}
	return fmt.Sprintf("no pattern matches every file in %s", e.Dir)
}

// AmbiguousEpisodeError is returned when two files resolve to the same
// episode number under the chosen pattern.
type AmbiguousEpisodeError struct {
	Episode int32
	First   string
	Second  string
}

func (e *AmbiguousEpisodeError) Error() string {
	return fmt.Sprintf("episode %d matched by both %s and %s", e.Episode, e.First, e.Second)
}

// ParsedEpisode is the result of matching a single filename.
type ParsedEpisode struct {
	// Title is the series name hint extracted from the filename, cleaned of
	// separator characters. Empty when the pattern has no title group.
	Title   string
	Episode int32
}

var foldCaser = cases.Fold()

// CleanTitle normalizes a raw title fragment extracted from a filename.
// Dots and underscores stand in for spaces in release names, and a trailing
// dash usually marks a colon in the real title.
func CleanTitle(raw string) string {
	cleaned := strings.NewReplacer(".", " ", "_", " ").Replace(raw)
	cleaned = strings.ReplaceAll(cleaned, " -", ":")
	return strings.TrimSpace(cleaned)
}

// sameTitle reports whether two cleaned titles refer to the same series,
// ignoring case per Unicode case folding.
func sameTitle(a, b string) bool {
	return foldCaser.String(a) == foldCaser.String(b)
}
