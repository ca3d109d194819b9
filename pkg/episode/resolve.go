package episode

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Resolved maps episode numbers to filenames within a directory.
type Resolved struct {
	// Title is the series name hint agreed on by every file, when available.
	Title string
	// Episodes maps episode number to filename.
	Episodes map[int32]string
	// Pattern is the pattern that matched every file.
	Pattern string
}

// RawFile is a single file's parse result without any directory-level
// consistency applied. Used by the season splitter, where several files may
// legitimately share a season-relative episode number before partitioning.
type RawFile struct {
	Filename string
	Episode  int32
	Title    string
}

// ResolveDir maps every episode file in dir to its episode number.
//
// A custom pattern, when given, takes precedence and is the only candidate.
// Otherwise the built-in patterns are tried in priority order until one
// matches every file. Returns a PatternMismatchError when no candidate fits
// and an AmbiguousEpisodeError when two files collide under the chosen
// pattern.
func ResolveDir(dir string, custom *Pattern) (*Resolved, error) {
	files, err := episodeFiles(dir)
	if err != nil {
		return nil, err
	}

	if custom != nil {
		resolved, err := resolveWith(dir, files, custom.String(), custom.Match)
		if err != nil {
			return nil, err
		}
		return resolved, nil
	}

	var firstFailure string
	for _, builtin := range builtins {
		resolved, err := resolveWith(dir, files, builtin.name, builtin.match)
		if err == nil {
			return resolved, nil
		}

		// ambiguity under a fitting pattern is a hard error, not a reason
		// to fall through to a lower-priority pattern
		var ambiguous *AmbiguousEpisodeError
		if errors.As(err, &ambiguous) {
			return nil, err
		}

		var mismatch *PatternMismatchError
		if firstFailure == "" && errors.As(err, &mismatch) {
			firstFailure = mismatch.Filename
		}
	}

	return nil, &PatternMismatchError{Dir: dir, Filename: firstFailure}
}

// ScanRaw parses every episode file in dir without the single-season
// consistency checks. Results are ordered by episode number, then filename.
func ScanRaw(dir string, custom *Pattern) ([]RawFile, error) {
	files, err := episodeFiles(dir)
	if err != nil {
		return nil, err
	}

	match := func(filename string) (ParsedEpisode, error) {
		if custom != nil {
			return custom.Match(filename)
		}
		for _, builtin := range builtins {
			if parsed, err := builtin.match(filename); err == nil {
				return parsed, nil
			}
		}
		return ParsedEpisode{}, ErrNoMatch
	}

	raw := make([]RawFile, 0, len(files))
	for _, filename := range files {
		parsed, err := match(filename)
		if err != nil {
			return nil, &PatternMismatchError{Dir: dir, Filename: filename}
		}
		raw = append(raw, RawFile{Filename: filename, Episode: parsed.Episode, Title: parsed.Title})
	}

	sort.Slice(raw, func(i, j int) bool {
		if raw[i].Episode != raw[j].Episode {
			return raw[i].Episode < raw[j].Episode
		}
		return raw[i].Filename < raw[j].Filename
	})

	return raw, nil
}

func resolveWith(dir string, files []string, patternName string, match func(string) (ParsedEpisode, error)) (*Resolved, error) {
	resolved := &Resolved{
		Episodes: make(map[int32]string, len(files)),
		Pattern:  patternName,
	}

	for _, filename := range files {
		parsed, err := match(filename)
		if err != nil {
			return nil, &PatternMismatchError{Dir: dir, Filename: filename}
		}

		if parsed.Title != "" {
			if resolved.Title == "" {
				resolved.Title = parsed.Title
			} else if !sameTitle(resolved.Title, parsed.Title) {
				// two different series under one pattern means the pattern
				// does not describe this directory
				return nil, &PatternMismatchError{Dir: dir, Filename: filename}
			}
		}

		if existing, ok := resolved.Episodes[parsed.Episode]; ok {
			return nil, &AmbiguousEpisodeError{
				Episode: parsed.Episode,
				First:   existing,
				Second:  filename,
			}
		}

		resolved.Episodes[parsed.Episode] = filename
	}

	if len(resolved.Episodes) == 0 {
		return nil, &PatternMismatchError{Dir: dir}
	}

	return resolved, nil
}

// episodeFiles lists candidate episode files in dir, skipping directories,
// hidden files and in-progress downloads.
func episodeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".part") {
			continue
		}

		files = append(files, name)
	}

	return files, nil
}
