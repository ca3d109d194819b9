package episode

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// TitleToken marks the series title group in a custom pattern.
	TitleToken = "{title}"
	// EpisodeToken marks the episode number group in a custom pattern.
	EpisodeToken = "{episode}"
)

// Pattern matches filenames against a single compiled pattern.
type Pattern struct {
	raw      string
	re       *regexp.Regexp
	hasTitle bool
}

// NewPattern compiles a custom pattern written in the token mini-language:
// literal characters match verbatim (case-insensitive, with spaces, dots and
// underscores interchangeable), '*' matches any run of characters up to the
// next literal, {episode} matches a digit run and yields the episode number,
// and an optional {title} captures a series name hint.
func NewPattern(raw string) (*Pattern, error) {
	if !strings.Contains(raw, EpisodeToken) {
		return nil, ErrMissingEpisodeToken
	}

	var b strings.Builder
	b.WriteString(`(?i)^`)

	rest := raw
	for len(rest) > 0 {
		switch {
		case strings.HasPrefix(rest, EpisodeToken):
			b.WriteString(`(?P<episode>\d+)`)
			rest = rest[len(EpisodeToken):]
		case strings.HasPrefix(rest, TitleToken):
			b.WriteString(`(?P<title>.+?)`)
			rest = rest[len(TitleToken):]
		case rest[0] == '*':
			b.WriteString(`.*?`)
			rest = rest[1:]
		case isPatternSpace(rune(rest[0])):
			b.WriteString(`[\s._]+`)
			rest = strings.TrimLeftFunc(rest, isPatternSpace)
		default:
			r, size := utf8.DecodeRuneInString(rest)
			b.WriteString(regexp.QuoteMeta(string(r)))
			rest = rest[size:]
		}
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, err
	}

	return &Pattern{
		raw:      raw,
		re:       re,
		hasTitle: strings.Contains(raw, TitleToken),
	}, nil
}

func isPatternSpace(r rune) bool {
	return r == ' ' || r == '.' || r == '_' || unicode.IsSpace(r)
}

// String returns the original pattern text, suitable for persisting.
func (p *Pattern) String() string {
	return p.raw
}

// HasTitle reports whether the pattern yields a series name hint.
func (p *Pattern) HasTitle() bool {
	return p.hasTitle
}

// Match parses a single filename. The file extension is stripped before
// matching so that dot-separated names do not bleed into title groups.
func (p *Pattern) Match(filename string) (ParsedEpisode, error) {
	return matchWith(p.re, p.hasTitle, filename)
}

func matchWith(re *regexp.Regexp, hasTitle bool, filename string) (ParsedEpisode, error) {
	name := stripExtension(filename)

	match := re.FindStringSubmatch(name)
	if match == nil {
		return ParsedEpisode{}, ErrNoMatch
	}

	var parsed ParsedEpisode
	for i, group := range re.SubexpNames() {
		switch group {
		case "episode":
			num, err := strconv.ParseInt(match[i], 10, 32)
			if err != nil {
				return ParsedEpisode{}, ErrNoMatch
			}
			parsed.Episode = int32(num)
		case "title":
			if hasTitle {
				parsed.Title = CleanTitle(match[i])
			}
		}
	}

	return parsed, nil
}

func stripExtension(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx > 0 {
		return filename[:idx]
	}
	return filename
}

// builtinPattern is one entry of the fixed-priority default list.
type builtinPattern struct {
	name     string
	re       *regexp.Regexp
	hasTitle bool
}

func (b builtinPattern) match(filename string) (ParsedEpisode, error) {
	return matchWith(b.re, b.hasTitle, filename)
}

// builtins is tried in order until one pattern matches every file in a
// directory. Ordering matters: the more tagged formats go first so that
// bracket groups and resolution tags are not mistaken for titles or episodes.
var builtins = []builtinPattern{
	{
		// [Group] Series Title - 01, [Group]_Series_Title_-_01, [Group].Series.Title.-.01
		name:     "bracket group",
		re:       regexp.MustCompile(`(?i)^(?:\[[^\]]+\][\s._]*)+(?P<title>.+?)[\s._]*-[\s._]*(?:s\d+e|ep(?:isode)?[\s._]*|e)?(?P<episode>\d+)(?:v\d+)?\b`),
		hasTitle: true,
	},
	{
		// [Group].Series.Title.Ep.01 and other bracket-tagged names where an
		// explicit episode marker stands in for the dash
		name:     "bracket marker",
		re:       regexp.MustCompile(`(?i)^(?:\[[^\]]+\][\s._]*)+(?P<title>.+?)[\s._]*(?:-[\s._]*)?(?:s\d+e|ep(?:isode)?[\s._]*|e)(?P<episode>\d+)(?:v\d+)?\b`),
		hasTitle: true,
	},
	{
		// [Group]_Series_Title_01 and other underscore-separated names without a dash
		name:     "underscore separated",
		re:       regexp.MustCompile(`(?i)^(?:\[[^\]]+\]_*)?(?P<title>[^\[\]]+?)_+(?:ep(?:isode)?_*|e)?(?P<episode>\d+)(?:v\d+)?(?:_|$)`),
		hasTitle: true,
	},
	{
		// [Group] Series Title 01 [1080p], Series Title - 01 (720p)
		name:     "resolution tagged",
		re:       regexp.MustCompile(`(?i)^(?:\[[^\]]+\][\s._]*)*(?P<title>.+?)[\s._]*(?:-[\s._]*)?(?:s\d+e|ep(?:isode)?[\s._]*|e)?(?P<episode>\d+)(?:v\d+)?[\s._]*[\[(]\d{3,4}p?[\])]`),
		hasTitle: true,
	},
	{
		// Series Title - 01, Series.Title.-.01, Series Title - S01E01
		name:     "title dash episode",
		re:       regexp.MustCompile(`(?i)^(?P<title>.+?)[\s._]*-[\s._]*(?:s\d+e|ep(?:isode)?[\s._]*|e)?(?P<episode>\d+)(?:v\d+)?\b`),
		hasTitle: true,
	},
	{
		// Series Title 01
		name:     "title episode",
		re:       regexp.MustCompile(`(?i)^(?:\[[^\]]+\][\s._]*)*(?P<title>[^\[\]\d]+?)[\s._]+(?:s\d+e|ep(?:isode)?[\s._]*|e)?(?P<episode>\d+)(?:v\d+)?\b`),
		hasTitle: true,
	},
	{
		// 01 - Series Title, [Group] 01 Series Title
		name:     "episode first",
		re:       regexp.MustCompile(`(?i)^(?:\[[^\]]+\][\s._]*)*(?:s\d+e|e)?(?P<episode>\d+)(?:v\d+)?[\s._]*(?:-[\s._]*)?(?P<title>\D.*)$`),
		hasTitle: true,
	},
}
