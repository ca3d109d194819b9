package episode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return dir
}

func TestResolveDirBuiltin(t *testing.T) {
	dir := writeFiles(t,
		"[Group] Winter Story - 01.mkv",
		"[Group] Winter Story - 02.mkv",
		"[Group] Winter Story - 03.mkv",
	)

	resolved, err := ResolveDir(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "Winter Story", resolved.Title)
	assert.Equal(t, map[int32]string{
		1: "[Group] Winter Story - 01.mkv",
		2: "[Group] Winter Story - 02.mkv",
		3: "[Group] Winter Story - 03.mkv",
	}, resolved.Episodes)
}

func TestResolveDirSkipsPartialAndHiddenFiles(t *testing.T) {
	dir := writeFiles(t,
		"Winter Story - 01.mkv",
		"Winter Story - 02.mkv.part",
		".hidden",
	)

	resolved, err := ResolveDir(dir, nil)
	require.NoError(t, err)
	assert.Len(t, resolved.Episodes, 1)
}

func TestResolveDirPatternMismatch(t *testing.T) {
	dir := writeFiles(t,
		"Winter Story - 01.mkv",
		"completely unrelated.txt",
	)

	_, err := ResolveDir(dir, nil)

	var mismatch *PatternMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, dir, mismatch.Dir)
}

func TestResolveDirAmbiguousEpisode(t *testing.T) {
	dir := writeFiles(t,
		"Winter Story - 01.mkv",
		"Winter Story - 1.mkv",
	)

	_, err := ResolveDir(dir, nil)

	var ambiguous *AmbiguousEpisodeError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, int32(1), ambiguous.Episode)
}

func TestResolveDirCustomPatternTakesPrecedence(t *testing.T) {
	dir := writeFiles(t,
		"WS_e01_final.mkv",
		"WS_e02_final.mkv",
	)

	pattern, err := NewPattern("WS_e{episode}_final")
	require.NoError(t, err)

	resolved, err := ResolveDir(dir, pattern)
	require.NoError(t, err)
	assert.Equal(t, map[int32]string{
		1: "WS_e01_final.mkv",
		2: "WS_e02_final.mkv",
	}, resolved.Episodes)
}

func TestResolveDirEmpty(t *testing.T) {
	dir := t.TempDir()

	_, err := ResolveDir(dir, nil)

	var mismatch *PatternMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestScanRawKeepsDuplicateEpisodeNumbers(t *testing.T) {
	// merged seasons renumber from 1, so duplicates are expected before the
	// splitter partitions them
	dir := writeFiles(t,
		"Winter Story - 01.mkv",
		"Winter Story S2 - 01.mkv",
	)

	pattern, err := NewPattern("{title} - {episode}")
	require.NoError(t, err)

	raw, err := ScanRaw(dir, pattern)
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, int32(1), raw[0].Episode)
	assert.Equal(t, int32(1), raw[1].Episode)
}

func TestScanRawOrdered(t *testing.T) {
	dir := writeFiles(t,
		"Winter Story - 03.mkv",
		"Winter Story - 01.mkv",
		"Winter Story - 02.mkv",
	)

	raw, err := ScanRaw(dir, nil)
	require.NoError(t, err)
	require.Len(t, raw, 3)
	assert.Equal(t, int32(1), raw[0].Episode)
	assert.Equal(t, int32(2), raw[1].Episode)
	assert.Equal(t, int32(3), raw[2].Episode)
}
