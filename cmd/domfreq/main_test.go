package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-domfreq/domfreq"
)

type fixedSelector struct {
	files []string
}

func (s *fixedSelector) Select(candidates []string) ([]string, error) {
	return s.files, nil
}

func writeToneWAV(t *testing.T, dir, name string, freq float64, sampleRate, n int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)

	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(30000 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	return path
}

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_SingleFileAutoSelected(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "output")

	writeToneWAV(t, inputDir, "tone.wav", 1000, 44100, 4096)
	settings := writeSettings(t, t.TempDir(), `{"samples_per_group": 1024, "algorithm": "spectral_peak"}`)

	// Selector must not be consulted when exactly one candidate exists
	err := run(settings, inputDir, outputDir, &fixedSelector{files: nil})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "tone.txt"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5, "comment line plus one estimate per window")
	assert.Equal(t, "# Algorithm used: spectral_peak", lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, "990.53", line)
	}
}

func TestRun_RepeatedRunsDoNotOverwrite(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "output")

	writeToneWAV(t, inputDir, "tone.wav", 440, 44100, 2048)
	settings := writeSettings(t, t.TempDir(), `{}`)

	require.NoError(t, run(settings, inputDir, outputDir, &fixedSelector{}))
	require.NoError(t, run(settings, inputDir, outputDir, &fixedSelector{}))

	assert.FileExists(t, filepath.Join(outputDir, "tone.txt"))
	assert.FileExists(t, filepath.Join(outputDir, "tone1.txt"))
}

func TestRun_UnknownAlgorithmFailsBeforeProcessing(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "output")

	writeToneWAV(t, inputDir, "tone.wav", 440, 44100, 2048)
	settings := writeSettings(t, t.TempDir(), `{"algorithm": "bogus"}`)

	err := run(settings, inputDir, outputDir, &fixedSelector{})

	var unknownErr *domfreq.UnknownAlgorithmError
	require.ErrorAs(t, err, &unknownErr)
	assert.NoDirExists(t, outputDir, "must fail before any output is produced")
}

func TestRun_MissingSettingsIsFatal(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "settings.json"), t.TempDir(), t.TempDir(), &fixedSelector{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_NoAudioFiles(t *testing.T) {
	settings := writeSettings(t, t.TempDir(), `{}`)

	err := run(settings, t.TempDir(), t.TempDir(), &fixedSelector{})
	require.ErrorContains(t, err, "no supported audio files")
}

func TestRun_UndecodableFileIsSkipped(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "output")

	writeToneWAV(t, inputDir, "good.wav", 440, 44100, 2048)
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad.wav"), []byte("not riff"), 0o644))
	settings := writeSettings(t, t.TempDir(), `{}`)

	selector := &fixedSelector{files: []string{
		filepath.Join(inputDir, "bad.wav"),
		filepath.Join(inputDir, "good.wav"),
	}}

	require.NoError(t, run(settings, inputDir, outputDir, selector))
	assert.FileExists(t, filepath.Join(outputDir, "good.txt"), "good file must still process")
	assert.NoFileExists(t, filepath.Join(outputDir, "bad.txt"))
}

func TestFindAudioFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.wav", "a.ogg", "notes.txt", "c.flac"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.wav"), 0o755))

	files, err := findAudioFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.ogg"),
		filepath.Join(dir, "b.wav"),
		filepath.Join(dir, "c.flac"),
	}, files)
}
