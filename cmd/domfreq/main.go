// Command domfreq estimates one dominant frequency per fixed-length window
// of each selected audio file and writes the per-window series as a text
// artifact in the output directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RyanBlaney/sonido-domfreq/config"
	"github.com/RyanBlaney/sonido-domfreq/decode"
	"github.com/RyanBlaney/sonido-domfreq/domfreq"
	"github.com/RyanBlaney/sonido-domfreq/logging"
	"github.com/RyanBlaney/sonido-domfreq/output"
)

func main() {
	settingsPath := flag.String("settings", "settings.json", "path to the settings file")
	inputDir := flag.String("dir", ".", "directory to scan for audio files")
	outputDir := flag.String("out", "output", "directory for result files")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logging.SetLevel(logging.DebugLevel)
	}

	selector := &ConsoleSelector{In: os.Stdin, Out: os.Stdout}
	if err := run(*settingsPath, *inputDir, *outputDir, selector); err != nil {
		logging.Fatal(err, "extraction failed")
	}
}

// run wires configuration, selection and per-file processing together.
// Configuration failures abort before any file is touched; a single file
// failing to decode is reported and skipped.
func run(settingsPath, inputDir, outputDir string, selector FileSelector) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}

	params, err := settings.Params()
	if err != nil {
		return err
	}

	extractor, err := domfreq.NewExtractor(params)
	if err != nil {
		return err
	}

	candidates, err := findAudioFiles(inputDir)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no supported audio files found in %s", inputDir)
	}

	var files []string
	if len(candidates) == 1 {
		logging.Info("one audio file found, processing automatically", logging.Fields{
			"file": candidates[0],
		})
		files = candidates
	} else {
		files, err = selector.Select(candidates)
		if err != nil {
			return err
		}
	}

	if err := output.EnsureDir(outputDir); err != nil {
		return err
	}

	for _, path := range files {
		if err := processFile(extractor, path, outputDir); err != nil {
			logging.Error(err, "skipping file", logging.Fields{"file": path})
		}
	}

	return nil
}

// findAudioFiles lists the decodable files directly inside dir, sorted by name
func findAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !decode.Supported(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

func processFile(extractor *domfreq.Extractor, path, outputDir string) error {
	data, err := decode.File(path)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	estimates := extractor.Extract(data.PCM, data.SampleRate)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath, err := output.WriteFrequencies(outputDir, base, extractor.Algorithm().String(), estimates)
	if err != nil {
		return err
	}

	logging.Info("file processed", logging.Fields{
		"file":      path,
		"output":    outPath,
		"algorithm": extractor.Algorithm().String(),
		"windows":   len(estimates),
	})

	return nil
}
