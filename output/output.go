// Package output writes per-window frequency series as text artifacts,
// choosing collision-free file names so repeated runs never overwrite
// earlier results.
package output

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// nameMu serializes the collision-counter walk so concurrent runs cannot
// claim the same output name
var nameMu sync.Mutex

// EnsureDir creates the output directory if it does not exist
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// WriteFrequencies writes one line per estimate, formatted to two decimal
// places in window order, preceded by a comment naming the algorithm that
// produced them. The artifact is named <base>.txt, falling back to
// <base>1.txt, <base>2.txt, ... when earlier runs already claimed a name.
// Returns the path actually written.
func WriteFrequencies(dir, base, algorithm string, estimates []float64) (string, error) {
	nameMu.Lock()
	defer nameMu.Unlock()

	var f *os.File
	var path string
	for n := 0; ; n++ {
		if n == 0 {
			path = filepath.Join(dir, base+".txt")
		} else {
			path = filepath.Join(dir, fmt.Sprintf("%s%d.txt", base, n))
		}

		var err error
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("creating output file: %w", err)
		}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Algorithm used: %s\n", algorithm)
	for _, estimate := range estimates {
		fmt.Fprintf(w, "%.2f\n", estimate)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
