package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoSelection reports that input ended before a valid choice was made
var ErrNoSelection = errors.New("no file selected")

// FileSelector chooses which of the candidate files to process. Injectable
// so the processing pipeline stays free of interactive I/O in tests.
type FileSelector interface {
	Select(candidates []string) ([]string, error)
}

// ConsoleSelector prompts the operator on the console: a number picks one
// file, "A" picks all of them. Invalid input re-prompts.
type ConsoleSelector struct {
	In  io.Reader
	Out io.Writer
}

func (s *ConsoleSelector) Select(candidates []string) ([]string, error) {
	fmt.Fprintln(s.Out, "Audio files found:")
	for i, name := range candidates {
		fmt.Fprintf(s.Out, "  [%d] %s\n", i, name)
	}
	fmt.Fprintln(s.Out, `Choose a file by number, or "A" to process all files.`)

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, "Your choice: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, ErrNoSelection
		}

		choice := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(choice, "a") {
			return candidates, nil
		}
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 0 && idx < len(candidates) {
			return []string{candidates[idx]}, nil
		}

		fmt.Fprintln(s.Out, `Invalid input. Enter a valid number or "A".`)
	}
}
