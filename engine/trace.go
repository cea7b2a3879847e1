package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Trace appends a plain-text record of the game to a file: the starting
// parameters, every judged move, and the board after each applied one.
// A nil Trace is valid and records nothing, so the controller never has
// to branch on whether tracing is enabled.
type Trace struct {
	f *os.File
}

// NewTrace creates the trace file in dir, named after the turn limit and
// the start time.
func NewTrace(dir string, maxTurns int) (*Trace, error) {
	name := fmt.Sprintf("gameTrace-%d-%s.txt", maxTurns, time.Now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	return &Trace{f: f}, nil
}

// Header records the game parameters at the top of the trace.
func (t *Trace) Header(dim, maxTurns int, mode string) {
	t.Printf("----------------\nGAME PARAMETERS:\nBoard dim: %d\nMax turns: %d\nPlay mode: %s\n----------------", dim, maxTurns, mode)
}

// Printf appends one record, terminated by a newline.
func (t *Trace) Printf(format string, args ...any) {
	if t == nil || t.f == nil {
		return
	}
	fmt.Fprintf(t.f, format+"\n", args...)
}

// Path returns the location of the trace file, "" for a nil trace.
func (t *Trace) Path() string {
	if t == nil || t.f == nil {
		return ""
	}
	return t.f.Name()
}

func (t *Trace) Close() error {
	if t == nil || t.f == nil {
		return nil
	}
	return t.f.Close()
}
