// Package runlog appends one line per run to a flat log file: a
// success timestamp or the error text of a failed run. No rotation,
// no structure; the file is the finance team's record of whether the
// morning report went out.
package runlog

import (
	"fmt"
	"os"
	"time"
)

type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Success appends a timestamped success line.
func (l *Log) Success(t time.Time) error {
	return l.append(fmt.Sprintf("Successful run: %s\n", t.Format(time.DateTime)))
}

// Failure appends the error text of a failed run.
func (l *Log) Failure(runErr error) error {
	return l.append(fmt.Sprintf("%v\n", runErr))
}

func (l *Log) append(line string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append to run log: %w", err)
	}
	return nil
}
