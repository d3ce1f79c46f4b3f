// Package action persists or prints the outcome of a query, matching
// the behavior for each verb: HeadAction appends found URIs to a
// single log file, GetAction writes each found body to its own file.
package action

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/bytespray/abrade"
)

// HeadAction appends every 2xx URI it sees to a single append-only
// log file, one per line.
type HeadAction struct {
	verbose bool

	mu     sync.Mutex
	file   *os.File
	writer *bufio.Writer
}

// NewHeadAction opens (creating parent directories as needed) path for
// appending.
func NewHeadAction(path string, verbose bool) (*HeadAction, error) {
	if dir := filepath.Dir(path); dir != "." {
		if !fileutil.FolderExists(dir) {
			if err := fileutil.CreateFolder(dir); err != nil {
				return nil, errorutil.NewWithErr(err).WithTag("abrade/action").Msgf("create folder %s", dir)
			}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errorutil.NewWithErr(err).WithTag("abrade/action").Msgf("open %s", path)
	}
	return &HeadAction{verbose: verbose, file: f, writer: bufio.NewWriter(f)}, nil
}

// Process records outcome.URI if its status is 2xx, and optionally
// echoes every outcome regardless of status.
func (a *HeadAction) Process(outcome abrade.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if outcome.StatusCode >= 200 && outcome.StatusCode < 300 {
		fmt.Fprintln(a.writer, outcome.URI)
		_ = a.writer.Flush()
	}
	if a.verbose {
		gologger.Verbose().Msgf("%s: %d", outcome.URI, outcome.StatusCode)
	}
}

// Close flushes and closes the underlying log file.
func (a *HeadAction) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.writer.Flush(); err != nil {
		return err
	}
	return a.file.Close()
}
