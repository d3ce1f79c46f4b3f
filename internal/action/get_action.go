package action

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/bytespray/abrade"
)

var sanitizeFilename = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// GetAction writes the body of every found response to its own file
// under dir, named after the sanitized candidate URI. When screen is
// non-empty, a body containing it is skipped instead of written —
// useful for suppressing a site's default "not found" page that still
// answers with a 2xx status.
type GetAction struct {
	dir     string
	screen  string
	verbose bool
}

// NewGetAction creates dir (and parents) if needed and returns an
// action writing found bodies there.
func NewGetAction(dir, screen string, verbose bool) (*GetAction, error) {
	if !fileutil.FolderExists(dir) {
		if err := fileutil.CreateFolder(dir); err != nil {
			return nil, errorutil.NewWithErr(err).WithTag("abrade/action").Msgf("create folder %s", dir)
		}
	}
	return &GetAction{dir: dir, screen: screen, verbose: verbose}, nil
}

// Process writes the outcome's body to disk when its status is 2xx, or
// unconditionally (plus an echo to the console) when verbose is set.
func (a *GetAction) Process(outcome abrade.Outcome) {
	found := outcome.StatusCode >= 200 && outcome.StatusCode < 300
	switch {
	case a.verbose:
		gologger.Verbose().Msgf("Response from %s:\n%s", outcome.URI, outcome.Body)
		a.writeOut(outcome.Body, outcome.URI)
	case found:
		a.writeOut(outcome.Body, outcome.URI)
	}
}

func (a *GetAction) writeOut(body []byte, uri string) {
	contents := append(append([]byte{}, body...), '\n')
	if a.screen != "" && bytes.Contains(contents, []byte(a.screen)) {
		return
	}
	name := sanitizeFilename.ReplaceAllString(uri, "_")
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, contents, 0644); err != nil {
		gologger.Warning().Msgf("failed to write %s: %v", path, err)
	}
}
