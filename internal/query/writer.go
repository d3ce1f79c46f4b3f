// Package query writes HTTP/1.1 requests onto an established
// connection.Stream and reads back the verb-appropriate response.
package query

import (
	"io"
	"net/http"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// RequestWriter holds the per-host fields common to every request it
// writes: Host and User-Agent headers, and whether to echo the
// outgoing request to the console.
type RequestWriter struct {
	hostName  string
	userAgent string
	verbose   bool
}

// NewRequestWriter returns a writer for requests addressed to hostName.
func NewRequestWriter(hostName, userAgent string, verbose bool) *RequestWriter {
	return &RequestWriter{hostName: hostName, userAgent: userAgent, verbose: verbose}
}

// Method identifies which HTTP verb a query issues.
type Method string

const (
	MethodHead Method = http.MethodHead
	MethodGet  Method = http.MethodGet
)

// MakeRequest builds the request for candidate.URI with the given
// method and writes it to w.
func (rw *RequestWriter) MakeRequest(w io.Writer, method Method, uri string) error {
	req, err := http.NewRequest(string(method), uri, nil)
	if err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/query").Msgf("build request for %s", uri)
	}
	req.Host = rw.hostName
	req.Header.Set("User-Agent", rw.userAgent)

	if rw.verbose {
		gologger.Verbose().Msgf("Payload for %s:\n%s %s HTTP/1.1", uri, method, uri)
	}

	if err := req.Write(w); err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/query").Msgf("write request for %s", uri)
	}
	return nil
}
