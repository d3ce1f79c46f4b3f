package query

import (
	"bufio"
	"io"
	"net/http"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/bytespray/abrade"
)

// HeadAction is satisfied by anything that wants to observe the
// outcome of a HEAD request. Outcome.Body is always empty for a HEAD
// query.
type HeadAction interface {
	Process(outcome abrade.Outcome)
}

// HeadQuery issues a HEAD request and hands the status code to its
// action, discarding any body the server sends anyway.
type HeadQuery struct {
	writer     *RequestWriter
	action     HeadAction
	printFound bool
	verbose    bool
}

// NewHeadQuery returns a query writing through writer and reporting to
// action. When printFound is set, 2xx statuses are logged as found;
// when verbose is set, every status is logged.
func NewHeadQuery(writer *RequestWriter, action HeadAction, printFound, verbose bool) *HeadQuery {
	return &HeadQuery{writer: writer, action: action, printFound: printFound, verbose: verbose}
}

// Execute writes the HEAD request for candidate.URI over conn and reads
// back the response's status line and headers.
func (q *HeadQuery) Execute(conn io.ReadWriter, candidate abrade.Candidate) error {
	uri := candidate.URI
	if err := q.writer.MakeRequest(conn, MethodHead, uri); err != nil {
		return err
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), &http.Request{Method: http.MethodHead})
	if err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/query").Msgf("head query for %s", uri)
	}
	defer resp.Body.Close()

	q.action.Process(abrade.Outcome{StatusCode: resp.StatusCode, URI: uri})
	logOutcome(q.printFound, q.verbose, resp.StatusCode, uri)
	return nil
}

func logOutcome(printFound, verbose bool, statusCode int, uri string) {
	found := statusCode >= 200 && statusCode < 300
	switch {
	case printFound && found:
		gologger.Info().Msgf("Status of %s: %d", uri, statusCode)
	case verbose:
		gologger.Verbose().Msgf("Status of %s: %d", uri, statusCode)
	}
}
