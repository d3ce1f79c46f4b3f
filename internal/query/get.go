package query

import (
	"bufio"
	"io"
	"net/http"

	errorutil "github.com/projectdiscovery/utils/errors"

	"github.com/bytespray/abrade"
)

// GetAction is satisfied by anything that wants to observe the
// outcome of a GET request, body included.
type GetAction interface {
	Process(outcome abrade.Outcome)
}

// GetQuery issues a GET request and hands the status code and body to
// its action.
type GetQuery struct {
	writer     *RequestWriter
	action     GetAction
	printFound bool
	verbose    bool
}

// NewGetQuery returns a query writing through writer and reporting to
// action.
func NewGetQuery(writer *RequestWriter, action GetAction, printFound, verbose bool) *GetQuery {
	return &GetQuery{writer: writer, action: action, printFound: printFound, verbose: verbose}
}

// Execute writes the GET request for candidate.URI over conn and reads
// back the full response, including body.
func (q *GetQuery) Execute(conn io.ReadWriter, candidate abrade.Candidate) error {
	uri := candidate.URI
	if err := q.writer.MakeRequest(conn, MethodGet, uri); err != nil {
		return err
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), &http.Request{Method: http.MethodGet})
	if err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/query").Msgf("get query for %s", uri)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorutil.NewWithErr(err).WithTag("abrade/query").Msgf("read body for %s", uri)
	}

	q.action.Process(abrade.Outcome{StatusCode: resp.StatusCode, URI: uri, Body: body})
	logOutcome(q.printFound, q.verbose, resp.StatusCode, uri)
	return nil
}
