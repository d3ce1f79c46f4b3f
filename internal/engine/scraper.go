// Package engine runs the self-spawning task loop that drives a
// Generator against a Connection strategy and a Query, feeding results
// back to a Controller.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/projectdiscovery/gologger"

	"github.com/bytespray/abrade"
	"github.com/bytespray/abrade/internal/connection"
)

// Query is satisfied by both HeadQuery and GetQuery: write a request
// for candidate.URI over conn, read back the response, and report the
// outcome.
type Query interface {
	Execute(conn io.ReadWriter, candidate abrade.Candidate) error
}

// candidateSource serializes pulls from a Generator: tasks must each
// see a distinct candidate.
type candidateSource struct {
	mu  sync.Mutex
	gen *abrade.Generator
}

func (s *candidateSource) next() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Next()
}

// Scraper owns one run: a connection strategy pointed at a single
// target host, a query, and a controller that recommends a target
// concurrency. It has no pool — tasks spawn siblings and self-prune
// per the controller's recommendation.
type Scraper struct {
	host       string
	strategy   connection.Strategy
	query      Query
	controller abrade.Controller
	verbose    bool

	active atomic.Int32

	errMu  sync.Mutex
	errLog *os.File
}

// New returns a Scraper targeting host, writing failures to errorPath
// (created if absent, appended to if present).
func New(host string, strategy connection.Strategy, query Query, controller abrade.Controller, errorPath string, verbose bool) (*Scraper, error) {
	f, err := os.OpenFile(errorPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Scraper{
		host:       host,
		strategy:   strategy,
		query:      query,
		controller: controller,
		verbose:    verbose,
		errLog:     f,
	}, nil
}

// Close releases the error log file handle.
func (s *Scraper) Close() error {
	return s.errLog.Close()
}

// Run drives generator to exhaustion, blocking until every spawned
// task — including every self-spawned descendant — has exited.
func (s *Scraper) Run(ctx context.Context, generator *abrade.Generator) {
	src := &candidateSource{gen: generator}
	var wg sync.WaitGroup
	wg.Add(1)
	go s.task(ctx, src, &wg)
	wg.Wait()
}

func (s *Scraper) task(ctx context.Context, src *candidateSource, wg *sync.WaitGroup) {
	defer wg.Done()
	s.active.Add(1)
	defer s.active.Add(-1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		uri, ok := src.next()
		if !ok {
			return
		}

		if int(s.active.Load()) < s.controller.RecommendedConcurrency() {
			wg.Add(1)
			go s.task(ctx, src, wg)
		}

		if err := s.attempt(ctx, uri); err != nil {
			s.logFailure(uri, err)
		}

		s.controller.RegisterCompletion(int(s.active.Load()))
		if int(s.active.Load()) > s.controller.RecommendedConcurrency() {
			return
		}
	}
}

func (s *Scraper) attempt(ctx context.Context, uri string) error {
	stream, err := s.strategy.Connect(ctx, s.host)
	if err != nil {
		return err
	}
	defer stream.Close()

	return s.query.Execute(stream, abrade.Candidate{URI: uri})
}

func (s *Scraper) logFailure(uri string, err error) {
	s.errMu.Lock()
	fmt.Fprintf(s.errLog, "%s: %v\n", uri, err)
	s.errMu.Unlock()
	if s.verbose {
		gologger.Error().Msgf("Exception: %s: %v", uri, err)
	}
}
