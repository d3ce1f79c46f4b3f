package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/projectdiscovery/gologger"

	"github.com/bytespray/abrade"
	"github.com/bytespray/abrade/internal/action"
	"github.com/bytespray/abrade/internal/connection"
	"github.com/bytespray/abrade/internal/engine"
	"github.com/bytespray/abrade/internal/query"
	"github.com/bytespray/abrade/internal/runner"
)

func main() {
	opts := runner.ParseFlags()
	gologger.Info().Msgf("%s", opts.Summary())

	generator, err := abrade.NewGenerator(opts.Pattern, opts.LeadingZeros, opts.Telescoping)
	if err != nil {
		gologger.Fatal().Msgf("abrade: %v", err)
	}

	if size, err := generator.Size(); err == nil {
		gologger.Info().Msgf("URL generation set cardinality is %d", size)
	} else if abrade.IsOverflow(err) {
		gologger.Info().Msgf("URL generation set log cardinality is %f", generator.LogSize())
	} else {
		gologger.Fatal().Msgf("abrade: %v", err)
	}

	if opts.DryRun {
		runDryRun(opts, generator)
		return
	}

	strategy := buildStrategy(opts)

	var q engine.Query
	if opts.Contents {
		getAction, err := action.NewGetAction(opts.Output, "", opts.Verbose)
		if err != nil {
			gologger.Fatal().Msgf("abrade: %v", err)
		}
		writer := query.NewRequestWriter(opts.Host, opts.UserAgent, opts.Verbose)
		q = query.NewGetQuery(writer, getAction, opts.PrintFound, opts.Verbose)
	} else {
		headAction, err := action.NewHeadAction(opts.Output, opts.Verbose)
		if err != nil {
			gologger.Fatal().Msgf("abrade: %v", err)
		}
		defer headAction.Close()
		writer := query.NewRequestWriter(opts.Host, opts.UserAgent, opts.Verbose)
		q = query.NewHeadQuery(writer, headAction, opts.PrintFound, opts.Verbose)
	}

	controller := buildController(opts)

	scraper, err := engine.New(opts.Host, strategy, q, controller, opts.ErrorLog, opts.Verbose)
	if err != nil {
		gologger.Fatal().Msgf("abrade: %v", err)
	}
	defer scraper.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scraper.Run(ctx, generator)
}

func buildStrategy(opts *runner.Options) connection.Strategy {
	switch {
	case opts.TLS && opts.Proxy != "":
		return connection.NewSocks5TLS(opts.Proxy, opts.Verify, opts.Sensitive)
	case opts.TLS:
		return connection.NewTLS(opts.Verify, opts.Sensitive)
	case opts.Proxy != "":
		return connection.NewSocks5(opts.Proxy, opts.Sensitive)
	default:
		return connection.NewPlaintext(opts.Sensitive)
	}
}

func buildController(opts *runner.Options) abrade.Controller {
	if opts.Optimize {
		return abrade.NewAdaptiveController(opts.InitialConcurrency, opts.SampleSize, opts.SampleInterval, opts.MinConcurrency, opts.MaxConcurrency)
	}
	return abrade.NewFixedController(opts.InitialConcurrency, opts.SampleInterval)
}

func runDryRun(opts *runner.Options, generator *abrade.Generator) {
	gologger.Info().Msgf("TEST: writing URIs to console")
	prefix := "http://"
	if opts.TLS {
		prefix = "https://"
	}
	for {
		uri, ok := generator.Next()
		if !ok {
			break
		}
		fmt.Printf("%s%s%s\n", prefix, opts.Host, uri)
	}
}
