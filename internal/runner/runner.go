package runner

import (
	"fmt"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	updateutils "github.com/projectdiscovery/utils/update"

	"github.com/bytespray/abrade"
)

// Options holds every resolved CLI flag. The target host and the URI
// template come from the --host and --pattern flags; positional
// arguments are not read.
type Options struct {
	Host    string
	Pattern string

	UserAgent string
	Output    string
	ErrorLog  string

	Proxy     string
	TLS       bool
	Sensitive bool
	Tor       bool
	Verify    bool

	LeadingZeros bool
	Telescoping  bool

	PrintFound bool
	Verbose    bool
	Contents   bool
	DryRun     bool

	Optimize           bool
	InitialConcurrency int
	MinConcurrency     int
	MaxConcurrency     int
	SampleSize         int
	SampleInterval     int

	Config             string
	DisableUpdateCheck bool
}

// ParseFlags parses os.Args into Options, exiting the process on a
// configuration error.
func ParseFlags() *Options {
	opts := &Options{
		UserAgent:          defaultConfig.UserAgent,
		InitialConcurrency: defaultConfig.InitialConcurrency,
		MinConcurrency:     defaultConfig.MinConcurrency,
		MaxConcurrency:     defaultConfig.MaxConcurrency,
		SampleSize:         defaultConfig.SampleSize,
		SampleInterval:     defaultConfig.SampleInterval,
	}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`High-throughput HTTP resource discovery over a digit-range URI template.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVar(&opts.Host, "host", "", "target host name"),
		flagSet.StringVar(&opts.Pattern, "pattern", abrade.DefaultPattern, "URI template"),
		flagSet.StringVar(&opts.UserAgent, "agent", opts.UserAgent, "User-Agent header"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVar(&opts.Output, "out", "", "output file (HEAD mode) or directory (GET mode) (default '<host>' or '<host>-contents')"),
		flagSet.StringVar(&opts.ErrorLog, "err", "", "error log file (default '<host>-err.log')"),
		flagSet.BoolVarP(&opts.PrintFound, "found", "f", false, "print 2xx URIs"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging (implies -f)"),
		flagSet.BoolVarP(&opts.Contents, "contents", "c", false, "GET mode, saving response bodies (default HEAD mode)"),
	)

	flagSet.CreateGroup("network", "Network",
		flagSet.StringVar(&opts.Proxy, "proxy", "", "SOCKS5 proxy, host:port"),
		flagSet.BoolVarP(&opts.TLS, "tls", "t", false, "use TLS"),
		flagSet.BoolVarP(&opts.Sensitive, "sensitive", "s", false, "fail on non-EOF teardown error"),
		flagSet.BoolVarP(&opts.Tor, "tor", "o", false, "shortcut: proxy 127.0.0.1:9050"),
		flagSet.BoolVarP(&opts.Verify, "verify", "r", false, "verify TLS peer certificate (implies --tls)"),
	)

	flagSet.CreateGroup("generation", "Generation",
		flagSet.BoolVarP(&opts.LeadingZeros, "leadzero", "l", false, "keep leading zeros in implicit ranges"),
		flagSet.BoolVarP(&opts.Telescoping, "telescoping", "e", false, "enable telescoping ranges"),
		flagSet.BoolVar(&opts.DryRun, "test", false, "print candidate URIs only, no network traffic"),
	)

	flagSet.CreateGroup("concurrency", "Concurrency",
		flagSet.BoolVarP(&opts.Optimize, "optimize", "p", false, "use the adaptive controller instead of a fixed one"),
		flagSet.IntVarP(&opts.InitialConcurrency, "init", "i", opts.InitialConcurrency, "initial concurrency"),
		flagSet.IntVar(&opts.MinConcurrency, "min", opts.MinConcurrency, "adaptive lower bound"),
		flagSet.IntVar(&opts.MaxConcurrency, "max", opts.MaxConcurrency, "adaptive upper bound"),
		flagSet.IntVar(&opts.SampleSize, "ssize", opts.SampleSize, "adaptive sample window size"),
		flagSet.IntVar(&opts.SampleInterval, "sint", opts.SampleInterval, "completions per sample"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `abrade cli config file (default '$HOME/.config/abrade/config.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update abrade to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
		opts.PrintFound = true
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("abrade")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("abrade version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current abrade version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.Host == "" {
		gologger.Fatal().Msgf("abrade: no target host given")
	}
	if opts.Pattern == "" {
		opts.Pattern = abrade.DefaultPattern
	}
	if opts.Verify {
		opts.TLS = true
	}
	if opts.Tor {
		opts.Proxy = "127.0.0.1:9050"
	}
	if opts.Output == "" {
		if opts.Contents {
			opts.Output = fmt.Sprintf("%s-contents", opts.Host)
		} else {
			opts.Output = opts.Host
		}
	}
	if opts.ErrorLog == "" {
		opts.ErrorLog = fmt.Sprintf("%s-err.log", opts.Host)
	}
	for _, bound := range []struct {
		name string
		val  int
	}{
		{"init", opts.InitialConcurrency},
		{"min", opts.MinConcurrency},
		{"max", opts.MaxConcurrency},
		{"ssize", opts.SampleSize},
		{"sint", opts.SampleInterval},
	} {
		if bound.val < 1 {
			gologger.Fatal().Msgf("abrade: --%s must be >= 1, got %d", bound.name, bound.val)
		}
	}

	return opts
}

// Summary renders the resolved configuration for a startup banner, the
// Go equivalent of the original's pretty-printed option dump.
func (o *Options) Summary() string {
	mode := "HEAD"
	if o.Contents {
		mode = "GET"
	}
	scheme := "plaintext"
	switch {
	case o.Proxy != "" && o.TLS:
		scheme = fmt.Sprintf("SOCKS5(%s)+TLS", o.Proxy)
	case o.Proxy != "":
		scheme = fmt.Sprintf("SOCKS5(%s)", o.Proxy)
	case o.TLS:
		scheme = "TLS"
	}
	controller := "fixed"
	if o.Optimize {
		controller = "adaptive"
	}
	return fmt.Sprintf(
		"host=%s pattern=%q mode=%s connection=%s controller=%s out=%s err=%s",
		o.Host, o.Pattern, mode, scheme, controller, o.Output, o.ErrorLog,
	)
}
