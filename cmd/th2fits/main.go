// Command th2fits converts a 2-D histogram stored in a ROOT file into a FITS
// image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/th2fits/internal/config"
	"github.com/banshee-data/th2fits/internal/converter"
	"github.com/banshee-data/th2fits/internal/histogram"
	"github.com/banshee-data/th2fits/internal/monitoring"
	"github.com/banshee-data/th2fits/internal/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `th2fits - convert a ROOT TH2 histogram into a FITS image

Usage: th2fits [options] <input-path> <object-name> <output-path>

Options:
  -h, --help          Show this help message
  -r, --reverse       Reverse the first-axis traversal direction (default: false)
  --no-wcs            Do not write WCS keywords
  --row-bound x|y     Outer loop bound policy (default: x)
  --atomic            Write via a temporary file and rename (default: true)
  --config FILE       JSON settings file; explicit flags override it
  --png FILE          Also write a PNG preview
  --html FILE         Also write an HTML preview
  -q, --quiet         Suppress diagnostic log lines
  --version           Print version and exit

Examples:
  th2fits run42.root hEtaPhi sky.fits
  th2fits -r --png sky.png run42.root hEtaPhi sky.fits
`

// options holds the parsed command line before it is merged with a config file.
type options struct {
	reverse  bool
	noWCS    bool
	rowBound string
	atomic   bool
	config   string
	png      string
	html     string
	quiet    bool
	version  bool

	// set records which flags were given explicitly, by canonical name.
	set map[string]bool

	input, object, output string
}

var errUsage = errors.New("usage error")

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("th2fits", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	fs.BoolVar(&opts.reverse, "reverse", false, "Reverse the first-axis traversal direction")
	fs.BoolVar(&opts.reverse, "r", false, "Shorthand for --reverse")
	fs.BoolVar(&opts.noWCS, "no-wcs", false, "Do not write WCS keywords")
	fs.StringVar(&opts.rowBound, "row-bound", histogram.RowBoundX.String(), "Outer loop bound policy (x or y)")
	fs.BoolVar(&opts.atomic, "atomic", true, "Write via a temporary file and rename")
	fs.StringVar(&opts.config, "config", "", "JSON settings file")
	fs.StringVar(&opts.png, "png", "", "PNG preview path")
	fs.StringVar(&opts.html, "html", "", "HTML preview path")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress diagnostic log lines")
	fs.BoolVar(&opts.quiet, "q", false, "Shorthand for --quiet")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	return fs
}

var shorthands = map[string]string{"r": "reverse", "q": "quiet"}

// parseArgs parses flags and exactly three positionals. Flags may appear
// between positionals.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}
	fs := newFlagSet(opts, stderr)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := shorthands[name]; ok {
			name = long
		}
		opts.set[name] = true
	})

	if opts.version {
		return opts, nil
	}
	if len(positional) != 3 {
		return nil, fmt.Errorf("%w: expected <input-path> <object-name> <output-path>, got %d argument(s)", errUsage, len(positional))
	}
	opts.input, opts.object, opts.output = positional[0], positional[1], positional[2]
	return opts, nil
}

// buildRequest merges the config file (if any) with explicit flags.
func buildRequest(opts *options) (converter.Request, error) {
	cfg := config.EmptyConfig()
	if opts.config != "" {
		loaded, err := config.LoadConfig(opts.config)
		if err != nil {
			return converter.Request{}, fmt.Errorf("%w: %w", errUsage, err)
		}
		cfg = loaded
	}

	if opts.set["reverse"] {
		cfg.Reverse = &opts.reverse
	}
	if opts.set["no-wcs"] {
		wcs := !opts.noWCS
		cfg.WCS = &wcs
	}
	if opts.set["row-bound"] {
		cfg.RowBound = &opts.rowBound
	}
	if opts.set["atomic"] {
		cfg.AtomicWrite = &opts.atomic
	}
	if opts.set["png"] {
		cfg.PreviewPNG = &opts.png
	}
	if opts.set["html"] {
		cfg.PreviewHTML = &opts.html
	}
	if err := cfg.Validate(); err != nil {
		return converter.Request{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	return converter.Request{
		InputPath:   opts.input,
		ObjectName:  opts.object,
		OutputPath:  opts.output,
		Reverse:     cfg.GetReverse(),
		WCS:         cfg.GetWCS(),
		RowBound:    cfg.GetRowBound(),
		AtomicWrite: cfg.GetAtomicWrite(),
		PreviewPNG:  cfg.GetPreviewPNG(),
		PreviewHTML: cfg.GetPreviewHTML(),
	}, nil
}

// run executes the command and returns the process exit code.
func run(args []string, conv *converter.Converter, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	req, err := buildRequest(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.quiet {
		monitoring.SetLogger(nil)
	}

	conv.Stdout = stdout
	if _, err := conv.Convert(req); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], converter.New(), os.Stdout, os.Stderr))
}
