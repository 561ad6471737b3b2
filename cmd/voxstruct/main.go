package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/voxelbrain/goptions"

	"github.com/wayneeseguin/voxstruct/internal/config"
	"github.com/wayneeseguin/voxstruct/internal/utils/ansi"
	"github.com/wayneeseguin/voxstruct/log"
	"github.com/wayneeseguin/voxstruct/pkg/voxstruct"
)

// Version holds the current version of voxstruct.
var Version = "(development)"

var printfStdOut = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

var exit = func(code int) {
	os.Exit(code)
}

var usage = func() {
	goptions.PrintHelp()
	exit(1)
}

func ansiErrorf(format string, a ...interface{}) error {
	return ansi.Errorf(format, a...)
}

type ioOpts struct {
	Data   string `goptions:"--data, -d, description='Data file (default: stdin)'"`
	Spec   string `goptions:"--spec, -s, obligatory, description='Spec/query/template file'"`
	Extra  string `goptions:"--extra, -e, description='Extra data/command file merged alongside data'"`
	Format string `goptions:"--format, -f, description='Output format: yaml or json (default yaml)'"`
	Diff   string `goptions:"--diff, description='Compare the result against another YAML/JSON file'"`
	Help   bool   `goptions:"--help, -h"`
}

type mergeOpts struct {
	Files goptions.Remainder `goptions:"description='Files to merge, later files win'"`
	Help  bool               `goptions:"--help, -h"`
}

func main() {
	var options struct {
		Debug    bool      `goptions:"-D, --debug, description='Enable debugging'"`
		Trace    bool      `goptions:"-T, --trace, description='Enable trace mode debugging (very verbose)'"`
		Version  bool      `goptions:"-v, --version, description='Display version information'"`
		Color    string    `goptions:"--color, description='Control color output (on/off/auto, default: auto)'"`
		Action   goptions.Verbs
		Transform ioOpts    `goptions:"transform"`
		Validate  ioOpts    `goptions:"validate"`
		Select    ioOpts    `goptions:"select"`
		Merge     mergeOpts `goptions:"merge"`
	}
	if err := goptions.Parse(&options); err != nil {
		usage()
	}

	cfg, err := config.Load(os.Getenv("VOXSTRUCT_CONFIG"))
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}

	if os.Getenv("VOXSTRUCT_DEBUG") != "" || options.Debug || cfg.Debug {
		log.ToggleDebug(true)
	}
	if os.Getenv("VOXSTRUCT_TRACE") != "" || options.Trace || cfg.Trace {
		log.ToggleTraceMode(true)
	}

	if options.Version {
		printfStdOut("%s - Version %s\n", os.Args[0], Version)
		exit(0)
		return
	}

	shouldColor := cfg.ColorOutput
	switch options.Color {
	case "on":
		shouldColor = true
	case "off":
		shouldColor = false
	case "auto", "":
		shouldColor = shouldColor && isatty.IsTerminal(os.Stderr.Fd())
	default:
		log.PrintfStdErr("Invalid --color option: %s. Must be 'on', 'off', or 'auto'.\n", options.Color)
		exit(1)
		return
	}
	ansi.Color(shouldColor)

	if options.Action == "" {
		options.Action = goptions.Verbs(cfg.DefaultCommand)
	}

	switch options.Action {
	case "transform":
		runTransform(options.Transform, cfg)
	case "validate":
		runValidate(options.Validate, cfg)
	case "select":
		runSelect(options.Select, cfg)
	case "merge":
		runMerge(options.Merge, cfg)
	default:
		usage()
		return
	}
	exit(0)
}

func loadExtra(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := readInput(path)
	if err != nil {
		return nil, err
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ansiErrorf("@R{Extra file} @m{%s} @R{must be a map}", path)
	}
	return m, nil
}

func outputFormat(opts ioOpts, cfg *config.Config) string {
	if opts.Format != "" {
		return opts.Format
	}
	return cfg.OutputFormat
}

func emit(result interface{}, opts ioOpts, cfg *config.Config) {
	if opts.Diff != "" {
		report, differs, err := diffAgainst(result, opts.Diff)
		if err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
		printfStdOut("%s", report)
		if differs {
			exit(1)
		}
		return
	}
	if err := writeOutput(result, outputFormat(opts, cfg), cfg.IndentWidth); err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
	}
}

func runTransform(opts ioOpts, cfg *config.Config) {
	data, err := readInput(opts.Data)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}
	spec, err := readInput(opts.Spec)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}
	extra, err := loadExtra(opts.Extra)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}

	result := voxstruct.Transform(data, spec, extra)
	emit(result, opts, cfg)
}

func runValidate(opts ioOpts, cfg *config.Config) {
	data, err := readInput(opts.Data)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}
	spec, err := readInput(opts.Spec)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}
	extra, err := loadExtra(opts.Extra)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}

	result, verr := voxstruct.Validate(data, spec, nil, extra)
	if verr != nil {
		log.PrintfStdErr("%s\n", verr.Error())
		emit(result, opts, cfg)
		exit(1)
		return
	}
	emit(result, opts, cfg)
}

func runSelect(opts ioOpts, cfg *config.Config) {
	children, err := readInput(opts.Data)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}
	query, err := readInput(opts.Spec)
	if err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
		return
	}

	result := voxstruct.Select(children, query)
	emit(result, opts, cfg)
}

func runMerge(opts mergeOpts, cfg *config.Config) {
	if len(opts.Files) == 0 {
		opts.Files = append(opts.Files, "-")
	}

	vals := make([]interface{}, 0, len(opts.Files))
	for _, f := range opts.Files {
		v, err := readInput(f)
		if err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
		vals = append(vals, v)
	}

	result := voxstruct.Merge(vals...)
	if err := writeOutput(result, cfg.OutputFormat, cfg.IndentWidth); err != nil {
		log.PrintfStdErr("%s\n", err.Error())
		exit(2)
	}
}
