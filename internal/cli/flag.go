package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/GeoffMall/toon/internal/version"
)

// ANSI color codes for ASCII art
const (
	cyan1 = "\x1b[38;5;51m" // bright cyan
	cyan2 = "\x1b[38;5;50m" // cyan
	cyan3 = "\x1b[38;5;45m" // aqua cyan
	aqua  = "\x1b[38;5;87m" // light aqua
	reset = "\x1b[0m"       // reset color
)

// Flags holds all parsed command-line arguments.
type Flags struct {
	InputFile  string // file to read from (optional; defaults to stdin)
	OutputFile string // file to write to (optional; defaults to stdout)

	FromFormat string // input format tag (if empty, auto-detected)
	ToFormat   string // output format tag (if empty, the shape analyzer's recommendation is used)

	IncludePath string // path expression for the include filter (empty means no include filter)

	MaxDepth    int // depth filter cap
	MaxDepthSet bool

	MaxItems        int // truncate filter's max array length
	MaxItemsSet     bool
	MaxStringLength int // truncate filter's max string length
	MaxStringLenSet bool
	Strategy        string   // head | tail | balanced | sample
	Preserve        []string // preserve paths for the truncate filter
	Seed            uint64   // sample strategy seed

	Strict bool // turn truncation-eligible events into errors instead of truncating

	Analyze     bool // run the analyze operation and print its report instead of converting
	DetectShape bool // run detect_shape and print only the classification

	Color   bool // colorize JSON output (ignored for other output formats)
	NoColor bool // disable colorized output

	ShowHelp    bool // show help and exit
	ShowVersion bool // show version and exit
}

// ParseFlags parses CLI flags and returns a populated Flags struct.
// It exits with a usage message if invalid flags are provided.
func ParseFlags() *Flags {
	f := &Flags{}

	var preserve multiStringFlag
	flag.Var(&preserve, "preserve", "Path exempt from truncation (same grammar as --include, can be used multiple times)")

	flag.StringVar(&f.InputFile, "in", "", "Path to input file (optional, defaults to stdin)")
	flag.StringVar(&f.OutputFile, "out", "", "Path to output file (optional, defaults to stdout)")

	flag.StringVar(&f.FromFormat, "from", "", "Input format: json | yaml | xml | csv | tsv | avro | parquet (if empty, auto-detected)")
	flag.StringVar(&f.ToFormat, "to", "", "Output format: json | yaml | csv | tsv | toon (if empty, uses the shape analyzer's recommendation)")

	flag.StringVar(&f.IncludePath, "include", "", "Select a sub-tree with a path expression, e.g. users[*].name")

	maxDepth := flag.Int("max-depth", -1, "Cap nesting depth; anything deeper is replaced by a summary string")

	maxItems := flag.Int("max-items", -1, "Cap array length")
	maxStringLength := flag.Int("max-string-length", -1, "Cap string length (Unicode scalars)")
	flag.StringVar(&f.Strategy, "strategy", "head", "Truncation strategy: head | tail | balanced | sample")
	flag.Uint64Var(&f.Seed, "seed", 0, "Seed for the sample truncation strategy")

	flag.BoolVar(&f.Strict, "strict", false, "Raise an error instead of truncating when a limit would otherwise be exceeded")

	flag.BoolVar(&f.Analyze, "analyze", false, "Print a per-encoder token estimate report instead of converting")
	flag.BoolVar(&f.DetectShape, "detect-shape", false, "Print only the shape classification")

	flag.BoolVar(&f.NoColor, "no-color", false, "Disable colorized output")

	flag.BoolVar(&f.ShowHelp, "help", false, "Show usage")
	flag.BoolVar(&f.ShowVersion, "version", false, "Show version information")

	flag.Usage = usage

	flag.Parse()

	// If help was requested, print and exit
	if f.ShowHelp {
		flag.Usage()
		os.Exit(0)
	}

	// If the version was requested, print and exit
	if f.ShowVersion {
		printVersion()
		os.Exit(0)
	}

	f.Preserve = preserve
	f.Color = !f.NoColor

	if *maxDepth >= 0 {
		f.MaxDepth = *maxDepth
		f.MaxDepthSet = true
	}
	if *maxItems >= 0 {
		f.MaxItems = *maxItems
		f.MaxItemsSet = true
	}
	if *maxStringLength >= 0 {
		f.MaxStringLength = *maxStringLength
		f.MaxStringLenSet = true
	}

	switch f.Strategy {
	case "head", "tail", "balanced", "sample":
	default:
		printLinef("Error: invalid value '%s' for --strategy. Supported values are head, tail, balanced, sample.\n", f.Strategy)
		flag.Usage()
		os.Exit(1)
	}

	return f
}

type multiStringFlag []string

func (m *multiStringFlag) String() string {
	return strings.Join(*m, ", ")
}

func (m *multiStringFlag) Set(value string) error {
	*m = append(*m, value)

	return nil
}

// asciiArt returns the colored ASCII art banner for "toon"
func asciiArt() string {
	art := cyan1 + "########  #######   #######  " + cyan2 + "###    ## " + reset + "\n"
	art += cyan1 + "   ##    ##     ## ##     ## " + cyan2 + "####   ## " + reset + "\n"
	art += cyan2 + "   ##    ##     ## ##     ## " + cyan3 + "## ##  ## " + reset + "\n"
	art += cyan2 + "   ##    ##     ## ##     ## " + cyan3 + "##  ## ## " + reset + "\n"
	art += cyan3 + "   ##     #######   #######  " + aqua + "##   #### " + reset + "\n"
	art += "\n" + aqua + "     ~fewer tokens, same data~" + reset + "\n\n"
	return art
}

func usage() {
	// Display ASCII art banner at the top
	printLinef("%s", asciiArt())
	printLinef("Usage: toon [flags]\n\n")
	printLinef("Examples:\n")
	printLinef("  cat data.json | toon --to toon                       # auto-recommends if --to is omitted\n")
	printLinef("  cat data.json | toon --include users[*].name --to json\n")
	printLinef("  toon --in data.yaml --max-depth 2 --to json\n")
	printLinef("  toon --in data.json --analyze\n")
	printLinef("\nFlags:\n")
	flag.PrintDefaults()
}

func printLinef(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, a...)
}

// printVersion prints the version information
func printVersion() {
	info := version.Get()
	fmt.Println(info.String())
}
