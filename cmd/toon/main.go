// Command toon converts JSON/YAML/XML/CSV/TSV/Avro/Parquet into a
// compact, LLM-friendly encoding (by default the one the shape analyzer
// recommends, or toon/json/yaml/csv/tsv on request), optionally filtering
// the data on the way through.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GeoffMall/toon/internal/cli"
	"github.com/GeoffMall/toon/internal/filter"
	"github.com/GeoffMall/toon/internal/pipeline"
)

func main() {
	f := cli.ParseFlags()

	in, inClose, err := openInput(f.InputFile)
	if err != nil {
		fatalf("Error opening input: %v\n", err)
	}
	defer inClose()

	out, outClose, err := openOutput(f.OutputFile)
	if err != nil {
		fatalf("Error opening output: %v\n", err)
	}
	defer outClose()

	data, err := io.ReadAll(in)
	if err != nil {
		fatalf("Error reading input: %v\n", err)
	}

	if err := run(data, out, f); err != nil {
		fatalf("Processing error: %v\n", err)
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	// #nosec G304 - CLI tool trusts user-provided file paths
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	// #nosec G304 - CLI tool trusts user-provided file paths
	f, err := os.Create(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { _ = f.Close() }, nil
}

// run dispatches to one of the three top-level operations based on
// which mode flags were passed, and writes the result to out.
func run(data []byte, out io.Writer, opts *cli.Flags) error {
	switch {
	case opts.DetectShape:
		return runDetectShape(data, out, opts)
	case opts.Analyze:
		return runAnalyze(data, out, opts)
	default:
		return runConvert(data, out, opts)
	}
}

func runConvert(data []byte, out io.Writer, opts *cli.Flags) error {
	filters, err := buildFilterSpecs(opts)
	if err != nil {
		return err
	}

	text, err := pipeline.Convert(data, pipeline.ConvertOptions{
		InputFormat:  opts.FromFormat,
		Filename:     opts.InputFile,
		OutputFormat: opts.ToFormat,
		Filters:      filters,
		Strict:       opts.Strict,
	})
	if err != nil {
		return err
	}

	return writeText(out, text, outputIsJSON(opts), opts.Color)
}

func runAnalyze(data []byte, out io.Writer, opts *cli.Flags) error {
	report, err := pipeline.Analyze(data, opts.FromFormat, opts.InputFile)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis report: %w", err)
	}
	return writeText(out, string(b), true, opts.Color)
}

func runDetectShape(data []byte, out io.Writer, opts *cli.Flags) error {
	tag, err := pipeline.DetectShape(data, opts.FromFormat, opts.InputFile)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, tag.String())
	return err
}

// outputIsJSON reports whether the chosen (or recommended, once known)
// output format is JSON, the only format colorization supports.
func outputIsJSON(opts *cli.Flags) bool {
	return opts.ToFormat == "" || opts.ToFormat == "json"
}

func writeText(out io.Writer, text string, isJSON bool, color bool) error {
	if isJSON && color {
		_, err := out.Write(cli.ColorizeJSON([]byte(text)))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

// buildFilterSpecs translates the flat CLI flags into the ordered
// FilterSpec list convert() expects: include first (it shrinks the tree
// before anything else has to walk it), then max-depth, then truncate.
func buildFilterSpecs(opts *cli.Flags) ([]pipeline.FilterSpec, error) {
	var specs []pipeline.FilterSpec

	if opts.IncludePath != "" {
		specs = append(specs, pipeline.FilterSpec{Include: &pipeline.IncludeSpec{Path: opts.IncludePath}})
	}

	if opts.MaxDepthSet {
		specs = append(specs, pipeline.FilterSpec{MaxDepth: &pipeline.MaxDepthSpec{Depth: opts.MaxDepth}})
	}

	if opts.MaxItemsSet || opts.MaxStringLenSet || len(opts.Preserve) > 0 {
		t := &pipeline.TruncateSpec{
			Strategy: filter.Strategy(opts.Strategy),
			Preserve: opts.Preserve,
			Seed:     opts.Seed,
			Strict:   opts.Strict,
		}
		if opts.MaxItemsSet {
			maxItems := opts.MaxItems
			t.MaxItems = &maxItems
		}
		if opts.MaxStringLenSet {
			maxLen := opts.MaxStringLength
			t.MaxStringLength = &maxLen
		}
		specs = append(specs, pipeline.FilterSpec{Truncate: t})
	}

	return specs, nil
}

func fatalf(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}
