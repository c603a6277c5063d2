package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/insomnimus/adoc/parser"
	"github.com/insomnimus/adoc/transpiler"
	"github.com/k0kubun/pp"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	standalone bool
	title      string
	escape     bool
	stripBOM   bool
	traceLevel string
	dumpAST    bool
	showStats  bool
)

var rootCmd = &cobra.Command{
	Use:   "adoc [input [output]]",
	Short: "Convert adoc markup to HTML",
	Long: `adoc converts paragraphs, horizontal rules, page breaks and inline
markup (bold, italic, mark, code, superscript, subscript) to HTML.

Input is read from stdin and output written to stdout unless files are given.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.BoolVar(&standalone, "standalone", false, "wrap the output in an HTML document")
	flags.StringVar(&title, "title", "", "document title in standalone mode")
	flags.BoolVar(&escape, "escape", false, "HTML-escape words")
	flags.BoolVar(&stripBOM, "strip-bom", false, "drop a leading byte order mark")
	flags.StringVar(&traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")
	flags.BoolVar(&dumpAST, "ast", false, "print the syntax tree instead of HTML")
	flags.BoolVar(&showStats, "stats", false, "print output statistics to stderr")
}

func run(cmd *cobra.Command, args []string) (err error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = setupTracing(conf.Trace); err != nil {
		return err
	}

	var (
		in  io.Reader = os.Stdin
		out io.Writer = os.Stdout
	)
	if len(args) > 0 {
		fi, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer fi.Close()
		in = fi
	}
	if len(args) > 1 {
		fo, ferr := os.Create(args[1])
		if ferr != nil {
			return errors.Wrap(ferr, "could not create output")
		}
		defer closeOutput(fo, &err)
		out = fo
	}

	if dumpAST {
		return printAST(transpiler.Source(in, conf), out)
	}
	stats, err := transpiler.ToHTML(in, out, conf)
	if err != nil {
		return err
	}
	if showStats {
		fmt.Fprintf(os.Stderr, "%d nodes, %s\n", stats.Nodes, humanize.Bytes(uint64(stats.Bytes)))
	}
	return nil
}

// closeOutput closes c and stores the failure in *err unless an earlier
// error is already there.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = errors.Wrap(cerr, "could not close output")
	}
}

// loadConfig reads the config file, if any, and applies the flags the user
// set on top of it.
func loadConfig(cmd *cobra.Command) (transpiler.Config, error) {
	conf := transpiler.Config{Trace: traceLevel}
	if cfgFile != "" {
		c, err := transpiler.LoadConfig(cfgFile)
		if err != nil {
			return conf, err
		}
		if c.Trace == "" {
			c.Trace = traceLevel
		}
		conf = c
	}
	flags := cmd.Flags()
	if flags.Changed("standalone") {
		conf.Standalone = standalone
	}
	if flags.Changed("title") {
		conf.Title = title
	}
	if flags.Changed("escape") {
		conf.EscapeText = escape
	}
	if flags.Changed("strip-bom") {
		conf.StripBOM = stripBOM
	}
	if flags.Changed("trace") {
		conf.Trace = traceLevel
	}
	return conf, nil
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.adoc.lexer":  level,
		"trace.adoc.parser": level,
		"trace.adoc.html":   level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return errors.Wrap(err, "could not configure tracing")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func printAST(in io.Reader, out io.Writer) error {
	pp.ColoringEnabled = false
	p := parser.FromReader(in)
	for {
		n, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if _, err = pp.Fprintln(out, n); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
}
