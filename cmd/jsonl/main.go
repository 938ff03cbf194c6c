package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	jsonlineage "github.com/Salaah01/json-lineage"
	"github.com/alecthomas/kong"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var version = "dev"

// CLI declares the command line arguments.
var CLI struct {
	Filepath   string           `kong:"arg,help='Path to the JSON file to read.'"`
	Messy      bool             `kong:"short='m',help='Indicates that the JSON file may not be well formatted, e.g. it may contain multiple objects on a single line. Considerably slower than the default mode.'"`
	OutputFile string           `kong:"short='o',placeholder='FILE',help='Path to the output file (stdout if omitted).'"`
	Colors     bool             `kong:"help='Force using colors.'"`
	NoColors   bool             `kong:"help='Disable colors.'"`
	Version    kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
}

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	kong.Parse(&CLI,
		kong.Name("jsonl"),
		kong.Description("Read and convert JSON to JSONL (JSON Lines) format."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)

	// Open the input file
	input, err := os.Open(CLI.Filepath)
	if err != nil {
		fatalError("error opening %q: %s", CLI.Filepath, err)
	}
	defer input.Close()

	onTerminal := isatty.IsTerminal(os.Stdout.Fd()) && CLI.OutputFile == ""

	var colorizer *jsonlineage.Colorizer
	if onTerminal {
		colorizer = &defaultColorizer
	}
	if CLI.Colors {
		colorizer = &defaultColorizer
	}
	if CLI.NoColors {
		colorizer = nil
	}

	// Set up the output, handling colors for stdout
	var output io.Writer = os.Stdout
	if CLI.OutputFile != "" {
		outputFile, err := os.Create(CLI.OutputFile)
		if err != nil {
			fatalError("error creating %q: %s", CLI.OutputFile, err)
		}
		defer outputFile.Close()
		output = outputFile
	} else if colorizer != nil {
		output = colorable.NewColorableStdout()
	}

	// Start splitting the input file
	var splitErr error
	source := jsonlineage.NewSource(input, jsonlineage.Options{Messy: CLI.Messy})
	stream := jsonlineage.StartStream(source, func(err error) {
		splitErr = err
	})

	// Write the element stream to the output
	out := bufio.NewWriter(output)
	defer out.Flush()

	printer := &jsonlineage.LinePrinter{Writer: out}

	// If we are writing to a terminal, flush after each line so user gets feedback early.
	if onTerminal {
		printer.Flusher = out
	}

	encoder := &jsonlineage.JSONLEncoder{Printer: printer, Colorizer: colorizer}

	err = jsonlineage.ConsumeStream(stream, encoder)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return
		}
		fatalError("error: %s", err)
	}
	if splitErr != nil {
		out.Flush()
		fatalError("error: %s", splitErr)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset      = []byte("\033[0m")
	Green      = []byte("\033[32m")
	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = jsonlineage.Colorizer{
	KeyColorCode:    BrightBlue,
	StringColorCode: Green,
	ResetCode:       Reset,
}
