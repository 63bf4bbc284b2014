package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tetratelabs/wasmread/wasm/binary"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func main() {
	doMain(os.Stdout, os.Stderr, os.Exit)
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut io.Writer, stdErr io.Writer, exit func(code int)) {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "print usage")

	var interactive bool
	flag.BoolVar(&interactive, "i", false, "browse the sections interactively")

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "log decoding to stderr")

	var output string
	flag.StringVar(&output, "o", outputText, "output format: text or yaml")

	var color string
	flag.StringVar(&color, "color", colorAuto, "colorize text output: auto, always or never")

	flag.Parse()

	if help {
		printUsage(stdErr)
		exit(0)
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(stdErr, "missing path to wasm file")
		printUsage(stdErr)
		exit(1)
	}

	if output != outputText && output != outputYAML {
		fmt.Fprintf(stdErr, "invalid output format: %s\n", output)
		printUsage(stdErr)
		exit(1)
	}

	if color != colorAuto && color != colorAlways && color != colorNever {
		fmt.Fprintf(stdErr, "invalid color mode: %s\n", color)
		printUsage(stdErr)
		exit(1)
	}

	if verbose {
		binary.SetLogger(newLogger(stdErr))
		defer binary.SetLogger(nil)
	}

	wasmPath := flag.Arg(0)
	buf, release, err := loadFile(wasmPath)
	if err != nil {
		fmt.Fprintf(stdErr, "error reading wasm binary: %v\n", err)
		exit(1)
	}
	defer func() { _ = release() }()

	m, err := describeModule(buf)
	if err != nil {
		fmt.Fprintf(stdErr, "error decoding wasm binary: %v\n", err)
		exit(1)
	}

	switch {
	case interactive:
		err = runInteractive(stdOut, wasmPath, m, newStyles(newRenderer(stdOut, color)))
	case output == outputYAML:
		err = printYAML(stdOut, m)
	default:
		printText(stdOut, newStyles(newRenderer(stdOut, color)), m)
	}
	if err != nil {
		fmt.Fprintf(stdErr, "error printing wasm binary: %v\n", err)
		exit(1)
	}

	if m.failed() {
		exit(1)
	}
	exit(0)
}

// newLogger returns a development logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "wasmprint CLI")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Usage:\n  wasmprint <options> <path to wasm file>")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Options:")
	flag.PrintDefaults()
}
