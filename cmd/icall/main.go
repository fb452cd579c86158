package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zegl/icall/cmd/icall/emit"
	"github.com/zegl/icall/compiler"
	"github.com/zegl/icall/fixture"
)

const (
	exitPass  = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("icall", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: icall [flags]")
		flags.PrintDefaults()
	}

	debug := flags.Bool("debug", false, "Enable debug logging")
	emitIR := flags.String("emit-ir", "", "Write the fixture as LLVM IR to this path (- for stdout) instead of running it")
	target := flags.String("target", compiler.HostTriple(), "Target triple used by --emit-ir")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitPass
		}
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return exitUsage
	}

	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		flags.Usage()
		return exitUsage
	}

	logger := newLogger(stderr, *debug)
	defer func() {
		_ = logger.Sync()
	}()

	if *emitIR != "" {
		var err error
		if *emitIR == "-" {
			err = emit.Write(stdout, *target, logger)
		} else {
			err = emit.WriteFile(*emitIR, *target, logger)
		}
		if err != nil {
			logger.Error("Failed to emit IR", zap.Error(err))
			return exitFail
		}
		return exitPass
	}

	r := fixture.Run()

	logger.Debug("Fixture finished",
		zap.Int("first", r.First),
		zap.Int("second", r.Second),
		zap.Int("total", r.Total),
		zap.Bool("passed", r.Passed()))

	return r.ExitCode()
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
