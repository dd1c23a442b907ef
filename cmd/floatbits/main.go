// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command floatbits converts decimal numbers to binary floating-point bit patterns and back.
//
//	floatbits -preset binary32 0.1 -2.5e-3
//	floatbits -exp 4 -man 3 -bits '0 0111 000'
//	floatbits -interactive
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avdva/floatbits"
)

const defaultPreset = "binary32"

type options struct {
	preset      string
	exp, man    int
	presetsFile string
	output      string
	interactive bool
	bits        string
	hex         string
	info        bool
	logLevel    string
	args        []string
}

func parseOptions(args []string, errOut io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("floatbits", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.preset, "preset", defaultPreset, "Named format (binary16, bfloat16, binary32, binary64, binary128, or one from -presets)")
	fs.IntVar(&opts.exp, "exp", 0, "Exponent bits, overrides the preset")
	fs.IntVar(&opts.man, "man", 0, "Mantissa bits, overrides the preset")
	fs.StringVar(&opts.presetsFile, "presets", "", "Path to a TOML file with additional presets")
	fs.StringVar(&opts.output, "output", outputText, "Output format: text, json or cbor")
	fs.BoolVar(&opts.interactive, "interactive", false, "Read commands from stdin")
	fs.StringVar(&opts.bits, "bits", "", "Decode a bit pattern, spaces and underscores are ignored")
	fs.StringVar(&opts.hex, "hex", "", "Decode a hexadecimal bit pattern, like 0x3F800000")
	fs.BoolVar(&opts.info, "info", false, "Print the format characteristics")
	fs.StringVar(&opts.logLevel, "log-level", zerolog.LevelInfoValue, "Log level")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if _, ok := writers[opts.output]; !ok {
		return options{}, fmt.Errorf("unknown output format %q", opts.output)
	}
	opts.args = fs.Args()
	return opts, nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if err := run(opts, os.Stdin, os.Stdout, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("Failed")
	}
}

func run(opts options, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	registry, err := newRegistry(opts.presetsFile)
	if err != nil {
		return err
	}
	f, err := registry.resolve(opts.preset, opts.exp, opts.man)
	if err != nil {
		return err
	}
	logger.Debug().Stringer("format", f).Int("total_bits", f.TotalBits()).Msg("Using format")

	if opts.interactive {
		return newSession(f, registry, out, logger).run(in)
	}

	var reports []report
	switch {
	case len(opts.bits) > 0:
		b, err := floatbits.ParseBits(opts.bits, f)
		if err != nil {
			return err
		}
		reports = append(reports, newReport(opts.bits, b, f))
	case len(opts.hex) > 0:
		b, err := floatbits.ParseHex(opts.hex, f)
		if err != nil {
			return err
		}
		reports = append(reports, newReport(opts.hex, b, f))
	}
	for _, arg := range opts.args {
		b, err := floatbits.Encode(arg, f)
		if err != nil {
			logger.Warn().Err(err).Str("input", arg).Msg("Skipping invalid input")
			continue
		}
		reports = append(reports, newReport(arg, b, f))
	}
	w := writers[opts.output]
	if opts.info {
		if err := w.info(out, newInfoReport(f)); err != nil {
			return err
		}
	}
	if len(reports) == 0 {
		if !opts.info {
			logger.Info().Msg("Nothing to convert, pass decimal numbers as arguments or use -bits, -hex, -info, -interactive")
		}
		return nil
	}
	return w.reports(out, reports)
}
