// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/avdva/floatbits"
)

const replHelp = `commands:
  format E M    switch to a format with E exponent and M mantissa bits, resets the bits
  preset NAME   switch to a named format, resets the bits
  enc TEXT      encode a decimal number, inf or nan
  toggle I      flip bit I, 0 is the sign bit
  set I 0|1     set bits from I to the end
  all 0|1       set all bits
  invert        flip all bits
  bits PATTERN  load a bit pattern, or a hex value with the 0x prefix
  show          print the current value
  info          print the format characteristics
  presets       list known presets
  quit          exit`

var errQuit = errors.New("quit")

// session is an interactive editor of a single bit pattern.
type session struct {
	format   floatbits.Format
	bits     floatbits.Bits
	registry *registry
	out      io.Writer
	logger   zerolog.Logger
}

func newSession(f floatbits.Format, r *registry, out io.Writer, logger zerolog.Logger) *session {
	return &session{
		format:   f,
		bits:     floatbits.ZeroBits(f),
		registry: r,
		out:      out,
		logger:   logger,
	}
}

func (s *session) run(in io.Reader) error {
	fmt.Fprintln(s.out, replHelp)
	s.show()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		err := s.exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.logger.Warn().Err(err).Str("command", line).Msg("Command failed")
		}
	}
	return scanner.Err()
}

// exec runs a single command. The bits are changed only if the command succeeds.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprintln(s.out, replHelp)
		return nil
	case "show":
	case "info":
		return writeTextInfo(s.out, newInfoReport(s.format))
	case "presets":
		for _, p := range s.registry.presets {
			fmt.Fprintf(s.out, "%-12s %s\n", p.Name, p.Format)
		}
		return nil
	case "format":
		ints, err := intArgs(args, 2)
		if err != nil {
			return err
		}
		f, b, err := floatbits.Configure(ints[0], ints[1])
		if err != nil {
			return err
		}
		s.format, s.bits = f, b
	case "preset":
		if len(args) != 1 {
			return fmt.Errorf("want a preset name, known presets: %s", strings.Join(s.registry.names(), ", "))
		}
		f, ok := s.registry.lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown preset %q", args[0])
		}
		s.format, s.bits = f, floatbits.ZeroBits(f)
	case "enc", "encode":
		if len(args) == 0 {
			return errors.New("want a decimal number")
		}
		b, err := floatbits.Encode(strings.Join(args, ""), s.format)
		if err != nil {
			return err
		}
		s.bits = b
	case "toggle", "t":
		ints, err := intArgs(args, 1)
		if err != nil {
			return err
		}
		if err := s.checkIndex(ints[0]); err != nil {
			return err
		}
		s.bits = s.bits.Toggle(ints[0])
	case "set":
		if len(args) != 2 {
			return errors.New("want an index and a bit value")
		}
		ints, err := intArgs(args[:1], 1)
		if err != nil {
			return err
		}
		v, err := bitArg(args[1])
		if err != nil {
			return err
		}
		if err := s.checkIndex(ints[0]); err != nil {
			return err
		}
		s.bits = s.bits.SetFrom(ints[0], v)
	case "all":
		if len(args) != 1 {
			return errors.New("want a bit value")
		}
		v, err := bitArg(args[0])
		if err != nil {
			return err
		}
		s.bits = s.bits.SetAll(v)
	case "invert":
		s.bits = s.bits.Invert()
	case "bits":
		pattern := strings.Join(args, "")
		parse := lo.Ternary(strings.HasPrefix(strings.ToLower(pattern), "0x"), floatbits.ParseHex, floatbits.ParseBits)
		b, err := parse(pattern, s.format)
		if err != nil {
			return err
		}
		s.bits = b
	default:
		return fmt.Errorf("unknown command %q, type help for the list", cmd)
	}
	s.show()
	return nil
}

func (s *session) show() {
	writeTextReports(s.out, []report{newReport("", s.bits, s.format)})
}

func (s *session) checkIndex(i int) error {
	if i < 0 || i >= s.format.TotalBits() {
		return fmt.Errorf("bit index %d out of range [0, %d)", i, s.format.TotalBits())
	}
	return nil
}

func intArgs(args []string, count int) ([]int, error) {
	if len(args) != count {
		return nil, fmt.Errorf("want %d integer argument(s), got %d", count, len(args))
	}
	result := make([]int, 0, count)
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", arg)
		}
		result = append(result, v)
	}
	return result, nil
}

func bitArg(arg string) (byte, error) {
	if arg != "0" && arg != "1" {
		return 0, fmt.Errorf("bad bit value %q", arg)
	}
	return arg[0], nil
}
