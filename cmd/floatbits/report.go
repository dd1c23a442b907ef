// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"

	"github.com/avdva/floatbits"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputCBOR = "cbor"
)

// report describes a single bit pattern.
type report struct {
	Input  string           `json:"input,omitempty" cbor:"input,omitempty"`
	Format floatbits.Format `json:"format" cbor:"format"`
	Bits   string           `json:"bits" cbor:"bits"`
	Hex    string           `json:"hex" cbor:"hex"`
	Value  string           `json:"value" cbor:"value"`
	Class  string           `json:"class" cbor:"class"`
}

func newReport(input string, b floatbits.Bits, f floatbits.Format) report {
	d := floatbits.Decode(b, f)
	return report{
		Input:  input,
		Format: f,
		Bits:   b.Grouped(f),
		Hex:    b.Hex(),
		Value:  d.Value,
		Class:  d.Class.String(),
	}
}

type infoReport struct {
	Format floatbits.Format `json:"format" cbor:"format"`
	floatbits.Info
}

func newInfoReport(f floatbits.Format) infoReport {
	return infoReport{Format: f, Info: floatbits.Characteristics(f)}
}

type writer struct {
	reports func(w io.Writer, reports []report) error
	info    func(w io.Writer, info infoReport) error
}

var writers = map[string]writer{
	outputText: {reports: writeTextReports, info: writeTextInfo},
	outputJSON: {
		reports: func(w io.Writer, reports []report) error { return writeJSON(w, reports) },
		info:    func(w io.Writer, info infoReport) error { return writeJSON(w, info) },
	},
	outputCBOR: {
		reports: func(w io.Writer, reports []report) error { return writeCBOR(w, reports) },
		info:    func(w io.Writer, info infoReport) error { return writeCBOR(w, info) },
	},
}

func writeTextReports(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		if len(r.Input) > 0 {
			fmt.Fprintf(tw, "input:\t%s\n", r.Input)
		}
		fmt.Fprintf(tw, "format:\t%s\n", r.Format)
		fmt.Fprintf(tw, "bits:\t%s\n", r.Bits)
		fmt.Fprintf(tw, "hex:\t%s\n", r.Hex)
		fmt.Fprintf(tw, "value:\t%s\n", r.Value)
		fmt.Fprintf(tw, "class:\t%s\n", r.Class)
	}
	return tw.Flush()
}

func writeTextInfo(w io.Writer, info infoReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "format:\t%s\n", info.Format)
	fmt.Fprintf(tw, "total bits:\t%d\n", info.Format.TotalBits())
	fmt.Fprintf(tw, "bias:\t%d\n", info.Bias)
	fmt.Fprintf(tw, "epsilon:\t%s\n", info.Epsilon)
	fmt.Fprintf(tw, "max normal:\t%s\n", info.MaxNormal)
	fmt.Fprintf(tw, "min normal:\t%s\n", info.MinNormal)
	fmt.Fprintf(tw, "min denormal:\t%s\n", info.MinDenormal)
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCBOR(w io.Writer, v interface{}) error {
	return cbor.NewEncoder(w).Encode(v)
}
