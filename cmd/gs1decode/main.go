/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// gs1decode decodes GS1 element strings from its arguments or stdin, one
// per line, and prints the decoded elements as JSON or a short table.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gs1"
)

func main() {
	var (
		jsonOut      = pflag.Bool("json", false, "print full results as JSON")
		strict       = pflag.Bool("strict", false, "treat any element validation failure as fatal")
		noBeam       = pflag.Bool("no-reconstruct", false, "disable beam-search reconstruction")
		beamWidth    = pflag.Int("beam-width", 200, "beam width for reconstruction")
		alternatives = pflag.Int("alternatives", 5, "maximum alternative parses to keep")
		weightsFile  = pflag.String("weights", "", "YAML file overriding scoring weights")
		verbose      = pflag.BoolP("verbose", "v", false, "log at debug level")
	)
	pflag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	opts := gs1.DefaultOptions()
	opts.StrictMode = *strict
	opts.AllowAmbiguous = !*noBeam
	opts.BeamWidth = *beamWidth
	opts.MaxAlternatives = *alternatives

	if *weightsFile != "" {
		f, err := os.Open(*weightsFile)
		if err != nil {
			log.Fatal("cannot open weights file", "path", *weightsFile, "err", err)
		}
		w, err := gs1.LoadWeights(f)
		_ = f.Close()
		if err != nil {
			log.Fatal("cannot load weights", "path", *weightsFile, "err", err)
		}
		opts.Weights = &w
		log.Debug("loaded scoring weights", "path", *weightsFile)
	}

	inputs := pflag.Args()
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			log.Fatal("reading stdin", "err", err)
		}
	}

	exitCode := 0
	for _, input := range inputs {
		result := gs1.Decode(input, opts)
		if len(result.Errors) > 0 {
			exitCode = 1
		}
		if *jsonOut {
			printJSON(result)
		} else {
			printTable(result)
		}
	}
	os.Exit(exitCode)
}

func printJSON(r gs1.DecodeResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		log.Fatal("encoding result", "err", err)
	}
}

func printTable(r gs1.DecodeResult) {
	if r.Symbology != "" {
		fmt.Printf("# symbology: %s\n", r.Symbology)
	}
	for _, e := range r.Elements {
		status := "ok"
		if !e.Valid {
			status = "INVALID"
		}
		value := e.Value
		if e.HasDate {
			value = gs1.FormatDayMonthYear(e)
		}
		fmt.Printf("(%s) %-22s %-24s %s\n", e.AI, gs1.FriendlyName(e.AI), value, status)
	}
	fmt.Printf("# confidence: %.3f", r.Confidence)
	if len(r.Alternatives) > 1 {
		fmt.Printf(", %d alternative parse(s)", len(r.Alternatives)-1)
	}
	fmt.Println()
	for _, d := range r.Errors {
		log.Warn("decode error", "input", r.Raw, "code", d.Code, "detail", d.Detail)
	}
	for _, d := range r.Warnings {
		log.Debug("decode warning", "input", r.Raw, "code", d.Code, "detail", d.Detail)
	}
}
