// Command quadric constructs the symplectic incidence graph for a chosen
// prime field, audits its strongly-regular invariants, enumerates its clique
// and component census, and — for the canonical (q=3, d=4) geometry —
// classifies component holonomies.
//
// Exit status: 0 when every invariant holds, 1 when the audit found
// mismatches, 2 on usage or construction errors.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/finitegeom/quadric/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("quadric", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int("q", 3, "prime field order")
	fs.Int("dim", 4, "vector-space dimension (even)")
	fs.Int("clique-size", 0, "clique/component size k (0 = q+1)")
	fs.Int("phase-modulus", 6, "holonomy quantization modulus N")
	fs.Bool("aut", false, "search the automorphism group order")
	fs.Uint64("aut-budget", 0, "automorphism search node budget (0 = default)")
	fs.Float64("epsilon", 0, "numeric tolerance (0 = default)")
	fs.Int("parallelism", 0, "holonomy worker bound (0 = default)")
	fs.Bool("json", false, "emit the report as JSON")
	fs.Bool("verbose", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(fs)
	if err != nil {
		fmt.Fprintf(stderr, "quadric: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("resolved configuration",
		"q", cfg.Q, "dim", cfg.Dim, "clique_size", cfg.CliqueSize,
		"phase_modulus", cfg.PhaseModulus, "aut", cfg.Aut)

	report, err := pipeline.Run(pipeline.Config{
		Q:                   cfg.Q,
		Dim:                 cfg.Dim,
		TargetCliqueSize:    cfg.CliqueSize,
		PhaseModulus:        cfg.PhaseModulus,
		SearchAutomorphisms: cfg.Aut,
		AutomorphismBudget:  cfg.AutBudget,
		Epsilon:             cfg.Epsilon,
		Parallelism:         cfg.Parallelism,
	})
	if err != nil {
		logger.Error("pipeline failed", "err", err)
		return 2
	}

	if cfg.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			logger.Error("encoding report", "err", err)
			return 2
		}
	} else {
		renderText(stdout, report)
	}

	if !report.OK() {
		logger.Warn("invariant audit failed", "mismatches", len(report.Mismatches))
		return 1
	}
	logger.Debug("invariant audit passed")
	return 0
}

// mismatchPreview caps the mismatch lines printed in text mode; the full
// list is always available via --json.
const mismatchPreview = 20

func renderText(w io.Writer, r *pipeline.VerificationReport) {
	fmt.Fprintf(w, "geometry        GF(%d)^%d\n", r.Q, r.Dim)
	fmt.Fprintf(w, "graph           %d vertices, %d edges (fingerprint %016x)\n",
		r.VertexCount, r.EdgeCount, r.Fingerprint)
	fmt.Fprintf(w, "srg params      k=%d lambda=%d mu=%d\n", r.SRG.K, r.SRG.Lambda, r.SRG.Mu)

	fmt.Fprintf(w, "spectrum       ")
	for _, ev := range r.Spectrum {
		fmt.Fprintf(w, " %g^%d", ev.Value, ev.Multiplicity)
	}
	fmt.Fprintln(w)

	if r.Automorphisms != nil {
		suffix := ""
		if !r.Automorphisms.Exact {
			suffix = " (lower bound, budget exhausted)"
		}
		fmt.Fprintf(w, "automorphisms   %d%s\n", r.Automorphisms.Order, suffix)
	}

	fmt.Fprintf(w, "cliques         %d of size %d\n", r.CliqueCount, r.TargetCliqueSize)
	fmt.Fprintf(w, "triangles       %d\n", r.TriangleCount)
	fmt.Fprintf(w, "components      %d\n", len(r.Components))

	if r.RayModelBuilt {
		labels := make([]int, 0, len(r.Holonomy))
		for l := range r.Holonomy {
			labels = append(labels, l)
		}
		sort.Ints(labels)
		fmt.Fprintf(w, "holonomy       ")
		for _, l := range labels {
			fmt.Fprintf(w, " %d:%d", l, r.Holonomy[l])
		}
		if r.ExcludedCycles > 0 {
			fmt.Fprintf(w, " undefined:%d", r.ExcludedCycles)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "holonomy        skipped (no ray model for this geometry)")
	}

	if len(r.Mismatches) == 0 {
		fmt.Fprintln(w, "audit           ok")
		return
	}
	fmt.Fprintf(w, "audit           %d mismatches\n", len(r.Mismatches))
	for i, m := range r.Mismatches {
		if i == mismatchPreview {
			fmt.Fprintf(w, "  ... %d more\n", len(r.Mismatches)-mismatchPreview)
			break
		}
		fmt.Fprintf(w, "  %-8s u=%d v=%d got=%g want=%g %s\n", m.Kind, m.U, m.V, m.Got, m.Want, m.Note)
	}
}
