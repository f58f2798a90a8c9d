package pipeline

import (
	"errors"
	"fmt"

	"github.com/finitegeom/quadric/clique"
	"github.com/finitegeom/quadric/gf"
	"github.com/finitegeom/quadric/holonomy"
	"github.com/finitegeom/quadric/incidence"
	"github.com/finitegeom/quadric/rays"
	"github.com/finitegeom/quadric/symplectic"
	"github.com/finitegeom/quadric/verify"
)

// ErrBadConfig is returned for configuration values no stage can accept.
var ErrBadConfig = errors.New("pipeline: bad config")

// Config selects one pipeline run. Zero values resolve to defaults: Dim 4,
// the standard symplectic form, clique size q+1, phase modulus 6, the
// package default epsilon and parallelism, and no automorphism search.
type Config struct {
	// Q is the prime field order. Required.
	Q int
	// Dim is the even vector-space dimension. Default 4.
	Dim int
	// Form overrides the bilinear form matrix; nil selects the standard
	// block form. Must be Dim×Dim, alternating, non-degenerate.
	Form [][]int

	// TargetCliqueSize sets the clique and component size k. Default q+1.
	TargetCliqueSize int
	// PhaseModulus sets the holonomy quantization N. Default 6.
	PhaseModulus int

	// SearchAutomorphisms enables the automorphism-order search.
	SearchAutomorphisms bool
	// AutomorphismBudget caps the search; 0 uses the verify default.
	AutomorphismBudget uint64

	// Epsilon overrides numeric tolerances; 0 uses the package defaults.
	Epsilon float64
	// Parallelism bounds holonomy workers; 0 uses the holonomy default.
	Parallelism int
}

// VerificationReport is the aggregate outcome of one run.
type VerificationReport struct {
	Q   int `json:"q"`
	Dim int `json:"dim"`

	VertexCount int    `json:"vertex_count"`
	EdgeCount   int    `json:"edge_count"`
	Fingerprint uint64 `json:"fingerprint"`

	SRG           verify.Params            `json:"srg_params"`
	Mismatches    []verify.Mismatch        `json:"mismatches,omitempty"`
	Spectrum      []verify.Eigenvalue      `json:"spectrum"`
	Automorphisms *verify.AutomorphismData `json:"automorphisms,omitempty"`

	TargetCliqueSize int                `json:"target_clique_size"`
	CliqueCount      int                `json:"clique_count"`
	TriangleCount    int                `json:"triangle_count"`
	Components       []clique.Component `json:"components,omitempty"`

	// RayModelBuilt is false when the geometry admits no ray model; the
	// holonomy fields are then absent.
	RayModelBuilt  bool        `json:"ray_model_built"`
	Holonomy       map[int]int `json:"holonomy,omitempty"`
	ExcludedCycles int         `json:"excluded_cycles,omitempty"`
}

// OK reports whether the invariant audit found no mismatch.
func (r *VerificationReport) OK() bool { return len(r.Mismatches) == 0 }

// ExpectedParams returns the strongly-regular parameters of the symplectic
// incidence graph over GF(q) in dimension dim: with t = (q^(dim−2)−1)/(q−1),
// the degree is q·t, adjacent pairs share t−2 neighbors and non-adjacent
// pairs share t. For dim 4 this is k = q(q+1), λ = q−1, μ = q+1.
func ExpectedParams(q, dim int) verify.Params {
	t := 0
	for i := 0; i < dim-2; i++ {
		t = t*q + 1
	}

	return verify.Params{K: q * t, Lambda: t - 2, Mu: t}
}

// Run executes the pipeline for cfg and returns the aggregate report. Stage
// failures (bad field, bad form, ray inconsistency) abort with an error;
// invariant mismatches do not — they accumulate in the report.
func Run(cfg Config) (*VerificationReport, error) {
	if cfg.Dim == 0 {
		cfg.Dim = 4
	}
	if cfg.Epsilon < 0 || cfg.Parallelism < 0 || cfg.TargetCliqueSize < 0 {
		return nil, fmt.Errorf("pipeline: negative tuning value: %w", ErrBadConfig)
	}
	if cfg.PhaseModulus == 1 || cfg.PhaseModulus < 0 {
		return nil, fmt.Errorf("pipeline: phase modulus %d: %w", cfg.PhaseModulus, ErrBadConfig)
	}

	// Stage 1: construct the geometry.
	field, err := gf.NewField(cfg.Q)
	if err != nil {
		return nil, err
	}
	form := cfg.Form
	if form == nil {
		form = symplectic.StandardForm(cfg.Dim)
	}
	space, err := symplectic.NewSpace(field, cfg.Dim, form)
	if err != nil {
		return nil, err
	}
	g, err := incidence.Build(space)
	if err != nil {
		return nil, err
	}

	report := &VerificationReport{
		Q:           cfg.Q,
		Dim:         cfg.Dim,
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
		Fingerprint: g.Fingerprint(),
		SRG:         ExpectedParams(cfg.Q, cfg.Dim),
	}

	// Stage 2: invariant audit.
	var vopts []verify.Option
	if cfg.Epsilon > 0 {
		vopts = append(vopts, verify.WithEpsilon(cfg.Epsilon))
	}
	if cfg.SearchAutomorphisms {
		vopts = append(vopts, verify.WithAutomorphismBudget(cfg.AutomorphismBudget))
	}
	audit, err := verify.Verify(g, report.SRG, vopts...)
	if err != nil {
		return nil, err
	}
	report.Mismatches = audit.Mismatches
	report.Spectrum = audit.Spectrum
	report.Automorphisms = audit.Automorphisms

	// Stage 3: clique and component census.
	report.TargetCliqueSize = cfg.TargetCliqueSize
	if report.TargetCliqueSize == 0 {
		report.TargetCliqueSize = cfg.Q + 1
	}
	cliques, err := clique.Cliques(g, report.TargetCliqueSize)
	if err != nil {
		return nil, err
	}
	report.CliqueCount = len(cliques)
	report.TriangleCount, err = clique.Triangles(g)
	if err != nil {
		return nil, err
	}
	report.Components, err = clique.Components(g, report.TargetCliqueSize)
	if err != nil {
		return nil, err
	}

	// Stage 4: ray model and holonomy census, canonical geometry only.
	model, err := rays.NewModel(g, rayOptions(cfg)...)
	if errors.Is(err, rays.ErrUnsupportedGeometry) {
		return report, nil
	}
	if err != nil {
		return nil, err
	}
	report.RayModelBuilt = true

	classifier, err := holonomy.NewClassifier(model, holonomyOptions(cfg)...)
	if err != nil {
		return nil, err
	}
	dist, err := classifier.ClassifyComponents(report.Components)
	if err != nil {
		return nil, err
	}
	report.Holonomy = make(map[int]int, len(dist.Counts))
	for label, count := range dist.Counts {
		report.Holonomy[int(label)] = count
	}
	report.ExcludedCycles = dist.Undefined

	return report, nil
}

func rayOptions(cfg Config) []rays.Option {
	if cfg.Epsilon > 0 {
		return []rays.Option{rays.WithEpsilon(cfg.Epsilon)}
	}
	return nil
}

func holonomyOptions(cfg Config) []holonomy.Option {
	var opts []holonomy.Option
	if cfg.PhaseModulus >= 2 {
		opts = append(opts, holonomy.WithModulus(cfg.PhaseModulus))
	}
	if cfg.Epsilon > 0 {
		opts = append(opts, holonomy.WithEpsilon(cfg.Epsilon))
	}
	if cfg.Parallelism > 0 {
		opts = append(opts, holonomy.WithParallelism(cfg.Parallelism))
	}
	return opts
}
