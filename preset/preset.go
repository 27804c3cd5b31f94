// Package preset stores named, versioned projection configurations and
// re-verifies them against the engine. A preset records which vertex source
// to project, the spread triple, and the expected hull shape; verification
// re-derives the shadow and reports the comparison as data. The table
// replaces per-n branch logic: looking a shape up by name cannot drift the
// way duplicated spread literals in control flow did.
package preset

import (
	"errors"
	"fmt"

	"github.com/artexplorer/primecut"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for preset verification. Callers branch with errors.Is.
var (
	ErrUnknownPreset        = errors.New("unknown preset")
	ErrVertexSourceNotFound = errors.New("vertex source not found")
	ErrVertexCountMismatch  = errors.New("vertex count mismatch")
)

// Config is one stored projection preset. Immutable after load;
// verification only reads it.
type Config struct {
	Name              string           `yaml:"name"`
	VertexSource      string           `yaml:"vertex-source"`
	VertexCount       int              `yaml:"vertex-count"`
	Spreads           primecut.Spreads `yaml:"spreads"`
	ExpectedHullCount int              `yaml:"expected-hull-count"`
	MaxInteriorAngle  float64          `yaml:"max-interior-angle"`
	Provenance        string           `yaml:"provenance"`
}

// Result of verifying one preset. When Err is set the projection could not
// be derived at all; otherwise the diagnostic fields are populated whether
// or not the preset passed.
type Result struct {
	Name             string
	Passed           bool
	ActualHullCount  int
	MaxInteriorAngle float64
	Err              error
}

// Report aggregates a full-registry verification run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// VertexSourceFunc fetches the vertex set for a source id. The returned
// error marks the source as unknown.
type VertexSourceFunc func(id string) ([]r3.Vec, error)

// Verify re-derives the shadow of points under the preset's spreads and
// checks it against the recorded expectation: the hull count must match
// and the widest interior angle must stay below the threshold. A spread
// outside [0,1] surfaces in Result.Err; everything else is diagnosis, not
// error.
func Verify(cfg Config, points []r3.Vec) Result {
	res := Result{Name: cfg.Name}
	proj, err := primecut.ProjectAndHull(points, cfg.Spreads, 1)
	if err != nil {
		res.Err = err
		return res
	}
	res.ActualHullCount = proj.HullCount()
	res.MaxInteriorAngle = primecut.MaxInteriorAngle(proj.Hull)
	res.Passed = res.ActualHullCount == cfg.ExpectedHullCount &&
		res.MaxInteriorAngle < cfg.MaxInteriorAngle
	return res
}

// Registry is the read-only preset table plus the vertex source it
// verifies against. Build one with NewRegistry or Default.
type Registry struct {
	presets  []Config
	byName   map[string]int
	vertices VertexSourceFunc
}

// NewRegistry builds a registry over validated configs. Duplicate names
// are rejected; per-config validation belongs to the loader.
func NewRegistry(configs []Config, vertices VertexSourceFunc) (*Registry, error) {
	r := &Registry{
		presets:  configs,
		byName:   make(map[string]int, len(configs)),
		vertices: vertices,
	}
	for i, cfg := range configs {
		if _, dup := r.byName[cfg.Name]; dup {
			return nil, fmt.Errorf("duplicate preset %q", cfg.Name)
		}
		r.byName[cfg.Name] = i
	}
	return r, nil
}

// Presets returns the table in load order.
func (r *Registry) Presets() []Config {
	out := make([]Config, len(r.presets))
	copy(out, r.presets)
	return out
}

// Lookup returns the preset with the given name.
func (r *Registry) Lookup(name string) (Config, error) {
	i, ok := r.byName[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return r.presets[i], nil
}

// VerifyByName fetches the preset's vertex source and verifies it. Errors
// cover an unknown preset, an unregistered vertex source, and a vertex
// count that disagrees with the preset's record; a failing verification is
// not an error.
func (r *Registry) VerifyByName(name string) (Result, error) {
	cfg, err := r.Lookup(name)
	if err != nil {
		return Result{Name: name}, err
	}
	points, err := r.fetch(cfg)
	if err != nil {
		return Result{Name: name}, err
	}
	return Verify(cfg, points), nil
}

// VerifyAll verifies every preset and aggregates pass/fail counts. The run
// never aborts early: fetch errors become failed results with Err set, so
// a batch always yields a complete report.
func (r *Registry) VerifyAll() Report {
	var rep Report
	for _, cfg := range r.presets {
		points, err := r.fetch(cfg)
		var res Result
		if err != nil {
			res = Result{Name: cfg.Name, Err: err}
		} else {
			res = Verify(cfg, points)
		}
		rep.Results = append(rep.Results, res)
		if res.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	return rep
}

func (r *Registry) fetch(cfg Config) ([]r3.Vec, error) {
	points, err := r.vertices(cfg.VertexSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrVertexSourceNotFound, cfg.VertexSource, err)
	}
	if cfg.VertexCount != 0 && len(points) != cfg.VertexCount {
		return nil, fmt.Errorf("%w: source %q returned %d vertices, preset %q records %d",
			ErrVertexCountMismatch, cfg.VertexSource, len(points), cfg.Name, cfg.VertexCount)
	}
	return points, nil
}
