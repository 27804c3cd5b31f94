package polyhedra

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stable vertex source identifiers. Preset tables refer to sources by
// these strings, so renaming one silently orphans stored presets.
const (
	SourceTetrahedron     = "tetrahedron"
	SourceDualTetrahedron = "dual-tetrahedron"
	SourceOctahedron      = "octahedron"
	SourceTruncTet        = "truncated-tetrahedron"
	SourceIcosahedron     = "icosahedron"
	SourceStellaOctangula = "stella-octangula"
	SourceTruncTetTet     = "trunc-tet-plus-tet"
	SourceTruncTetDualTet = "trunc-tet-plus-dual-tet"
	SourceTruncTetIcosa   = "trunc-tet-plus-icosa"
)

// sources maps ids to constructors. The projection sources follow the
// engine convention of unit-scale solids; the truncated tetrahedron is
// unit-sphere normalized because the raw (1,1,3)-permutation coordinates
// leave a collinear hull vertex at the pentagon orientation.
var sources = map[string]func() []r3.Vec{
	SourceTetrahedron:     func() []r3.Vec { return Tetrahedron(1) },
	SourceDualTetrahedron: func() []r3.Vec { return DualTetrahedron(1) },
	SourceOctahedron:      func() []r3.Vec { return TruncatedTetrahedron(1, 0.5) },
	SourceTruncTet: func() []r3.Vec {
		return normalizeToSphere(TruncatedTetrahedron(3, 1.0/3.0), 1)
	},
	SourceIcosahedron:     func() []r3.Vec { return Icosahedron(1) },
	SourceStellaOctangula: func() []r3.Vec { return VariableStella(0, 0, 1) },
	SourceTruncTetTet:     func() []r3.Vec { return TruncTetPlusTet(1) },
	SourceTruncTetDualTet: func() []r3.Vec { return TruncTetPlusDualTet(1) },
	SourceTruncTetIcosa:   func() []r3.Vec { return TruncTetPlusIcosa(1) },
}

// Vertices returns a fresh copy of the vertex set for a source id.
func Vertices(id string) ([]r3.Vec, error) {
	gen, ok := sources[id]
	if !ok {
		return nil, fmt.Errorf("unknown vertex source %q", id)
	}
	return gen(), nil
}

// IDs returns all registered source ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(sources))
	for id := range sources {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
