package op

import "github.com/ironsheep/pixel-edit/internal/raster"

// Op is a single edit primitive. The set of implementations is closed:
// the unexported apply method seals the interface to this package, keeping
// each variant's forward and inverse logic colocated.
type Op interface {
	// apply executes the operation against dst. When inverse is true and
	// the operation touched at least one pixel, it returns the inverse
	// operation; otherwise it returns nil.
	apply(dst raster.Surface, inverse bool) Op
}

// Apply executes o against dst. When computeInverse is true and the
// operation touched at least one pixel, the returned Op undoes it exactly;
// otherwise Apply returns nil. A nil o is a no-op.
func Apply(o Op, dst raster.Surface, computeInverse bool) Op {
	if o == nil {
		return nil
	}
	return o.apply(dst, computeInverse)
}

// Empty is the operation that does nothing.
type Empty struct{}

func (Empty) apply(raster.Surface, bool) Op { return nil }

// MarkerKind distinguishes the two stroke delimiters.
type MarkerKind int

const (
	// BeginDraw marks the start of an interactive stroke.
	BeginDraw MarkerKind = iota
	// EndDraw marks the end of an interactive stroke.
	EndDraw
)

// Marker delimits an interactive stroke for later coalescing. It carries an
// optional human-readable label, mutates nothing, and never produces an
// inverse.
type Marker struct {
	Kind    MarkerKind
	Message string
}

func (*Marker) apply(raster.Surface, bool) Op { return nil }

// Sequential applies its children in declared order. Its inverse is a
// Sequential of the children's inverses in reverse order, which restores
// correctly even when the children's pixel footprints overlap. Children
// that produced no inverse are skipped.
type Sequential struct {
	Message string
	Ops     []Op
}

func (s *Sequential) apply(dst raster.Surface, inverse bool) Op {
	var inverses []Op
	for _, child := range s.Ops {
		inv := Apply(child, dst, inverse)
		if inv != nil {
			inverses = append(inverses, inv)
		}
	}
	if !inverse || len(inverses) == 0 {
		return nil
	}
	for i, j := 0, len(inverses)-1; i < j; i, j = i+1, j-1 {
		inverses[i], inverses[j] = inverses[j], inverses[i]
	}
	return &Sequential{Message: s.Message, Ops: inverses}
}

// ContainsMarker reports whether o is, or transitively contains, a marker
// of the given kind.
func ContainsMarker(o Op, kind MarkerKind) bool {
	switch v := o.(type) {
	case *Marker:
		return v.Kind == kind
	case *Sequential:
		for _, child := range v.Ops {
			if ContainsMarker(child, kind) {
				return true
			}
		}
	}
	return false
}

// StripMarkers returns o with every marker removed. Sequentials are
// rebuilt without their marker children; a bare marker strips to nil.
// Ops holding no markers are returned unchanged.
func StripMarkers(o Op) Op {
	switch v := o.(type) {
	case *Marker:
		return nil
	case *Sequential:
		if !ContainsMarker(v, BeginDraw) && !ContainsMarker(v, EndDraw) {
			return v
		}
		kept := make([]Op, 0, len(v.Ops))
		for _, child := range v.Ops {
			if stripped := StripMarkers(child); stripped != nil {
				kept = append(kept, stripped)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		if len(kept) == 1 && v.Message == "" {
			return kept[0]
		}
		return &Sequential{Message: v.Message, Ops: kept}
	default:
		return o
	}
}
