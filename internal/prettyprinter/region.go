package prettyprinter

import (
	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/ty"
)

// PrintRegion renders the concise form of a region. Regions that have no
// short spelling (block scopes, inference variables, anonymous bound
// regions) render as nothing; callers decide whether to substitute a
// placeholder. In verbose mode the explicit form is used.
func (p *TypePrinter) PrintRegion(r ty.Region) {
	if p.verbose {
		p.DebugRegion(r)
		return
	}

	switch r := r.(type) {
	case ty.EarlyBound:
		p.write(r.Name)
	case ty.LateBound:
		p.PrintBoundRegion(r.Bound)
	case ty.FreeRegion:
		p.PrintBoundRegion(r.Bound)
	case ty.Skolemized:
		p.PrintBoundRegion(r.Bound)
	case ty.ScopeRegion, ty.VarRegion:
	case ty.StaticRegion:
		p.write(config.StaticRegionName)
	case ty.EmptyRegion:
		p.write(config.EmptyRegionName)
	}
}

// RegionString renders r without touching the printer's buffer.
func (p *TypePrinter) RegionString(r ty.Region) string {
	return p.capture(func(q *TypePrinter) { q.PrintRegion(r) })
}

func (p *TypePrinter) PrintBoundRegion(br ty.BoundRegion) {
	if p.verbose {
		p.DebugBoundRegion(br)
		return
	}
	if br.Kind == ty.BrNamed {
		p.write(br.Name)
	}
}

func (p *TypePrinter) DebugBoundRegion(br ty.BoundRegion) {
	switch br.Kind {
	case ty.BrAnon:
		p.writef("BrAnon(%d)", br.Index)
	case ty.BrFresh:
		p.writef("BrFresh(%d)", br.Index)
	case ty.BrNamed:
		p.writef("BrNamed(%d:%d, %s)", br.Def.Krate, br.Def.Index, br.Name)
	case ty.BrEnv:
		p.write("BrEnv")
	}
}

func (p *TypePrinter) DebugRegion(r ty.Region) {
	switch r := r.(type) {
	case ty.EarlyBound:
		p.writef("ReEarlyBound(%s, %d, %s)", r.Space, r.Index, r.Name)
	case ty.LateBound:
		p.writef("ReLateBound(DebruijnIndex { depth: %d }, ", r.Depth)
		p.DebugBoundRegion(r.Bound)
		p.write(")")
	case ty.FreeRegion:
		p.DebugFreeRegion(r)
	case ty.ScopeRegion:
		p.writef("ReScope(CodeExtent(%d))", r.Extent)
	case ty.StaticRegion:
		p.write("ReStatic")
	case ty.VarRegion:
		p.DebugRegionVid(r.Vid)
	case ty.Skolemized:
		p.writef("ReSkolemized(%d, ", r.Index)
		p.DebugBoundRegion(r.Bound)
		p.write(")")
	case ty.EmptyRegion:
		p.write("ReEmpty")
	}
}

func (p *TypePrinter) DebugFreeRegion(r ty.FreeRegion) {
	p.writef("ReFree(CodeExtent(%d), ", r.Scope)
	p.DebugBoundRegion(r.Bound)
	p.write(")")
}

func (p *TypePrinter) DebugRegionVid(v ty.RegionVid) {
	p.writef("'_#%dr", v.Index)
}
