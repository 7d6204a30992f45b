package fixture

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/tyrender/internal/ty"
)

// Entry kinds, as spelled in a fixture file.
const (
	KindType         = "type"
	KindTraitRef     = "trait_ref"
	KindPolyTraitRef = "poly_trait_ref"
	KindRegion       = "region"
	KindPredicate    = "predicate"
	KindFnSig        = "fn_sig"
)

// DecodeError locates a malformed node in a fixture file.
type DecodeError struct {
	Path string
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

type fileYAML struct {
	Lift    string      `yaml:"lift"`
	Items   []itemYAML  `yaml:"items"`
	Entries []yaml.Node `yaml:"entries"`
}

type itemYAML struct {
	ID       string       `yaml:"id"`
	Path     string       `yaml:"path"`
	Name     string       `yaml:"name"`
	Owner    string       `yaml:"owner"`
	FnTrait  string       `yaml:"fn_trait"`
	Typed    *bool        `yaml:"typed"`
	Span     string       `yaml:"span"`
	Captures []string     `yaml:"captures"`
	Generics genericsYAML `yaml:"generics"`
}

type genericsYAML struct {
	Types     []typeParamYAML   `yaml:"types"`
	Self      []typeParamYAML   `yaml:"self"`
	Fn        []typeParamYAML   `yaml:"fn"`
	Regions   []regionParamYAML `yaml:"regions"`
	FnRegions []regionParamYAML `yaml:"fn_regions"`
}

type typeParamYAML struct {
	Name    string    `yaml:"name"`
	Default yaml.Node `yaml:"default"`
}

type regionParamYAML struct {
	Name   string      `yaml:"name"`
	Bounds []yaml.Node `yaml:"bounds"`
}

type entryYAML struct {
	Name         string     `yaml:"name"`
	Type         yaml.Node `yaml:"type"`
	TraitRef     yaml.Node `yaml:"trait_ref"`
	PolyTraitRef yaml.Node `yaml:"poly_trait_ref"`
	Region       yaml.Node `yaml:"region"`
	Predicate    yaml.Node `yaml:"predicate"`
	FnSig        yaml.Node `yaml:"fn_sig"`
}

// Load reads and decodes a fixture file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes fixture content. The path argument is used only for
// error messages.
func Parse(data []byte, path string) (*Table, error) {
	var f fileYAML
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	d := &decoder{path: path}
	t := NewTable()
	switch f.Lift {
	case "", "always":
	case "never":
		t.LiftNever = true
	default:
		return nil, fmt.Errorf("%s: lift must be always or never (got %q)", path, f.Lift)
	}

	for i := range f.Items {
		item, err := d.item(&f.Items[i])
		if err != nil {
			return nil, err
		}
		if _, dup := t.items[item.Def]; dup {
			return nil, fmt.Errorf("%s: duplicate item %s", path, item.Def)
		}
		t.Add(item)
	}

	for i := range f.Entries {
		n := &f.Entries[i]
		e, err := d.entry(n)
		if err != nil {
			return nil, err
		}
		if err := t.AddEntry(e); err != nil {
			return nil, d.errorf(n, "%v", err)
		}
	}
	return t, nil
}

type decoder struct {
	path string
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...any) error {
	return &DecodeError{Path: d.path, Line: n.Line, Msg: fmt.Sprintf(format, args...)}
}

func (d *decoder) item(y *itemYAML) (Item, error) {
	def, err := ParseDefID(y.ID)
	if err != nil {
		return Item{}, fmt.Errorf("%s: item %q: %w", d.path, y.Path, err)
	}
	item := Item{
		Def:      def,
		Path:     y.Path,
		Name:     y.Name,
		Untyped:  y.Typed != nil && !*y.Typed,
		Span:     y.Span,
		Captures: y.Captures,
	}
	if item.Path == "" {
		return Item{}, fmt.Errorf("%s: item %s has no path", d.path, def)
	}
	if y.Owner != "" {
		if item.Owner, err = ParseDefID(y.Owner); err != nil {
			return Item{}, fmt.Errorf("%s: item %s: owner: %w", d.path, def, err)
		}
		item.HasOwner = true
	}
	if y.FnTrait != "" {
		if item.FnTrait, err = parseClosureKind(y.FnTrait); err != nil {
			return Item{}, fmt.Errorf("%s: item %s: %w", d.path, def, err)
		}
		item.IsFnTrait = true
	}

	g := &ty.Generics{}
	spaces := [ty.NumSpaces][]typeParamYAML{y.Generics.Types, y.Generics.Self, y.Generics.Fn}
	for space, params := range spaces {
		for i := range params {
			p := &params[i]
			tp := ty.TypeParameterDef{
				Name:  p.Name,
				Def:   def,
				Space: ty.ParamSpace(space),
				Index: uint32(i),
			}
			if p.Default.Kind != 0 {
				if tp.Default, err = d.typ(&p.Default); err != nil {
					return Item{}, err
				}
			}
			g.Types[space] = append(g.Types[space], tp)
		}
	}
	regionSpaces := map[ty.ParamSpace][]regionParamYAML{ty.TypeSpace: y.Generics.Regions, ty.FnSpace: y.Generics.FnRegions}
	for _, space := range []ty.ParamSpace{ty.TypeSpace, ty.FnSpace} {
		for i, p := range regionSpaces[space] {
			rp := ty.RegionParameterDef{Name: p.Name, Def: def, Space: space, Index: uint32(i)}
			for j := range p.Bounds {
				r, err := d.region(&p.Bounds[j])
				if err != nil {
					return Item{}, err
				}
				rp.Bounds = append(rp.Bounds, r)
			}
			g.Regions[space] = append(g.Regions[space], rp)
		}
	}
	if !g.Types.IsEmpty() || !g.Regions.IsEmpty() {
		item.Generics = g
	}
	return item, nil
}

func (d *decoder) entry(n *yaml.Node) (Entry, error) {
	var y entryYAML
	if err := n.Decode(&y); err != nil {
		return Entry{}, d.errorf(n, "%v", err)
	}
	if y.Name == "" {
		return Entry{}, d.errorf(n, "entry has no name")
	}

	var (
		e     = Entry{Name: y.Name}
		err   error
		count int
	)
	if y.Type.Kind != 0 {
		count++
		e.Kind = KindType
		e.Value, err = d.typ(&y.Type)
	}
	if y.TraitRef.Kind != 0 {
		count++
		e.Kind = KindTraitRef
		e.Value, err = d.traitRef(&y.TraitRef)
	}
	if y.PolyTraitRef.Kind != 0 {
		count++
		e.Kind = KindPolyTraitRef
		var tr ty.TraitRef
		tr, err = d.traitRef(&y.PolyTraitRef)
		e.Value = ty.Bind(tr)
	}
	if y.Region.Kind != 0 {
		count++
		e.Kind = KindRegion
		e.Value, err = d.region(&y.Region)
	}
	if y.Predicate.Kind != 0 {
		count++
		e.Kind = KindPredicate
		e.Value, err = d.predicate(&y.Predicate)
	}
	if y.FnSig.Kind != 0 {
		count++
		e.Kind = KindFnSig
		var fn *ty.BareFn
		if fn, err = d.bareFn(&y.FnSig); err == nil {
			e.Value = fn.Sig.Value
		}
	}
	if count != 1 {
		return Entry{}, d.errorf(n, "entry %q must have exactly one value", y.Name)
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// fields splits a mapping node into its keys, rejecting keys outside
// allowed.
func (d *decoder) fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "expected mapping, found %s", n.ShortTag())
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i].Value
		ok := false
		for _, a := range allowed {
			if key == a {
				ok = true
				break
			}
		}
		if !ok {
			return nil, d.errorf(n.Content[i], "unexpected key %q", key)
		}
		out[key] = n.Content[i+1]
	}
	return out, nil
}

// single returns the key and value of a one-entry mapping.
func (d *decoder) single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, d.errorf(n, "expected a mapping with a single key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func (d *decoder) seq(n *yaml.Node) ([]*yaml.Node, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected sequence, found %s", n.ShortTag())
	}
	return n.Content, nil
}

func (d *decoder) boolean(n *yaml.Node) (bool, error) {
	if n == nil {
		return false, nil
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return false, d.errorf(n, "expected boolean: %v", err)
	}
	return b, nil
}

func (d *decoder) unsigned(n *yaml.Node) (uint64, error) {
	if n == nil {
		return 0, nil
	}
	v, err := strconv.ParseUint(n.Value, 10, 64)
	if err != nil {
		return 0, d.errorf(n, "expected unsigned integer, found %q", n.Value)
	}
	return v, nil
}

func (d *decoder) defID(n *yaml.Node) (ty.DefID, error) {
	if n == nil {
		return ty.DefID{}, nil
	}
	def, err := ParseDefID(n.Value)
	if err != nil {
		return ty.DefID{}, d.errorf(n, "%v", err)
	}
	return def, nil
}

func (d *decoder) types(n *yaml.Node) ([]ty.Type, error) {
	nodes, err := d.seq(n)
	if err != nil {
		return nil, err
	}
	var out []ty.Type
	for _, c := range nodes {
		t, err := d.typ(c)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (d *decoder) regions(n *yaml.Node) ([]ty.Region, error) {
	nodes, err := d.seq(n)
	if err != nil {
		return nil, err
	}
	var out []ty.Region
	for _, c := range nodes {
		r, err := d.region(c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (d *decoder) typ(n *yaml.Node) (ty.Type, error) {
	if n.Kind == yaml.AliasNode {
		return d.typ(n.Alias)
	}
	if n.Kind == yaml.ScalarNode {
		switch n.Value {
		case "()":
			return ty.Unit, nil
		case "str":
			return ty.StrType, nil
		case "error":
			return ty.ErrorType, nil
		case ty.SelfName:
			return &ty.Param{Space: ty.SelfSpace, Name: ty.SelfName}, nil
		}
		if s, ok := ty.LookupScalar(n.Value); ok {
			return s, nil
		}
		return nil, d.errorf(n, "unknown type %q", n.Value)
	}

	key, v, err := d.single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "box":
		elem, err := d.typ(v)
		if err != nil {
			return nil, err
		}
		return &ty.Box{Elem: elem}, nil
	case "slice":
		elem, err := d.typ(v)
		if err != nil {
			return nil, err
		}
		return &ty.Slice{Elem: elem}, nil
	case "tuple":
		elems, err := d.types(v)
		if err != nil {
			return nil, err
		}
		return &ty.Tuple{Elems: elems}, nil
	case "array":
		return d.array(v)
	case "ptr":
		tm, _, err := d.pointee(v, false)
		if err != nil {
			return nil, err
		}
		return &ty.RawPtr{TypeAndMut: tm}, nil
	case "ref":
		tm, r, err := d.pointee(v, true)
		if err != nil {
			return nil, err
		}
		return &ty.Ref{Region: r, TypeAndMut: tm}, nil
	case "param":
		return d.param(v)
	case "infer":
		return d.infer(v)
	case "adt":
		return d.adt(v)
	case "fn_ptr":
		fn, err := d.bareFn(v)
		if err != nil {
			return nil, err
		}
		return &ty.FnPtr{Fn: fn}, nil
	case "fn_def":
		return d.fnDef(v)
	case "dyn":
		return d.traitObject(v)
	case "projection":
		proj, err := d.projectionTy(v)
		if err != nil {
			return nil, err
		}
		return &ty.Projection{ProjectionTy: proj}, nil
	case "closure":
		return d.closure(v)
	}
	return nil, d.errorf(n, "unknown type shape %q", key)
}

func (d *decoder) array(n *yaml.Node) (ty.Type, error) {
	f, err := d.fields(n, "elem", "len")
	if err != nil {
		return nil, err
	}
	if f["elem"] == nil {
		return nil, d.errorf(n, "array needs elem")
	}
	elem, err := d.typ(f["elem"])
	if err != nil {
		return nil, err
	}
	size, err := d.unsigned(f["len"])
	if err != nil {
		return nil, err
	}
	return &ty.Array{Elem: elem, Len: size}, nil
}

// pointee decodes {ty, mut, region}. A reference without a region gets an
// anonymous scope region.
func (d *decoder) pointee(n *yaml.Node, withRegion bool) (ty.TypeAndMut, ty.Region, error) {
	allowed := []string{"ty", "mut"}
	if withRegion {
		allowed = append(allowed, "region")
	}
	f, err := d.fields(n, allowed...)
	if err != nil {
		return ty.TypeAndMut{}, nil, err
	}
	if f["ty"] == nil {
		return ty.TypeAndMut{}, nil, d.errorf(n, "pointer needs ty")
	}
	t, err := d.typ(f["ty"])
	if err != nil {
		return ty.TypeAndMut{}, nil, err
	}
	mut, err := d.boolean(f["mut"])
	if err != nil {
		return ty.TypeAndMut{}, nil, err
	}
	tm := ty.TypeAndMut{Ty: t}
	if mut {
		tm.Mutbl = ty.Mutable
	}

	var r ty.Region = ty.ScopeRegion{}
	if f["region"] != nil {
		if r, err = d.region(f["region"]); err != nil {
			return ty.TypeAndMut{}, nil, err
		}
	}
	return tm, r, nil
}

func (d *decoder) param(n *yaml.Node) (ty.Type, error) {
	if n.Kind == yaml.ScalarNode {
		return &ty.Param{Space: ty.TypeSpace, Name: n.Value}, nil
	}
	f, err := d.fields(n, "name", "space", "index")
	if err != nil {
		return nil, err
	}
	p := &ty.Param{}
	if f["name"] != nil {
		p.Name = f["name"].Value
	}
	if p.Space, err = d.space(f["space"]); err != nil {
		return nil, err
	}
	idx, err := d.unsigned(f["index"])
	if err != nil {
		return nil, err
	}
	p.Index = uint32(idx)
	return p, nil
}

func (d *decoder) space(n *yaml.Node) (ty.ParamSpace, error) {
	if n == nil {
		return ty.TypeSpace, nil
	}
	switch n.Value {
	case "type":
		return ty.TypeSpace, nil
	case "self":
		return ty.SelfSpace, nil
	case "fn":
		return ty.FnSpace, nil
	}
	return 0, d.errorf(n, "unknown parameter space %q", n.Value)
}

var inferKinds = map[string]ty.InferKind{
	"ty":          ty.TyVar,
	"int":         ty.IntVar,
	"float":       ty.FloatVar,
	"fresh_ty":    ty.FreshTy,
	"fresh_int":   ty.FreshIntTy,
	"fresh_float": ty.FreshFloatTy,
}

func (d *decoder) infer(n *yaml.Node) (ty.Type, error) {
	f, err := d.fields(n, "kind", "index")
	if err != nil {
		return nil, err
	}
	kind := ty.TyVar
	if f["kind"] != nil {
		k, ok := inferKinds[f["kind"].Value]
		if !ok {
			return nil, d.errorf(f["kind"], "unknown inference kind %q", f["kind"].Value)
		}
		kind = k
	}
	idx, err := d.unsigned(f["index"])
	if err != nil {
		return nil, err
	}
	return &ty.Infer{Var: ty.InferTy{Kind: kind, Index: uint32(idx)}}, nil
}

func (d *decoder) adt(n *yaml.Node) (ty.Type, error) {
	f, err := d.fields(n, "def", "kind", "substs")
	if err != nil {
		return nil, err
	}
	t := &ty.Adt{}
	if t.Def, err = d.defID(f["def"]); err != nil {
		return nil, err
	}
	if k := f["kind"]; k != nil {
		switch k.Value {
		case "struct":
		case "enum":
			t.Kind = ty.EnumKind
		default:
			return nil, d.errorf(k, "adt kind must be struct or enum")
		}
	}
	if t.Substs, err = d.substs(f["substs"]); err != nil {
		return nil, err
	}
	return t, nil
}

func (d *decoder) substs(n *yaml.Node) (*ty.Substs, error) {
	s := &ty.Substs{}
	if n == nil {
		return s, nil
	}
	f, err := d.fields(n, "types", "self", "fn", "regions", "fn_regions")
	if err != nil {
		return nil, err
	}
	if s.Types[ty.TypeSpace], err = d.types(f["types"]); err != nil {
		return nil, err
	}
	if f["self"] != nil {
		self, err := d.typ(f["self"])
		if err != nil {
			return nil, err
		}
		s.Types[ty.SelfSpace] = []ty.Type{self}
	}
	if s.Types[ty.FnSpace], err = d.types(f["fn"]); err != nil {
		return nil, err
	}
	if s.Regions[ty.TypeSpace], err = d.regions(f["regions"]); err != nil {
		return nil, err
	}
	if s.Regions[ty.FnSpace], err = d.regions(f["fn_regions"]); err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decoder) traitRef(n *yaml.Node) (ty.TraitRef, error) {
	f, err := d.fields(n, "def", "substs")
	if err != nil {
		return ty.TraitRef{}, err
	}
	def, err := d.defID(f["def"])
	if err != nil {
		return ty.TraitRef{}, err
	}
	s, err := d.substs(f["substs"])
	if err != nil {
		return ty.TraitRef{}, err
	}
	return ty.TraitRef{Def: def, Substs: s}, nil
}

func (d *decoder) projectionTy(n *yaml.Node) (ty.ProjectionTy, error) {
	f, err := d.fields(n, "trait", "item")
	if err != nil {
		return ty.ProjectionTy{}, err
	}
	if f["trait"] == nil || f["item"] == nil {
		return ty.ProjectionTy{}, d.errorf(n, "projection needs trait and item")
	}
	tr, err := d.traitRef(f["trait"])
	if err != nil {
		return ty.ProjectionTy{}, err
	}
	return ty.ProjectionTy{TraitRef: tr, ItemName: f["item"].Value}, nil
}

// bareFn decodes {inputs, output, variadic, unsafe, abi}. An output of
// "!" diverges; a missing output is unit.
func (d *decoder) bareFn(n *yaml.Node) (*ty.BareFn, error) {
	f, err := d.fields(n, "inputs", "output", "variadic", "unsafe", "abi")
	if err != nil {
		return nil, err
	}
	sig := ty.FnSig{Output: ty.Converging(ty.Unit)}
	if sig.Inputs, err = d.types(f["inputs"]); err != nil {
		return nil, err
	}
	if out := f["output"]; out != nil {
		if out.Kind == yaml.ScalarNode && out.Value == "!" {
			sig.Output = ty.Diverging
		} else {
			t, err := d.typ(out)
			if err != nil {
				return nil, err
			}
			sig.Output = ty.Converging(t)
		}
	}
	if sig.Variadic, err = d.boolean(f["variadic"]); err != nil {
		return nil, err
	}
	fn := &ty.BareFn{Abi: ty.AbiRust, Sig: ty.Bind(sig)}
	unsafe, err := d.boolean(f["unsafe"])
	if err != nil {
		return nil, err
	}
	if unsafe {
		fn.Unsafety = ty.Unsafe
	}
	if abi := f["abi"]; abi != nil {
		fn.Abi = ty.Abi(abi.Value)
	}
	return fn, nil
}

func (d *decoder) fnDef(n *yaml.Node) (ty.Type, error) {
	f, err := d.fields(n, "def", "substs", "fn")
	if err != nil {
		return nil, err
	}
	if f["fn"] == nil {
		return nil, d.errorf(n, "fn_def needs fn")
	}
	t := &ty.FnDef{}
	if t.Def, err = d.defID(f["def"]); err != nil {
		return nil, err
	}
	if t.Substs, err = d.substs(f["substs"]); err != nil {
		return nil, err
	}
	if t.Fn, err = d.bareFn(f["fn"]); err != nil {
		return nil, err
	}
	return t, nil
}

// traitObject decodes {principal, builtins, region, projections}. Each
// projection is {item, ty} on the principal trait.
func (d *decoder) traitObject(n *yaml.Node) (ty.Type, error) {
	f, err := d.fields(n, "principal", "builtins", "region", "projections")
	if err != nil {
		return nil, err
	}
	if f["principal"] == nil {
		return nil, d.errorf(n, "dyn needs principal")
	}
	principal, err := d.traitRef(f["principal"])
	if err != nil {
		return nil, err
	}
	t := &ty.TraitObject{Principal: ty.Bind(principal)}

	builtins, err := d.seq(f["builtins"])
	if err != nil {
		return nil, err
	}
	for _, b := range builtins {
		bound, err := d.builtinBound(b)
		if err != nil {
			return nil, err
		}
		t.Bounds.BuiltinBounds = append(t.Bounds.BuiltinBounds, bound)
	}
	if f["region"] != nil {
		if t.Bounds.RegionBound, err = d.region(f["region"]); err != nil {
			return nil, err
		}
	}

	projections, err := d.seq(f["projections"])
	if err != nil {
		return nil, err
	}
	for _, p := range projections {
		pf, err := d.fields(p, "item", "ty")
		if err != nil {
			return nil, err
		}
		if pf["item"] == nil || pf["ty"] == nil {
			return nil, d.errorf(p, "projection bound needs item and ty")
		}
		pt, err := d.typ(pf["ty"])
		if err != nil {
			return nil, err
		}
		t.Bounds.ProjectionBounds = append(t.Bounds.ProjectionBounds, ty.Bind(ty.ProjectionPredicate{
			ProjectionTy: ty.ProjectionTy{TraitRef: principal, ItemName: pf["item"].Value},
			Ty:           pt,
		}))
	}
	return t, nil
}

func (d *decoder) builtinBound(n *yaml.Node) (ty.BuiltinBound, error) {
	for _, b := range []ty.BuiltinBound{ty.Send, ty.Sized, ty.Copy, ty.Sync} {
		if b.String() == n.Value {
			return b, nil
		}
	}
	return 0, d.errorf(n, "unknown builtin bound %q", n.Value)
}

func (d *decoder) closure(n *yaml.Node) (ty.Type, error) {
	f, err := d.fields(n, "def", "substs", "upvars")
	if err != nil {
		return nil, err
	}
	t := &ty.Closure{}
	if t.Def, err = d.defID(f["def"]); err != nil {
		return nil, err
	}
	if t.Substs.FuncSubsts, err = d.substs(f["substs"]); err != nil {
		return nil, err
	}
	if t.Substs.UpvarTys, err = d.types(f["upvars"]); err != nil {
		return nil, err
	}
	return t, nil
}

// region decodes 'static, '<empty>, a bare 'name (early bound at index 0)
// or a single-key mapping naming the region kind.
func (d *decoder) region(n *yaml.Node) (ty.Region, error) {
	if n.Kind == yaml.AliasNode {
		return d.region(n.Alias)
	}
	if n.Kind == yaml.ScalarNode {
		switch {
		case n.Value == "'static":
			return ty.Static, nil
		case n.Value == "'<empty>":
			return ty.Empty, nil
		case strings.HasPrefix(n.Value, "'"):
			return ty.EarlyBound{Space: ty.TypeSpace, Name: n.Value}, nil
		}
		return nil, d.errorf(n, "unknown region %q", n.Value)
	}

	key, v, err := d.single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "early":
		f, err := d.fields(v, "name", "space", "index")
		if err != nil {
			return nil, err
		}
		r := ty.EarlyBound{}
		if f["name"] != nil {
			r.Name = f["name"].Value
		}
		if r.Space, err = d.space(f["space"]); err != nil {
			return nil, err
		}
		idx, err := d.unsigned(f["index"])
		if err != nil {
			return nil, err
		}
		r.Index = uint32(idx)
		return r, nil
	case "late":
		f, err := d.fields(v, "depth", "bound")
		if err != nil {
			return nil, err
		}
		depth := uint64(1)
		if f["depth"] != nil {
			if depth, err = d.unsigned(f["depth"]); err != nil {
				return nil, err
			}
		}
		br, err := d.boundRegion(f["bound"])
		if err != nil {
			return nil, err
		}
		return ty.LateBound{Depth: ty.DebruijnIndex(depth), Bound: br}, nil
	case "free":
		f, err := d.fields(v, "scope", "bound")
		if err != nil {
			return nil, err
		}
		scope, err := d.unsigned(f["scope"])
		if err != nil {
			return nil, err
		}
		br, err := d.boundRegion(f["bound"])
		if err != nil {
			return nil, err
		}
		return ty.FreeRegion{Scope: ty.CodeExtent(scope), Bound: br}, nil
	case "skolemized":
		f, err := d.fields(v, "index", "bound")
		if err != nil {
			return nil, err
		}
		idx, err := d.unsigned(f["index"])
		if err != nil {
			return nil, err
		}
		br, err := d.boundRegion(f["bound"])
		if err != nil {
			return nil, err
		}
		return ty.Skolemized{Index: ty.SkolemizedIndex(idx), Bound: br}, nil
	case "scope":
		idx, err := d.unsigned(v)
		if err != nil {
			return nil, err
		}
		return ty.ScopeRegion{Extent: ty.CodeExtent(idx)}, nil
	case "var":
		idx, err := d.unsigned(v)
		if err != nil {
			return nil, err
		}
		return ty.VarRegion{Vid: ty.RegionVid{Index: uint32(idx)}}, nil
	}
	return nil, d.errorf(n, "unknown region kind %q", key)
}

// boundRegion decodes 'name, env, or {anon: N}, {fresh: N},
// {named: 'a, def: k:i}. A missing node is anonymous region 0.
func (d *decoder) boundRegion(n *yaml.Node) (ty.BoundRegion, error) {
	if n == nil {
		return ty.Anon(0), nil
	}
	if n.Kind == yaml.ScalarNode {
		switch {
		case n.Value == "env":
			return ty.BoundRegion{Kind: ty.BrEnv}, nil
		case strings.HasPrefix(n.Value, "'"):
			return ty.Named(ty.DefID{}, n.Value), nil
		}
		return ty.BoundRegion{}, d.errorf(n, "unknown bound region %q", n.Value)
	}
	f, err := d.fields(n, "anon", "fresh", "named", "def")
	if err != nil {
		return ty.BoundRegion{}, err
	}
	switch {
	case f["anon"] != nil:
		idx, err := d.unsigned(f["anon"])
		return ty.Anon(uint32(idx)), err
	case f["fresh"] != nil:
		idx, err := d.unsigned(f["fresh"])
		return ty.BoundRegion{Kind: ty.BrFresh, Index: uint32(idx)}, err
	case f["named"] != nil:
		def, err := d.defID(f["def"])
		return ty.Named(def, f["named"].Value), err
	}
	return ty.BoundRegion{}, d.errorf(n, "bound region needs anon, fresh or named")
}

func (d *decoder) predicate(n *yaml.Node) (ty.Predicate, error) {
	key, v, err := d.single(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "trait":
		tr, err := d.traitRef(v)
		if err != nil {
			return nil, err
		}
		return ty.TraitPred{Binder: ty.Bind(ty.TraitPredicate{TraitRef: tr})}, nil
	case "equate":
		ts, err := d.types(v)
		if err != nil {
			return nil, err
		}
		if len(ts) != 2 {
			return nil, d.errorf(v, "equate needs two types")
		}
		return ty.EquatePred{Binder: ty.Bind(ty.EquatePredicate{A: ts[0], B: ts[1]})}, nil
	case "projection":
		f, err := d.fields(v, "trait", "item", "ty")
		if err != nil {
			return nil, err
		}
		if f["trait"] == nil || f["item"] == nil || f["ty"] == nil {
			return nil, d.errorf(v, "projection predicate needs trait, item and ty")
		}
		tr, err := d.traitRef(f["trait"])
		if err != nil {
			return nil, err
		}
		t, err := d.typ(f["ty"])
		if err != nil {
			return nil, err
		}
		return ty.ProjectionPred{Binder: ty.Bind(ty.ProjectionPredicate{
			ProjectionTy: ty.ProjectionTy{TraitRef: tr, ItemName: f["item"].Value},
			Ty:           t,
		})}, nil
	case "type_outlives":
		f, err := d.fields(v, "ty", "region")
		if err != nil {
			return nil, err
		}
		if f["ty"] == nil || f["region"] == nil {
			return nil, d.errorf(v, "type_outlives needs ty and region")
		}
		t, err := d.typ(f["ty"])
		if err != nil {
			return nil, err
		}
		r, err := d.region(f["region"])
		if err != nil {
			return nil, err
		}
		return ty.TypeOutlivesPred{Binder: ty.Bind(ty.TypeOutlives{Ty: t, Region: r})}, nil
	case "region_outlives":
		rs, err := d.regions(v)
		if err != nil {
			return nil, err
		}
		if len(rs) != 2 {
			return nil, d.errorf(v, "region_outlives needs two regions")
		}
		return ty.RegionOutlivesPred{Binder: ty.Bind(ty.RegionOutlives{A: rs[0], B: rs[1]})}, nil
	case "well_formed":
		t, err := d.typ(v)
		if err != nil {
			return nil, err
		}
		return ty.WellFormedPred{Ty: t}, nil
	case "object_safe":
		def, err := d.defID(v)
		if err != nil {
			return nil, err
		}
		return ty.ObjectSafePred{Trait: def}, nil
	case "closure_kind":
		f, err := d.fields(v, "def", "kind")
		if err != nil {
			return nil, err
		}
		def, err := d.defID(f["def"])
		if err != nil {
			return nil, err
		}
		if f["kind"] == nil {
			return nil, d.errorf(v, "closure_kind needs kind")
		}
		kind, err := parseClosureKind(f["kind"].Value)
		if err != nil {
			return nil, d.errorf(f["kind"], "%v", err)
		}
		return ty.ClosureKindPred{Closure: def, Kind: kind}, nil
	case "rfc1592":
		inner, err := d.predicate(v)
		if err != nil {
			return nil, err
		}
		return ty.Rfc1592Pred{Inner: inner}, nil
	}
	return nil, d.errorf(n, "unknown predicate %q", key)
}

func parseClosureKind(s string) (ty.ClosureKind, error) {
	switch s {
	case "Fn":
		return ty.FnClosure, nil
	case "FnMut":
		return ty.FnMutClosure, nil
	case "FnOnce":
		return ty.FnOnceClosure, nil
	}
	return 0, fmt.Errorf("unknown call trait %q", s)
}

// ParseDefID parses "krate:index", or a bare index in the local crate.
func ParseDefID(s string) (ty.DefID, error) {
	krate, index, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		krate, index = "0", krate
	}
	k, err := strconv.ParseUint(krate, 10, 32)
	if err != nil {
		return ty.DefID{}, fmt.Errorf("invalid def id %q", s)
	}
	i, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		return ty.DefID{}, fmt.Errorf("invalid def id %q", s)
	}
	return ty.DefID{Krate: ty.CrateNum(k), Index: uint32(i)}, nil
}
