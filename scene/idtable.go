// Package scene holds the identifier table and top-level Scene built up by
// parsing a SceneLang source file: every named value a SET command binds,
// the World and Lights a SPAWN command populates, and the optional
// rendering settings a USING command fixes.
package scene

import (
	"github.com/ochrevis/slray/diag"
)

// TypeTag names the kind of value bound to an identifier. IdTable.Set
// rejects redefining a name under any type, the same one or a different
// one; only a line-0 command-line override may be replaced.
type TypeTag string

const (
	TypeFloat          TypeTag = "FLOAT"
	TypeColor          TypeTag = "COLOR"
	TypePoint          TypeTag = "POINT"
	TypeList           TypeTag = "LIST"
	TypeTransformation TypeTag = "TRANSFORMATION"
	TypePigment        TypeTag = "PIGMENT"
	TypeBRDF           TypeTag = "BRDF"
	TypeMaterial       TypeTag = "MATERIAL"
	TypeShape          TypeTag = "SHAPE"
	TypeLight          TypeTag = "LIGHT"
	TypeImage          TypeTag = "IMAGE"
	TypeCamera         TypeTag = "CAMERA"
	TypePcg            TypeTag = "PCG"
	TypeRenderer       TypeTag = "RENDERER"
	TypeTracer         TypeTag = "TRACER"
)

// binding is one identifier's current value and where it was (most
// recently) defined.
type binding struct {
	value any
	loc   diag.Location
}

// IdTable is the nested type → (name → binding) table every identifier in
// a SceneLang source is registered in. The outer nesting by TypeTag lets
// lookups go straight to a type's bucket; a name is still unique across
// all buckets (see Set), so one spelling cannot be both a FLOAT and a
// MATERIAL at the same time.
type IdTable struct {
	names map[TypeTag]map[string]binding
}

// NewIdTable returns an empty IdTable.
func NewIdTable() *IdTable {
	return &IdTable{names: make(map[TypeTag]map[string]binding)}
}

// Set binds name under typ to value at loc. Identifiers are unique across
// the whole table, not just within a type bucket: a SET that finds name
// already bound is an IdentifierRedefinition error, regardless of whether
// the existing binding has the same or a different type, UNLESS that
// existing binding was declared at source line 0 (a command-line
// override) — those may always be silently shadowed by a script-level
// SET, the one shadowing exception spec.md §3/§8 carves out.
func (t *IdTable) Set(typ TypeTag, name string, value any, loc diag.Location) error {
	if existingType, existingLoc, ok := t.find(name); ok && existingLoc.Line != 0 {
		return diag.NewError(loc, "%q is already defined as a %s at %s, cannot redefine it", name, existingType, existingLoc)
	} else if ok && existingType != typ {
		// A line-0 override being shadowed by a different type is fine:
		// drop the stale binding so the name isn't left registered under
		// two buckets at once.
		delete(t.names[existingType], name)
	}
	bucket, ok := t.names[typ]
	if !ok {
		bucket = make(map[string]binding)
		t.names[typ] = bucket
	}
	bucket[name] = binding{value: value, loc: loc}
	return nil
}

// Unset removes name's binding under typ, if any. Unsetting a name that
// was never set is a no-op, matching SceneLang's tolerant UNSET semantics.
func (t *IdTable) Unset(typ TypeTag, name string) {
	if bucket, ok := t.names[typ]; ok {
		delete(bucket, name)
	}
}

// Forget removes name's binding under whichever type (if any) it is
// currently registered under. The UNSET command doesn't know a name's
// type up front, only its spelling.
func (t *IdTable) Forget(name string) {
	if typ, ok := t.typeOf(name); ok {
		delete(t.names[typ], name)
	}
}

// Entry is one identifier's full binding, used by DUMP to enumerate the
// table.
type Entry struct {
	Type  TypeTag
	Name  string
	Value any
	Loc   diag.Location
}

// Entries returns every binding currently in the table, in no particular
// order.
func (t *IdTable) Entries() []Entry {
	var out []Entry
	for typ, bucket := range t.names {
		for name, b := range bucket {
			out = append(out, Entry{Type: typ, Name: name, Value: b.value, Loc: b.loc})
		}
	}
	return out
}

// Lookup returns name's value under typ.
func (t *IdTable) Lookup(typ TypeTag, name string) (any, bool) {
	bucket, ok := t.names[typ]
	if !ok {
		return nil, false
	}
	b, ok := bucket[name]
	return b.value, ok
}

// TypeOf reports which TypeTag (if any) name is currently bound under,
// across every type bucket — used by DUMP, which is given a bare
// identifier and must discover its type before it can look up the value.
func (t *IdTable) TypeOf(name string) (TypeTag, bool) { return t.typeOf(name) }

// typeOf reports which TypeTag (if any) name is currently bound under,
// across every type bucket — used to enforce the cross-type redefinition
// rule.
func (t *IdTable) typeOf(name string) (TypeTag, bool) {
	typ, _, ok := t.find(name)
	return typ, ok
}

// find reports name's current type and declaration location, across every
// type bucket, since a name's type isn't known until it's found.
func (t *IdTable) find(name string) (TypeTag, diag.Location, bool) {
	for typ, bucket := range t.names {
		if b, ok := bucket[name]; ok {
			return typ, b.loc, true
		}
	}
	return "", diag.Location{}, false
}

// AnyTypeWith reports whether any identifier of the given type has been
// defined at all.
func (t *IdTable) AnyTypeWith(typ TypeTag) bool {
	bucket, ok := t.names[typ]
	return ok && len(bucket) > 0
}

// require is Lookup with an error that names the identifier and expected
// type on failure; RequireFloat is the typed wrapper built on it.
func (t *IdTable) require(typ TypeTag, name string, loc diag.Location) (any, error) {
	v, ok := t.Lookup(typ, name)
	if !ok {
		return nil, diag.NewError(loc, "undefined %s identifier %q", typ, name)
	}
	return v, nil
}

// RequireFloat looks up name as a FLOAT, erroring with loc if undefined.
func (t *IdTable) RequireFloat(name string, loc diag.Location) (float64, error) {
	v, err := t.require(TypeFloat, name, loc)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, diag.NewError(loc, "identifier %q is not a FLOAT", name)
	}
	return f, nil
}

// String implements fmt.Stringer for TypeTag, used in error messages.
func (t TypeTag) String() string { return string(t) }
