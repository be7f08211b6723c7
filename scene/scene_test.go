package scene

import (
	"testing"

	"github.com/ochrevis/slray/diag"
)

func TestIdTableSetAndLookup(t *testing.T) {
	tbl := NewIdTable()
	if err := tbl.Set(TypeFloat, "x", 3.5, diag.Location{File: "f", Line: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := tbl.Lookup(TypeFloat, "x")
	if !ok || v.(float64) != 3.5 {
		t.Errorf("Lookup: got (%v,%v) want (3.5,true)", v, ok)
	}
}

func TestIdTableSameTypeRedefinitionErrors(t *testing.T) {
	tbl := NewIdTable()
	loc := diag.Location{File: "f", Line: 1}
	if err := tbl.Set(TypeFloat, "x", 1.0, loc); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tbl.Set(TypeFloat, "x", 2.0, loc); err == nil {
		t.Error("expected IdentifierRedefinition re-SETting x at a non-zero line, even under the same type")
	}
}

func TestIdTableCommandLineOverrideShadowedByScript(t *testing.T) {
	tbl := NewIdTable()
	cliLoc := diag.Location{File: "<override>", Line: 0}
	if err := tbl.Set(TypeFloat, "x", 1.0, cliLoc); err != nil {
		t.Fatalf("Set: %v", err)
	}
	scriptLoc := diag.Location{File: "f", Line: 5}
	if err := tbl.Set(TypeFloat, "x", 2.0, scriptLoc); err != nil {
		t.Fatalf("script SET should silently shadow a line-0 override: %v", err)
	}
	v, _ := tbl.Lookup(TypeFloat, "x")
	if v.(float64) != 2.0 {
		t.Errorf("got %v want 2.0", v)
	}
	// A further SET at a real line is now a genuine redefinition.
	if err := tbl.Set(TypeFloat, "x", 3.0, scriptLoc); err == nil {
		t.Error("expected IdentifierRedefinition once the script itself owns the binding")
	}
}

func TestIdTableCrossTypeRedefinitionErrors(t *testing.T) {
	tbl := NewIdTable()
	loc := diag.Location{File: "f", Line: 1}
	if err := tbl.Set(TypeFloat, "x", 1.0, loc); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := tbl.Set(TypeColor, "x", "not a color", loc); err == nil {
		t.Error("expected an error redefining x as a different type")
	}
}

func TestIdTableUnset(t *testing.T) {
	tbl := NewIdTable()
	loc := diag.Location{File: "f", Line: 1}
	tbl.Set(TypeFloat, "x", 1.0, loc)
	tbl.Unset(TypeFloat, "x")
	if _, ok := tbl.Lookup(TypeFloat, "x"); ok {
		t.Error("expected x to be gone after Unset")
	}
	tbl.Unset(TypeFloat, "never-set")
}

func TestIdTableAnyTypeWith(t *testing.T) {
	tbl := NewIdTable()
	if tbl.AnyTypeWith(TypeShape) {
		t.Error("expected no SHAPE identifiers yet")
	}
	tbl.Set(TypeShape, "s", "a shape", diag.Location{File: "f", Line: 1})
	if !tbl.AnyTypeWith(TypeShape) {
		t.Error("expected a SHAPE identifier now")
	}
}

func TestIdTableRequireFloat(t *testing.T) {
	tbl := NewIdTable()
	loc := diag.Location{File: "f", Line: 1}
	tbl.Set(TypeFloat, "x", 4.0, loc)
	f, err := tbl.RequireFloat("x", loc)
	if err != nil || f != 4.0 {
		t.Errorf("got (%v,%v) want (4.0,nil)", f, err)
	}
	if _, err := tbl.RequireFloat("missing", loc); err == nil {
		t.Error("expected an error for an undefined FLOAT")
	}
	tbl.Set(TypeColor, "c", "x", loc)
	if _, err := tbl.RequireFloat("c", loc); err == nil {
		t.Error("expected an error for a non-FLOAT identifier")
	}
}

func TestNewSceneDefaults(t *testing.T) {
	s := New()
	if s.ImageWidth != 640 || s.ImageHeight != 480 {
		t.Errorf("got %dx%d want 640x480", s.ImageWidth, s.ImageHeight)
	}
	if s.IDs == nil || s.World == nil || s.Lights == nil {
		t.Error("expected New to populate IDs, World and Lights")
	}
	if s.Renderer.Set || s.Tracer.Set {
		t.Error("expected Renderer and Tracer settings to start unset")
	}
}

func TestParseOverridesEmpty(t *testing.T) {
	tbl := NewIdTable()
	if err := ParseOverrides("", tbl); err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
}

func TestParseOverridesBindsFloats(t *testing.T) {
	tbl := NewIdTable()
	if err := ParseOverrides("width=10, height = 20.5", tbl); err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	w, ok := tbl.Lookup(TypeFloat, "width")
	if !ok || w.(float64) != 10 {
		t.Errorf("width: got (%v,%v)", w, ok)
	}
	h, ok := tbl.Lookup(TypeFloat, "height")
	if !ok || h.(float64) != 20.5 {
		t.Errorf("height: got (%v,%v)", h, ok)
	}
}

func TestParseOverridesMalformedEntry(t *testing.T) {
	tbl := NewIdTable()
	if err := ParseOverrides("nope", tbl); err == nil {
		t.Error("expected an error for an entry without '='")
	}
}

func TestParseOverridesBadNumber(t *testing.T) {
	tbl := NewIdTable()
	if err := ParseOverrides("x=abc", tbl); err == nil {
		t.Error("expected an error for a non-numeric override value")
	}
}

func TestParseOverridesCrossTypeConflict(t *testing.T) {
	tbl := NewIdTable()
	tbl.Set(TypeColor, "x", "some color", diag.Location{File: "f", Line: 1})
	if err := ParseOverrides("x=1", tbl); err == nil {
		t.Error("expected an error overriding a name already bound to a different type")
	}
}
