package parser

import (
	"fmt"

	"github.com/ochrevis/slray/diag"
	"github.com/ochrevis/slray/lang/lexer"
	"github.com/ochrevis/slray/scene"
	"github.com/ochrevis/slray/shape"
	"github.com/ochrevis/slray/world"
)

// parseSpawn implements `SPAWN (shape|light)+`: each operand is either a
// Shape or Light constructor, a CSG command (which always yields a Shape),
// or a bare identifier already bound under one of those two types.
func (p *Parser) parseSpawn() error {
	spawnedAny := false
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch {
		case tok.Kind == lexer.Command && isCSGCommand(tok.Text):
			s, err := p.parseCSGByName(tok.Text, tok.Loc)
			if err != nil {
				return err
			}
			p.scene.World.Add(s)
		case tok.Kind == lexer.LiteralType && tok.Text == "Shape":
			p.lex.UnreadToken(tok)
			s, err := p.parseShape()
			if err != nil {
				return err
			}
			p.scene.World.Add(s)
		case tok.Kind == lexer.LiteralType && tok.Text == "Light":
			p.lex.UnreadToken(tok)
			l, err := p.parseLight()
			if err != nil {
				return err
			}
			p.scene.Lights.Add(l)
		case tok.Kind == lexer.Identifier:
			if v, ok := p.scene.IDs.Lookup(scene.TypeShape, tok.Text); ok {
				p.scene.World.Add(v.(shape.Shape))
			} else if v, ok := p.scene.IDs.Lookup(scene.TypeLight, tok.Text); ok {
				p.scene.Lights.Add(v.(world.PointLight))
			} else {
				return diag.NewError(tok.Loc, "identifier %q is not a SHAPE or LIGHT", tok.Text)
			}
		default:
			if !spawnedAny {
				return diag.NewError(tok.Loc, "expected a shape or light to SPAWN, got %s %q", tok.Kind, tok.Text)
			}
			p.lex.UnreadToken(tok)
			return nil
		}
		spawnedAny = true
	}
}

func isCSGCommand(text string) bool {
	switch text {
	case "UNITE", "INTERSECT", "DIFF", "FUSE":
		return true
	default:
		return false
	}
}

func (p *Parser) parseCSGByName(name string, loc diag.Location) (shape.Shape, error) {
	switch name {
	case "UNITE":
		return p.parseCSG(shape.Unite, loc)
	case "INTERSECT":
		return p.parseCSG(shape.Intersect, loc)
	case "DIFF":
		return p.parseCSG(shape.Diff, loc)
	case "FUSE":
		return p.parseCSG(shape.Fuse, loc)
	default:
		return nil, diag.NewError(loc, "%q is not a CSG command", name)
	}
}

// parseUsing implements `USING (camera|image|renderer|tracer)+`, assigning
// each to its write-once Scene field; a repeat assignment to the same
// field is SettingRedefinition.
func (p *Parser) parseUsing() error {
	assignedAny := false
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if tok.Kind != lexer.LiteralType {
			if !assignedAny {
				return diag.NewError(tok.Loc, "expected Camera, Image, Renderer or Tracer, got %s %q", tok.Kind, tok.Text)
			}
			p.lex.UnreadToken(tok)
			return nil
		}
		p.lex.UnreadToken(tok)
		switch tok.Text {
		case "Camera":
			if p.scene.Camera != nil {
				return diag.NewError(tok.Loc, "Camera is already set, cannot redefine it")
			}
			c, err := p.parseCamera()
			if err != nil {
				return err
			}
			p.scene.Camera = &c
		case "Image":
			if p.imageSizeSet {
				return diag.NewError(tok.Loc, "Image size is already set, cannot redefine it")
			}
			w, h, err := p.parseImageSize()
			if err != nil {
				return err
			}
			p.scene.ImageWidth, p.scene.ImageHeight = w, h
			p.imageSizeSet = true
		case "Renderer":
			if p.scene.Renderer.Set {
				return diag.NewError(tok.Loc, "Renderer is already set, cannot redefine it")
			}
			r, err := p.parseRendererSettings()
			if err != nil {
				return err
			}
			p.scene.Renderer = r
		case "Tracer":
			if p.scene.Tracer.Set {
				return diag.NewError(tok.Loc, "Tracer is already set, cannot redefine it")
			}
			t, err := p.parseTracerSettings()
			if err != nil {
				return err
			}
			p.scene.Tracer = t
		default:
			return diag.NewError(tok.Loc, "expected Camera, Image, Renderer or Tracer, got %s %q", tok.Kind, tok.Text)
		}
		assignedAny = true
	}
}

// parseDump implements `DUMP .(ALL|variables|world|lights|image|camera|
// renderer|tracer)` or `DUMP identifier`, writing to the Parser's sink.
func (p *Parser) parseDump() error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind == lexer.Identifier {
		typ, ok := p.scene.IDs.TypeOf(tok.Text)
		if !ok {
			return diag.NewError(tok.Loc, "undefined identifier %q", tok.Text)
		}
		v, _ := p.scene.IDs.Lookup(typ, tok.Text)
		fmt.Fprintf(p.sink, "%s %s = %v\n", typ, tok.Text, v)
		return nil
	}
	if tok.Kind != lexer.Keyword {
		return diag.NewError(tok.Loc, "expected .ALL or a DUMP target, got %s %q", tok.Kind, tok.Text)
	}
	switch tok.Text {
	case "ALL":
		scene.DumpAll(p.sink, p.scene)
	case "variables":
		scene.DumpVariables(p.sink, p.scene.IDs)
	case "world":
		scene.DumpWorld(p.sink, p.scene)
	case "lights":
		scene.DumpLights(p.sink, p.scene)
	case "image":
		scene.DumpImage(p.sink, p.scene)
	case "camera":
		scene.DumpCamera(p.sink, p.scene)
	case "renderer":
		scene.DumpRenderer(p.sink, p.scene)
	case "tracer":
		scene.DumpTracer(p.sink, p.scene)
	default:
		return diag.NewError(tok.Loc, "unknown DUMP target %q", tok.Text)
	}
	return nil
}
