package config

import (
	"testing"

	"github.com/dshills/glint/syntax"
)

func TestStyleFor(t *testing.T) {
	p := DefaultPreferences()

	styled := p.StyleFor(syntax.Keyword)
	if styled.Foreground.IsDefault() {
		t.Error("keyword style should carry a concrete color")
	}

	// A class with no entry falls back to the plain foreground.
	p.ClassStyles = map[syntax.Class]Style{}
	fallback := p.StyleFor(syntax.Keyword)
	if fallback.Foreground != p.Foreground {
		t.Errorf("fallback foreground = %+v, want %+v", fallback.Foreground, p.Foreground)
	}
}

func TestStyleForKey(t *testing.T) {
	p := DefaultPreferences()
	custom := NewStyle(ColorFromRGB(1, 2, 3))
	p.KeyStyles["comment.line.shebang"] = custom

	tests := []struct {
		name string
		key  string
		want Style
	}{
		{"exact custom key", "comment.line.shebang", custom},
		{"builtin class key", "comment.doc.annotation", p.StyleFor(syntax.DocAnnotation)},
		{"parent builtin key", "comment.doc.unknown", p.StyleFor(syntax.DocComment)},
		{"unknown key", "nothing.here", Style{Foreground: p.Foreground, Background: ColorDefault}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.StyleForKey(tt.key); got != tt.want {
				t.Errorf("StyleForKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{"six digits", "ffcc00", Color{R: 0xff, G: 0xcc, B: 0x00}, false},
		{"hash prefix", "#102030", Color{R: 0x10, G: 0x20, B: 0x30}, false},
		{"three digits", "fc0", Color{R: 0xff, G: 0xcc, B: 0x00}, false},
		{"bad length", "ffcc0", Color{}, true},
		{"bad digits", "zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorFromHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ColorFromHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestAttributes(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrItalic)

	if !a.Has(AttrBold) || !a.Has(AttrItalic) {
		t.Error("attribute set is missing added attributes")
	}
	if a.Has(AttrUnderline) {
		t.Error("attribute set has an attribute that was never added")
	}
	if a.Without(AttrBold).Has(AttrBold) {
		t.Error("Without did not remove the attribute")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(ColorFromRGB(10, 20, 30)).Bold().Underline()

	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrUnderline) {
		t.Errorf("Attributes = %v, want bold and underline", s.Attributes)
	}
	if !s.Background.IsDefault() {
		t.Error("NewStyle should leave the background at default")
	}

	bg := s.WithBackground(ColorFromRGB(1, 1, 1))
	if bg.Background.IsDefault() {
		t.Error("WithBackground did not set the background")
	}
	if s.Background != ColorDefault {
		t.Error("WithBackground mutated the receiver")
	}
}
