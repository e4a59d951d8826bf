package config

import (
	"github.com/dshills/glint/syntax"
)

// Preferences bundle the presentation hints for a tokenizer: a style
// per syntax class plus the toggles that change how much detail the
// scanners report. Preferences are copied when a Config is built, so a
// running tokenizer never observes later mutation.
type Preferences struct {
	// Name is the display name of the preference set.
	Name string

	// Foreground is the fallback text color for unstyled classes.
	Foreground Color

	// Background is the suggested document background color.
	Background Color

	// ClassStyles maps syntax classes to their styles.
	ClassStyles map[syntax.Class]Style

	// KeyStyles maps hierarchical class keys to styles, for keys
	// registered outside the built-in taxonomy.
	KeyStyles map[string]Style

	// MarkupAttributeDetail makes the markup tag scanner distinguish
	// attribute names and values from the tag itself. When false a
	// tag is reported as a single markup token.
	MarkupAttributeDetail bool
}

// StyleFor returns the style for a syntax class, falling back to the
// default foreground when the class has no entry.
func (p *Preferences) StyleFor(class syntax.Class) Style {
	if style, ok := p.ClassStyles[class]; ok {
		return style
	}
	return Style{
		Foreground: p.Foreground,
		Background: ColorDefault,
	}
}

// StyleForKey returns the style for a hierarchical class key such as
// "comment.doc.annotation". Exact matches win; otherwise parent keys
// are consulted before falling back to the class table.
func (p *Preferences) StyleForKey(key string) Style {
	// Walk parent keys, dropping one segment at a time.
	for len(key) > 0 {
		if style, ok := p.KeyStyles[key]; ok {
			return style
		}
		if class, ok := syntax.ClassForKey(key); ok {
			if style, found := p.ClassStyles[class]; found {
				return style
			}
		}
		i := len(key) - 1
		for i >= 0 && key[i] != '.' {
			i--
		}
		if i < 0 {
			break
		}
		key = key[:i]
	}

	return Style{
		Foreground: p.Foreground,
		Background: ColorDefault,
	}
}

// clone returns a deep copy so a Config holds its own maps.
func (p *Preferences) clone() *Preferences {
	out := *p
	out.ClassStyles = make(map[syntax.Class]Style, len(p.ClassStyles))
	for class, style := range p.ClassStyles {
		out.ClassStyles[class] = style
	}
	out.KeyStyles = make(map[string]Style, len(p.KeyStyles))
	for key, style := range p.KeyStyles {
		out.KeyStyles[key] = style
	}
	return &out
}

// DefaultPreferences returns a sensible dark preference set.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Name:                  "Default Dark",
		Foreground:            ColorFromRGB(212, 212, 212),
		Background:            ColorFromRGB(30, 30, 30),
		ClassStyles:           defaultDarkClassStyles(),
		KeyStyles:             make(map[string]Style),
		MarkupAttributeDetail: true,
	}
}

// LightPreferences returns a light preference set.
func LightPreferences() *Preferences {
	return &Preferences{
		Name:                  "Light",
		Foreground:            ColorFromRGB(0, 0, 0),
		Background:            ColorFromRGB(255, 255, 255),
		ClassStyles:           lightClassStyles(),
		KeyStyles:             make(map[string]Style),
		MarkupAttributeDetail: true,
	}
}

// defaultDarkClassStyles returns the dark style table.
func defaultDarkClassStyles() map[syntax.Class]Style {
	comment := ColorFromRGB(106, 153, 85)     // Green
	keyword := ColorFromRGB(86, 156, 214)     // Blue
	str := ColorFromRGB(206, 145, 120)        // Orange
	escape := ColorFromRGB(215, 186, 125)     // Gold
	number := ColorFromRGB(181, 206, 168)     // Light green
	identifier := ColorFromRGB(156, 220, 254) // Light blue
	operator := ColorFromRGB(212, 212, 212)   // White
	doc := ColorFromRGB(96, 139, 78)          // Dark green
	markup := ColorFromRGB(78, 201, 176)      // Teal
	attention := ColorFromRGB(244, 71, 71)    // Red

	return map[syntax.Class]Style{
		syntax.Keyword:    NewStyle(keyword),
		syntax.Identifier: NewStyle(identifier),
		syntax.Operator:   NewStyle(operator),
		syntax.Bracket:    NewStyle(operator),
		syntax.Number:     NewStyle(number),

		syntax.String:    NewStyle(str),
		syntax.Character: NewStyle(str),
		syntax.Escape:    NewStyle(escape),

		syntax.CommentLine:  NewStyle(comment).Italic(),
		syntax.CommentBlock: NewStyle(comment).Italic(),
		syntax.TaskTag:      NewStyle(attention).Bold(),

		syntax.DocComment:    NewStyle(doc).Italic(),
		syntax.DocAnnotation: NewStyle(doc).Bold(),
		syntax.DocMacro:      NewStyle(doc).Bold(),
		syntax.DocCodeBlock:  NewStyle(doc),

		syntax.MarkupTag:         NewStyle(markup),
		syntax.MarkupAttribute:   NewStyle(identifier).Italic(),
		syntax.MarkupComment:     NewStyle(comment).Italic(),
		syntax.MarkupCDATA:       NewStyle(str).Dim(),
		syntax.MarkupText:        DefaultStyle(),
		syntax.MarkupInstruction: NewStyle(markup).Dim(),
	}
}

// lightClassStyles returns the light style table.
func lightClassStyles() map[syntax.Class]Style {
	comment := ColorFromRGB(0, 128, 0)     // Green
	keyword := ColorFromRGB(0, 0, 255)     // Blue
	str := ColorFromRGB(163, 21, 21)       // Dark red
	escape := ColorFromRGB(255, 140, 0)    // Orange
	number := ColorFromRGB(9, 134, 88)     // Green
	identifier := ColorFromRGB(0, 16, 128) // Navy
	operator := ColorFromRGB(0, 0, 0)      // Black
	doc := ColorFromRGB(63, 127, 95)       // Moss
	markup := ColorFromRGB(128, 0, 128)    // Purple
	attention := ColorFromRGB(200, 0, 0)   // Red

	return map[syntax.Class]Style{
		syntax.Keyword:    NewStyle(keyword).Bold(),
		syntax.Identifier: NewStyle(identifier),
		syntax.Operator:   NewStyle(operator),
		syntax.Bracket:    NewStyle(operator),
		syntax.Number:     NewStyle(number),

		syntax.String:    NewStyle(str),
		syntax.Character: NewStyle(str),
		syntax.Escape:    NewStyle(escape),

		syntax.CommentLine:  NewStyle(comment).Italic(),
		syntax.CommentBlock: NewStyle(comment).Italic(),
		syntax.TaskTag:      NewStyle(attention).Bold(),

		syntax.DocComment:    NewStyle(doc).Italic(),
		syntax.DocAnnotation: NewStyle(doc).Bold(),
		syntax.DocMacro:      NewStyle(doc).Bold(),
		syntax.DocCodeBlock:  NewStyle(doc),

		syntax.MarkupTag:         NewStyle(markup),
		syntax.MarkupAttribute:   NewStyle(identifier).Italic(),
		syntax.MarkupComment:     NewStyle(comment).Italic(),
		syntax.MarkupCDATA:       NewStyle(str).Dim(),
		syntax.MarkupText:        DefaultStyle(),
		syntax.MarkupInstruction: NewStyle(markup).Dim(),
	}
}
