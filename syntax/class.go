// Package syntax defines the classification taxonomy and token model shared
// by every scanner in glint.
package syntax

import (
	"fmt"
	"sync"
)

// Class identifies the syntactic classification of a token.
type Class uint16

// Built-in syntax classes.
//
// Every token produced by a scanner carries exactly one Class. The set is
// closed for the built-in scanners but hosts may register additional classes
// at startup (see Register).
const (
	// Default is the fallback class for spans with no more specific
	// classification, including gaps between recognized lexemes.
	Default Class = iota

	// Code classes.
	Keyword
	Identifier
	Operator
	Bracket
	Number

	// Literal classes.
	String
	Character
	Escape

	// Comment classes.
	CommentLine
	CommentBlock
	DocComment
	DocAnnotation
	DocMacro
	DocCodeBlock
	TaskTag

	// Embedded markup classes.
	MarkupTag
	MarkupAttribute
	MarkupComment
	MarkupCDATA
	MarkupText
	MarkupInstruction

	// Sentinel for iteration over built-ins.
	builtinCount
)

// classKeys maps built-in classes to their stable string keys.
// Keys are hierarchical in the manner of editor scope names so downstream
// style resolution can fall back segment by segment.
var classKeys = []string{
	Default:    "default",
	Keyword:    "keyword",
	Identifier: "identifier",
	Operator:   "operator",
	Bracket:    "bracket",
	Number:     "number",

	String:    "string",
	Character: "character",
	Escape:    "string.escape",

	CommentLine:   "comment.line",
	CommentBlock:  "comment.block",
	DocComment:    "comment.doc",
	DocAnnotation: "comment.doc.annotation",
	DocMacro:      "comment.doc.macro",
	DocCodeBlock:  "comment.doc.code",
	TaskTag:       "comment.task",

	MarkupTag:         "markup.tag",
	MarkupAttribute:   "markup.attribute",
	MarkupComment:     "markup.comment",
	MarkupCDATA:       "markup.cdata",
	MarkupText:        "markup.text",
	MarkupInstruction: "markup.instruction",
}

// registry holds the extensible portion of the taxonomy.
type registry struct {
	mu    sync.RWMutex
	keys  []string        // index = Class, seeded with the built-ins
	byKey map[string]Class
}

var classes = newRegistry()

func newRegistry() *registry {
	r := &registry{
		keys:  make([]string, len(classKeys)),
		byKey: make(map[string]Class, len(classKeys)),
	}
	copy(r.keys, classKeys)
	for i, key := range r.keys {
		r.byKey[key] = Class(i)
	}
	return r
}

// Register adds a host-defined class with the given stable key and returns it.
// Registration is intended for process startup; duplicate keys are rejected.
func Register(key string) (Class, error) {
	classes.mu.Lock()
	defer classes.mu.Unlock()

	if key == "" {
		return Default, fmt.Errorf("register syntax class: empty key")
	}
	if c, ok := classes.byKey[key]; ok {
		return c, fmt.Errorf("register syntax class: key %q already registered", key)
	}

	c := Class(len(classes.keys))
	classes.keys = append(classes.keys, key)
	classes.byKey[key] = c
	return c, nil
}

// ClassForKey looks up a class by its stable key.
func ClassForKey(key string) (Class, bool) {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	c, ok := classes.byKey[key]
	return c, ok
}

// Classes returns all currently registered classes in identity order.
func Classes() []Class {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	out := make([]Class, len(classes.keys))
	for i := range classes.keys {
		out[i] = Class(i)
	}
	return out
}

// Key returns the stable string key for the class.
func (c Class) Key() string {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	if int(c) < len(classes.keys) {
		return classes.keys[c]
	}
	return "unknown"
}

// String returns the class key for display.
func (c Class) String() string {
	return c.Key()
}

// IsComment reports whether the class is any comment flavor, task tags and
// doc sub-spans included.
func (c Class) IsComment() bool {
	return c >= CommentLine && c <= TaskTag
}

// IsDoc reports whether the class belongs to a documentation comment.
func (c Class) IsDoc() bool {
	return c >= DocComment && c <= DocCodeBlock
}

// IsLiteral reports whether the class is a string or character literal span.
func (c Class) IsLiteral() bool {
	return c >= String && c <= Escape
}

// IsMarkup reports whether the class belongs to embedded markup.
func (c Class) IsMarkup() bool {
	return c >= MarkupTag && c <= MarkupInstruction
}
