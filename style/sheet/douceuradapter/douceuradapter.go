/*
Package douceuradapter is a concrete implementation of interface sheet.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"io"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/style/sheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface sheet.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface sheet.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	return &CSSStyles{*css}
}

// Parse reads a style sheet from its textual representation.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// ParseDocument reads an HTML or SVG document and merges the rules of all
// of its <style> elements into a single style sheet.
func ParseDocument(r io.Reader) (*CSSStyles, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	s := Wrap(css.NewStylesheet())
	for _, embedded := range ExtractStyleElements(doc) {
		s.AppendRules(embedded)
	}
	return s, nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface sheet.StyleSheet
func (s *CSSStyles) Empty() bool {
	return len(s.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface sheet.StyleSheet
func (s *CSSStyles) AppendRules(other sheet.StyleSheet) {
	othercss := other.(*CSSStyles)
	s.css.Rules = append(s.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules are
// skipped.
//
// Interface sheet.StyleSheet
func (s *CSSStyles) Rules() []sheet.Rule {
	rules := make([]sheet.Rule, 0, len(s.css.Rules))
	for _, r := range s.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("style sheet: skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ sheet.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface sheet.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "line-width"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "0.5"
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return style.Property(d.Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ sheet.Rule = &Rule{}

// ExtractStyleElements visits an HTML or SVG parse tree and searches for
// embedded <style>s. It returns the content of style-elements as style
// sheets, in document order. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(doc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var visit func(*html.Node)
	visit = func(h *html.Node) {
		if h.Type == html.ElementNode && (h.DataAtom == atom.Style || strings.EqualFold(h.Data, "style")) {
			if h.FirstChild != nil {
				if c, err := parser.Parse(h.FirstChild.Data); err == nil {
					sheets = append(sheets, Wrap(c))
				} else {
					tracer().Errorf("style sheet: %v", err)
				}
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			visit(ch)
		}
	}
	if doc != nil {
		visit(doc)
	}
	return sheets
}
