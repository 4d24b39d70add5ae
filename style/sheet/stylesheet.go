package sheet

import "github.com/npillmayer/vdoc/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple parsing of style sheets from the registration of
// styles, we introduce an interface for stylesheets. Clients will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "line-width"
	Value(string) style.Property // property value for key, e.g. "0.5"
	IsImportant(string) bool     // is property key marked as important?
}
