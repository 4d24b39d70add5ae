/*
Package sheet loads named dynamic styles from style sheets.

Style sheets use a CSS-like syntax. Every class rule defines a named
style, a rule for the universal selector or for :root sets document
defaults:

    :root  { line-width: 0.5 }
    .thin  { line-width: 0.2; line-pattern: gray }
    .alert, .error { line: 2 red; fill-pattern: #fee }

Compound properties like "line" or "gaps" are split into their components
(see style.SplitCompoundProperty).

Parsing is de-coupled from interpreting the rules by interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'vdoc.style'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.style")
}
