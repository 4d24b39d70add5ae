package douceuradapter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'vdoc.style'.
func tracer() tracing.Trace {
	return tracing.Select("vdoc.style")
}
