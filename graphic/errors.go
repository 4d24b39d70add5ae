package graphic

import "errors"

// Errors for failing operations. Operations returning one of these have
// restored the state from before the call.
var (
	ErrNotEditable    = errors.New("compound is not editable")
	ErrDerivedChild   = errors.New("derived child of blend group cannot be edited")
	ErrBlendMismatch  = errors.New("objects cannot be blended")
	ErrSteps          = errors.New("interpolation steps must be at least 2")
	ErrNotUngroupable = errors.New("object cannot be ungrouped")
	ErrNoLayer        = errors.New("no such layer")
	ErrAborted        = errors.New("transaction aborted")
	ErrNoProperties   = errors.New("object has no properties of its own")
)

// Errors for inconsistent input, i.e. errors of the caller.
var (
	ErrStaleSelection  = errors.New("selection does not match the object tree")
	ErrBlendGroupShape = errors.New("blend group must alternate controls and interpolations, starting and ending with a control")
	ErrAttached        = errors.New("object is already part of an object tree")
)
