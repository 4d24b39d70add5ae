package style

import "errors"

// Errors of the style package.
var (
	ErrBlendValue     = errors.New("property values cannot be blended")
	ErrUnknownStyle   = errors.New("no style with this name")
	ErrDuplicateStyle = errors.New("style with this name already defined")
	ErrUnnamedStyle   = errors.New("dynamic style must have a name")
	ErrUnknownKey     = errors.New("unknown style property")
	ErrCompound       = errors.New("not recognized as compound property")
	ErrCompoundValue  = errors.New("malformed value for compound property")
)
