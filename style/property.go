package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     line-width: 2
//
// a property value of "2" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// None is the value for empty patterns, missing arrows and missing fonts.
const None Property = "none"

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsNone checks wether a property denotes the absence of a pattern, arrow
// or font.
func (p Property) IsNone() bool {
	return p == None
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// Keys of style properties.
const (
	FillPattern   = "fill-pattern"
	FillTransform = "fill-transform"
	LinePattern   = "line-pattern"
	LineWidth     = "line-width"
	LineCap       = "line-cap"
	LineJoin      = "line-join"
	LineDashes    = "line-dashes"
	LineArrow1    = "line-arrow1"
	LineArrow2    = "line-arrow2"
	Font          = "font"
	FontSize      = "font-size"
	LineGap       = "linegap"
	WordGap       = "wordgap"
	CharGap       = "chargap"
	Align         = "align"
	VAlign        = "valign"
)

// PropertyKeys returns the keys of all known style properties, in a
// stable order.
func PropertyKeys() []string {
	keys := make([]string, len(propertyKeys))
	copy(keys, propertyKeys)
	return keys
}

var propertyKeys = []string{
	FillPattern, FillTransform,
	LinePattern, LineWidth, LineCap, LineJoin, LineDashes, LineArrow1, LineArrow2,
	Font, FontSize, LineGap, WordGap, CharGap, Align, VAlign,
}

// IsKnown is true for keys of style properties known to this package.
func IsKnown(key string) bool {
	_, ok := groupNameFromPropertyKey[key]
	return ok
}

// --- Property Groups --------------------------------------------------

// Symbolic names for string literals, denoting property groups.
const (
	PGFill = "Fill"
	PGLine = "Line"
	PGFont = "Font"
	PGX    = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("line-width") => "Line"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

var groupNameFromPropertyKey = map[string]string{
	FillPattern:   PGFill,
	FillTransform: PGFill,
	LinePattern:   PGLine,
	LineWidth:     PGLine,
	LineCap:       PGLine,
	LineJoin:      PGLine,
	LineDashes:    PGLine,
	LineArrow1:    PGLine,
	LineArrow2:    PGLine,
	Font:          PGFont,
	FontSize:      PGFont,
	LineGap:       PGFont,
	WordGap:       PGFont,
	CharGap:       PGFont,
	Align:         PGFont,
	VAlign:        PGFont,
}

// KeysOfGroup returns the keys of all properties belonging to a group.
func KeysOfGroup(groupname string) []string {
	var keys []string
	for _, k := range propertyKeys {
		if groupNameFromPropertyKey[k] == groupname {
			keys = append(keys, k)
		}
	}
	return keys
}

// normalize prepares a raw value for storage. Values are converted to
// lower case, except for font names.
func normalize(key string, p Property) Property {
	p = Property(strings.TrimSpace(string(p)))
	if key == Font {
		return p
	}
	return Property(strings.ToLower(string(p)))
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("gaps", "1.2 1")
// will return
//    "linegap" => "1.2"
//    "wordgap" => "1"
//    "chargap" => "1.2"
//
// and
//    SplitCompoundProperty("line", "2 red")
// will return
//    "line-width"   => "2"
//    "line-pattern" => "red"
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "gaps":
		return feazeCompound3(fields)
	case "line":
		return splitLine(fields)
	case "arrows":
		if len(fields) == 1 {
			fields = append(fields, fields[0])
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("expecting 1 or 2 values for arrows: %w", ErrCompoundValue)
		}
		return []KeyValue{{LineArrow1, Property(fields[0])}, {LineArrow2, Property(fields[1])}}, nil
	}
	return nil, fmt.Errorf("%s: %w", key, ErrCompound)
}

// ExpandProperty returns key and value unchanged for a known property key,
// and the split components for a compound property.
func ExpandProperty(key string, value Property) ([]KeyValue, error) {
	if IsKnown(key) {
		return []KeyValue{{Key: key, Value: value}}, nil
	}
	return SplitCompoundProperty(key, value)
}

// gaps distribute like margins in CSS: 1 value sets all, with 2 values the
// first one is used for line and char gaps.
func feazeCompound3(fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 3 {
		return nil, fmt.Errorf("expecting 1-3 values for gaps: %w", ErrCompoundValue)
	}
	r := make([]KeyValue, 3)
	r[0] = KeyValue{LineGap, Property(fields[0])}
	switch l {
	case 1:
		r[1] = KeyValue{WordGap, Property(fields[0])}
		r[2] = KeyValue{CharGap, Property(fields[0])}
	case 2:
		r[1] = KeyValue{WordGap, Property(fields[1])}
		r[2] = KeyValue{CharGap, Property(fields[0])}
	case 3:
		r[1] = KeyValue{WordGap, Property(fields[1])}
		r[2] = KeyValue{CharGap, Property(fields[2])}
	}
	return r, nil
}

func splitLine(fields []string) ([]KeyValue, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("expecting values for line: %w", ErrCompoundValue)
	}
	var r []KeyValue
	for _, f := range fields {
		p := Property(f)
		switch {
		case p.IsNone():
			r = append(r, KeyValue{LinePattern, None})
		case p.isNumber():
			r = append(r, KeyValue{LineWidth, p})
		case p.isColor():
			r = append(r, KeyValue{LinePattern, p})
		case p == "butt" || p == "round" || p == "square":
			r = append(r, KeyValue{LineCap, p})
		default:
			return nil, fmt.Errorf("cannot interpret %q in line: %w", f, ErrCompoundValue)
		}
	}
	return r, nil
}
