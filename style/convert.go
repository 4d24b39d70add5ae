package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color interprets a property as a color. Colors may be given by their
// SVG/X11 name or as hex values in the form #rgb or #rrggbb.
func (p Property) Color() (color.RGBA, bool) {
	s := strings.ToLower(string(p))
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if s == "grey" {
		s = "gray"
	}
	c, ok := colornames.Map[s]
	return c, ok
}

func (p Property) isColor() bool {
	_, ok := p.Color()
	return ok
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
}

// ColorProperty creates a property value for a color, in the form #rrggbb.
func ColorProperty(c color.Color) Property {
	if c == nil {
		return None
	}
	r, g, b, _ := c.RGBA()
	return Property(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// Float interprets a property as a number.
func (p Property) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(p), 64)
	return f, err == nil
}

func (p Property) isNumber() bool {
	_, ok := p.Float()
	return ok
}

// Bool interprets a property as a flag. "1", "true" and "yes" are true.
func (p Property) Bool() bool {
	switch p {
	case "1", "true", "yes":
		return true
	}
	return false
}

// FloatProperty creates a property value for a number.
func FloatProperty(f float64) Property {
	return Property(strconv.FormatFloat(f, 'g', -1, 64))
}

// Dashes interprets a property as a dash pattern, i.e. a list of numbers
// separated by blanks. The empty property is a solid line.
func (p Property) Dashes() ([]float64, bool) {
	fields := strings.Fields(string(p))
	dashes := make([]float64, 0, len(fields))
	for _, f := range fields {
		d, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		dashes = append(dashes, d)
	}
	return dashes, true
}
