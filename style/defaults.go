package style

// Values for line caps, line joins and text alignment.
const (
	CapButt    Property = "butt"
	CapRound   Property = "round"
	CapSquare  Property = "square"
	JoinMiter  Property = "miter"
	JoinRound  Property = "round"
	JoinBevel  Property = "bevel"
	AlignLeft  Property = "left"
	AlignBase  Property = "base"
	SolidBlack Property = "black"
)

var factoryDefaults = map[string]Property{
	FillPattern:   None,
	FillTransform: "1",
	LinePattern:   SolidBlack,
	LineWidth:     "0.283286",
	LineCap:       CapButt,
	LineJoin:      JoinMiter,
	LineDashes:    NullStyle,
	LineArrow1:    None,
	LineArrow2:    None,
	Font:          None,
	FontSize:      "12",
	LineGap:       "1",
	WordGap:       "1",
	CharGap:       "1",
	Align:         AlignLeft,
	VAlign:        AlignBase,
}

// FactoryDefault returns the built-in default value for a property key.
// Unknown keys return NullStyle and false.
func FactoryDefault(key string) (Property, bool) {
	p, ok := factoryDefaults[key]
	return p, ok
}

// FactoryDefaults creates a private layer holding the built-in default
// values of all known properties.
func FactoryDefaults() *Layer {
	l := NewLayer()
	for k, v := range factoryDefaults {
		l.props[k] = v
	}
	return l
}

// TextDefaults creates a private layer with defaults suitable for text
// objects: filled black, without outline.
func TextDefaults() *Layer {
	l := FactoryDefaults()
	l.props[FillPattern] = SolidBlack
	l.props[LinePattern] = None
	return l
}
