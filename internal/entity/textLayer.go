package entity

// DefaultFontFamily is used when a layer has no family set.
const DefaultFontFamily = "sans-serif"

// DefaultFontWeight is used when a layer has no weight set.
const DefaultFontWeight = 400

var (
	FontSizes    = []int{300, 400, 500, 600, 700, 800, 900, 1000}
	FontFamilies = []string{
		"Inter",
		"Roboto",
		"Open Sans",
		"Noto Sans JP",
		"Dela Gothic One",
		"Zen Kaku Gothic New",
	}
	FontWeights = []int{100, 200, 300, 400, 500, 600, 700, 800, 900}
)

// TextLayer is the single overlay text element. X, Y is the center of the whole text block.
type TextLayer struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FontSize   int     `json:"font_size"`
	FontFamily string  `json:"font_family,omitempty"`
	FontWeight int     `json:"font_weight,omitempty"`
}

// Family returns the font family, falling back to the generic sans-serif family.
func (l TextLayer) Family() string {
	if l.FontFamily == "" {
		return DefaultFontFamily
	}
	return l.FontFamily
}

// Weight returns the font weight, falling back to 400.
func (l TextLayer) Weight() int {
	if l.FontWeight == 0 {
		return DefaultFontWeight
	}
	return l.FontWeight
}

// TextEdit carries the fields of a text layer edit; nil fields are left unchanged.
type TextEdit struct {
	Text       *string `json:"text"`
	FontSize   *int    `json:"font_size"`
	FontFamily *string `json:"font_family"`
	FontWeight *int    `json:"font_weight"`
}
