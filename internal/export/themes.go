package export

import "github.com/wedloft/site-service/internal/entities"

// Theme is the presentation record for one template id. Rendering is fully
// data-driven: one renderer consumes these records, there is no per-theme
// markup.
type Theme struct {
	ID          entities.Template
	Name        string
	DisplayFont string
	BodyFont    string
	Background  string
	Ink         string
	Accent      string
}

var themes = map[entities.Template]Theme{
	entities.TemplateSageGreen: {
		ID:          entities.TemplateSageGreen,
		Name:        "Sage Green",
		DisplayFont: "Cormorant Garamond, serif",
		BodyFont:    "Jost, sans-serif",
		Background:  "#f4f6f0",
		Ink:         "#2e3a2c",
		Accent:      "#8a9a5b",
	},
	entities.TemplateOldMoney: {
		ID:          entities.TemplateOldMoney,
		Name:        "Old Money",
		DisplayFont: "Playfair Display, serif",
		BodyFont:    "EB Garamond, serif",
		Background:  "#f7f4ee",
		Ink:         "#1f2a24",
		Accent:      "#143d2b",
	},
	entities.TemplateMinimalist: {
		ID:          entities.TemplateMinimalist,
		Name:        "Minimalist",
		DisplayFont: "Archivo, sans-serif",
		BodyFont:    "Inter, sans-serif",
		Background:  "#ffffff",
		Ink:         "#111111",
		Accent:      "#6b6b6b",
	},
	entities.TemplateLuxuryGold: {
		ID:          entities.TemplateLuxuryGold,
		Name:        "Luxury Gold",
		DisplayFont: "Cinzel, serif",
		BodyFont:    "Montserrat, sans-serif",
		Background:  "#14110c",
		Ink:         "#f3ead7",
		Accent:      "#c9a94e",
	},
	entities.TemplateBotanical: {
		ID:          entities.TemplateBotanical,
		Name:        "Botanical",
		DisplayFont: "Fraunces, serif",
		BodyFont:    "Karla, sans-serif",
		Background:  "#f2f7f2",
		Ink:         "#24382b",
		Accent:      "#4e7d55",
	},
}

// ThemeFor returns the theme record for a template, falling back to the
// sage green theme when the order has no (or an unknown) template.
func ThemeFor(template entities.Template) Theme {
	if theme, ok := themes[template]; ok {
		return theme
	}
	return themes[entities.TemplateSageGreen]
}
