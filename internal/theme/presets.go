package theme

// DefaultPreset is used for empty or unknown preset identifiers
const DefaultPreset = "default"

var colorPresets = map[string]map[string]string{
	"default": {
		"background":         "#ffffff",
		"foreground":         "#0f172a",
		"primary":            "#2563eb",
		"primary-foreground": "#ffffff",
		"secondary":          "#f1f5f9",
		"accent":             "#f59e0b",
		"muted":              "#64748b",
	},
	"ocean": {
		"background":         "#f0f9ff",
		"foreground":         "#082f49",
		"primary":            "#0284c7",
		"primary-foreground": "#ffffff",
		"secondary":          "#e0f2fe",
		"accent":             "#14b8a6",
		"muted":              "#475569",
	},
	"sunset": {
		"background":         "#fff7ed",
		"foreground":         "#431407",
		"primary":            "#ea580c",
		"primary-foreground": "#ffffff",
		"secondary":          "#ffedd5",
		"accent":             "#db2777",
		"muted":              "#78716c",
	},
	"forest": {
		"background":         "#f7fee7",
		"foreground":         "#1a2e05",
		"primary":            "#15803d",
		"primary-foreground": "#ffffff",
		"secondary":          "#ecfccb",
		"accent":             "#ca8a04",
		"muted":              "#57534e",
	},
	"midnight": {
		"background":         "#020617",
		"foreground":         "#f8fafc",
		"primary":            "#818cf8",
		"primary-foreground": "#020617",
		"secondary":          "#1e293b",
		"accent":             "#f472b6",
		"muted":              "#94a3b8",
	},
}

var fontPresets = map[string]map[string]string{
	"default": {
		"sans":    "Inter, sans-serif",
		"heading": "Inter, sans-serif",
	},
	"classic": {
		"sans":    "Lora, serif",
		"heading": "Playfair Display, serif",
	},
	"modern": {
		"sans":    "Inter, sans-serif",
		"heading": "Poppins, sans-serif",
	},
	"corporate": {
		"sans":    "Open Sans, sans-serif",
		"heading": "Roboto, sans-serif",
	},
	"editorial": {
		"sans":    "Lato, sans-serif",
		"heading": "Merriweather, serif",
	},
	"system": {
		"sans":    "system-ui, sans-serif",
		"heading": "system-ui, sans-serif",
	},
}

var radiusPresets = map[string]map[string]string{
	"default": {"radius": "0.5rem"},
	"none":    {"radius": "0px"},
	"soft":    {"radius": "0.75rem"},
	"round":   {"radius": "1rem"},
	"pill":    {"radius": "9999px"},
}
