package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Validation Errors (E101-E119)
	// ============================================

	"E101": {
		Category: CategoryValidation,
		Message:  "Invalid CSS length",
		Detail:   "A length must be a finite number followed by a supported unit, or one of the keywords auto and 0.",
	},
	"E102": {
		Category: CategoryValidation,
		Message:  "Invalid CSS color",
		Detail:   "Colors are #rgb, #rrggbb, #rrggbbaa, rgb()/rgba() with channels 0-255 and alpha 0-1, or a named color.",
	},
	"E103": {
		Category: CategoryValidation,
		Message:  "Value out of range",
		Detail:   "The numeric value is outside the range the property accepts.",
	},
	"E104": {
		Category: CategoryValidation,
		Message:  "Invalid count",
		Detail:   "Counting attributes such as cols, rows and size take a non-negative or positive integer.",
	},
	"E105": {
		Category: CategoryValidation,
		Message:  "Invalid URL",
		Detail:   "The value could not be parsed as a URL.",
	},
	"E106": {
		Category: CategoryValidation,
		Message:  "Invalid enumerated value",
		Detail:   "The value is not one of the keywords the attribute or property accepts.",
	},
	"E107": {
		Category: CategoryValidation,
		Message:  "Invalid shorthand",
		Detail:   "A shorthand takes between one and four component values.",
	},
	"E108": {
		Category: CategoryValidation,
		Message:  "Invalid attribute name",
		Detail:   "Data attribute names are non-empty, lowercase, and free of whitespace, control characters and \"'>/=.",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Failed to read configuration",
		Detail:   "vbind.yaml exists but could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is outside its allowed range.",
	},

	// ============================================
	// Export Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryExport,
		Message:  "Snapshot export failed",
		Detail:   "The rendered snapshot could not be written to its destination.",
	},
	"E131": {
		Category: CategoryExport,
		Message:  "Invalid export destination",
		Detail:   "Destinations are a file path or s3://bucket/key.",
	},

	// ============================================
	// Runtime Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryRuntime,
		Message:  "Preview server failed",
		Detail:   "The preview server stopped with an error.",
	},

	"E141": {
		Category: CategoryRuntime,
		Message:  "Invalid render option",
		Detail:   "Snapshots are rendered as html or msgpack after zero or more steps.",
	},
}
