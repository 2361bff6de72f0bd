package errors

import "slices"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Tag tree errors (T001-T099)

	"T001": {
		Category: CategoryValidation,
		Message:  "Self-closing element given children",
		Detail:   "Void elements such as <br> or <img> have no closing tag and cannot contain other nodes.",
	},
	"T002": {
		Category: CategoryCycle,
		Message:  "Insertion would create a cycle",
		Detail:   "A node cannot become a descendant of itself.",
	},
	"T003": {
		Category: CategoryNotFound,
		Message:  "No matching node",
	},
	"T004": {
		Category: CategoryUsage,
		Message:  "Node instance passed as selector",
		Detail:   "Selection matches by kind or tag name, not by identity.",
	},
	"T005": {
		Category: CategoryType,
		Message:  "Unrenderable child",
		Detail:   "Children must be nodes, text or renderable values.",
	},
	"T006": {
		Category: CategoryUsage,
		Message:  "Unsupported selector type",
		Detail:   "Selectors must be a Kind or a lowercase tag name.",
	},
	"T007": {
		Category: CategoryUsage,
		Message:  "Invalid callback",
		Detail:   "A callback needs a handler function and a route registrar.",
	},
	"T008": {
		Category: CategoryValidation,
		Message:  "Table columns locked",
		Detail:   "Columns cannot change once rows have been added.",
	},
	"T009": {
		Category: CategoryUsage,
		Message:  "Attribute passed as child",
		Detail:   "Attributes are set at construction or with SetAttr.",
	},

	// Stylesheet errors (S001-S099)

	"S001": {
		Category: CategoryValidation,
		Message:  "Stylesheet has no selector",
		Detail:   "A rule set with only declarations needs a parent selector.",
	},
	"S002": {
		Category: CategoryType,
		Message:  "Unrenderable rule value",
		Detail:   "Rule values must be strings, numbers or nested rule sets.",
	},
	"S003": {
		Category: CategoryValidation,
		Message:  "Malformed declaration",
		Detail:   "Declarations must have the form 'key: value;'.",
	},
	"S004": {
		Category: CategoryValidation,
		Message:  "Invalid stylesheet document",
		Detail:   "A stylesheet document is a mapping of selectors to properties or nested mappings.",
	},

	// Export errors (E001-E099)

	"E001": {
		Category: CategoryUsage,
		Message:  "Invalid export name",
		Detail:   "Export names are relative slash-separated paths without '..' segments.",
	},
	"E002": {
		Category: CategoryCLI,
		Message:  "Export failed",
	},

	// Configuration errors (C001-C099)

	"C001": {
		Category: CategoryConfig,
		Message:  "Configuration could not be read",
	},
	"C002": {
		Category: CategoryConfig,
		Message:  "Configuration is invalid",
	},
	"C003": {
		Category: CategoryCLI,
		Message:  "Input file could not be read",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
