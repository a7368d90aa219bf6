package product

import "strings"

// FieldError pairs a field name with a human-readable message, matching
// the `details` entries of the validation error response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	maxNameLength        = 200
	minDescriptionLength = 10
	maxDescriptionLength = 2000
	maxPrice             = 1_000_000
	maxCategoryLength    = 100
)

// Validate checks p against the field constraints and returns one entry
// per violated constraint. An empty slice means the product is valid.
// The same rules are mirrored client-side in public/js/generator.js, but
// this copy is the authoritative one.
func Validate(p Product) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{"name", "Product name is required"})
	} else if len(p.Name) > maxNameLength {
		errs = append(errs, FieldError{"name", "Product name must be 200 characters or less"})
	}

	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, FieldError{"description", "Description is required"})
	} else if len(p.Description) < minDescriptionLength {
		errs = append(errs, FieldError{"description", "Description must be at least 10 characters"})
	} else if len(p.Description) > maxDescriptionLength {
		errs = append(errs, FieldError{"description", "Description must be 2000 characters or less"})
	}

	if p.Price < 0 {
		errs = append(errs, FieldError{"price", "Price must be a positive number"})
	} else if p.Price > maxPrice {
		errs = append(errs, FieldError{"price", "Price must be less than $1,000,000"})
	}

	if len(p.Category) > maxCategoryLength {
		errs = append(errs, FieldError{"category", "Category must be 100 characters or less"})
	}

	if len(p.Platforms) == 0 {
		errs = append(errs, FieldError{"platforms", "Select at least one platform"})
	}

	return errs
}
