package validation

// FieldError is a blocking rule violation tied to an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result carries the outcome of a business-rule check. Violations are data,
// not Go errors: callers get the full list of blocking errors and advisory
// warnings in one pass, and must refuse to persist when IsValid() is false.
type Result struct {
	Errors   []FieldError `json:"errors"`
	Warnings []string     `json:"warnings"`
}

func (r *Result) AddError(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

func (r *Result) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Merge folds another result into r, preserving order.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
