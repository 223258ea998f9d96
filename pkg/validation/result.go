package validation

// Result is the outcome of a multi-rule check. Errors lists every violated
// rule in evaluation order and is never nil.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// FieldError is a single failure attached to a form field. Field is a dotted
// path ("ageRange.max"); it is empty when the whole payload is rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
