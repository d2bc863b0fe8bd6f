// internal/app/system/inputval/result.go
package inputval

// FieldError locates one problem in a request. Loc starts with the part
// of the request ("body", "query", "path") followed by the field path.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Result collects field errors for one request.
type Result struct {
	Errors []FieldError
}

// Add records a value error at loc.
func (r *Result) Add(msg string, loc ...string) {
	r.Errors = append(r.Errors, FieldError{Loc: loc, Msg: msg, Type: "value_error"})
}

func (r *Result) HasErrors() bool { return r != nil && len(r.Errors) > 0 }
