// internal/app/system/inputval/schema.go
package inputval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"
)

const maxBodyBytes = 1 << 20

// Schema is a compiled JSON Schema for one request body.
type Schema struct {
	name string
	rs   *jsonschema.Schema
}

// Compile turns a schema document into a Schema.
func Compile(name string, doc map[string]any) (*Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", name, err)
	}
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, rs); err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, rs: rs}, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(name string, doc map[string]any) *Schema {
	s, err := Compile(name, doc)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateBytes checks body against the schema. body must be valid JSON.
func (s *Schema) ValidateBytes(ctx context.Context, body []byte) (*Result, error) {
	keyErrs, err := s.rs.ValidateBytes(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", s.name, err)
	}
	res := &Result{}
	for _, ke := range keyErrs {
		res.Errors = append(res.Errors, FieldError{
			Loc:  location("body", ke.PropertyPath),
			Msg:  ke.Message,
			Type: "value_error",
		})
	}
	return res, nil
}

// Decode reads the request body, validates it against s and unmarshals it
// into dst. A Result with errors means the client sent a bad body; the
// error return is kept for failures on the server side.
func Decode(ctx context.Context, r *http.Request, s *Schema, dst any) (*Result, error) {
	res := &Result{}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			res.Add("request body too large", "body")
			return res, nil
		}
		return nil, fmt.Errorf("read body: %w", err)
	}

	if len(body) > maxBodyBytes {
		res.Add("request body too large", "body")
		return res, nil
	}
	if !json.Valid(body) {
		res.Errors = append(res.Errors, FieldError{
			Loc:  []string{"body"},
			Msg:  "invalid JSON",
			Type: "value_error.jsondecode",
		})
		return res, nil
	}

	res, err = s.ValidateBytes(ctx, body)
	if err != nil || res.HasErrors() {
		return res, err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		res.Add(err.Error(), "body")
	}
	return res, nil
}

// location splits a JSON pointer such as "/target_role/0" into its parts.
func location(root, pointer string) []string {
	loc := []string{root}
	for _, part := range strings.Split(pointer, "/") {
		if part != "" {
			loc = append(loc, part)
		}
	}
	return loc
}
