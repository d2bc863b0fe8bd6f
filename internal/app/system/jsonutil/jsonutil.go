// Package jsonutil writes the API's JSON responses. Error bodies always
// carry a "detail" field: a message string, or a list of field errors
// for validation failures.
package jsonutil

import (
	"net/http"

	"github.com/dalemusser/gliweb/internal/app/system/inputval"
	"github.com/dalemusser/waffle/httputil"
	"go.uber.org/zap"
)

// WriteJSON encodes v with the given status. Encode failures after the
// header is sent go to the logger installed with SetLogger.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	httputil.WriteJSON(w, status, v)
}

// SetLogger routes response encoding failures to logger.
func SetLogger(logger *zap.Logger) {
	httputil.SetJSONLogger(encodeErrLogger{logger})
}

type encodeErrLogger struct{ l *zap.Logger }

func (e encodeErrLogger) Error(msg string, _ ...any) {
	e.l.Error(msg, zap.String("component", "jsonutil"))
}

// Message is the {"message": ...} body used for acknowledgements.
type Message struct {
	Message string `json:"message"`
}

type errorBody struct {
	Detail any `json:"detail"`
}

// WriteError writes {"detail": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Detail: msg})
}

// WriteValidation writes a 422 listing every field error in res.
func WriteValidation(w http.ResponseWriter, res *inputval.Result) {
	errs := res.Errors
	if errs == nil {
		errs = []inputval.FieldError{}
	}
	WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: errs})
}

// WriteFieldError writes a 422 for a single field.
func WriteFieldError(w http.ResponseWriter, msg string, loc ...string) {
	res := &inputval.Result{}
	res.Add(msg, loc...)
	WriteValidation(w, res)
}
