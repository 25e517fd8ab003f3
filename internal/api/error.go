package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// genericErrorMessage is shown when the server's error body carries no
// usable detail.
const genericErrorMessage = "An error occurred"

// detailKind enumerates the known shapes of the server's `detail` field.
// The server sends either nothing, a plain string, an ordered list of
// field errors (validation failures), or a single object with a msg field.
// Anything else falls through to detailUnknown.
type detailKind int

const (
	detailNone detailKind = iota
	detailString
	detailFields
	detailObject
	detailUnknown
)

// FieldError is one entry of a structured validation failure. Loc is a
// location path into the request (e.g. ["body", "machine"]).
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// Detail is the decoded `detail` field of an error response body, modeled
// as a tagged union over the known shapes plus an unknown fallback.
type Detail struct {
	kind   detailKind
	str    string
	fields []FieldError
	msg    string
}

// errorBody is the wire shape of an error response. The detail field is
// kept raw and probed by parseDetail.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseDetail decodes a raw detail value into a Detail. It never fails:
// undecodable input yields the unknown variant.
func parseDetail(raw json.RawMessage) Detail {
	if len(raw) == 0 || string(raw) == "null" {
		return Detail{kind: detailNone}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			// An empty string carries no information; fall back to the
			// generic message.
			return Detail{kind: detailNone}
		}
		return Detail{kind: detailString, str: s}
	}

	var fields []FieldError
	if err := json.Unmarshal(raw, &fields); err == nil {
		return Detail{kind: detailFields, fields: fields}
	}

	var obj struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Msg != "" {
		return Detail{kind: detailObject, msg: obj.Msg}
	}

	return Detail{kind: detailUnknown}
}

// Message renders the detail as a single human-readable string:
//   - no detail: the generic fallback
//   - string detail: returned verbatim
//   - field errors: "<path>: <msg>" entries joined by ", " in order, where
//     the path is the dotted location without its first segment, or the
//     literal "field" when the location has fewer than two segments
//   - object detail: its msg field
//   - anything else: the generic fallback
func (d Detail) Message() string {
	switch d.kind {
	case detailString:
		return d.str
	case detailFields:
		parts := make([]string, 0, len(d.fields))
		for _, fe := range d.fields {
			field := "field"
			if len(fe.Loc) >= 2 {
				field = strings.Join(fe.Loc[1:], ".")
			}
			parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Msg))
		}
		return strings.Join(parts, ", ")
	case detailObject:
		return d.msg
	default:
		return genericErrorMessage
	}
}

// FieldErrors returns the structured validation entries, or nil when the
// detail is not a validation failure.
func (d Detail) FieldErrors() []FieldError {
	return d.fields
}

// Error is returned for any non-2xx response. It carries the HTTP status
// and the decoded error detail so callers can both classify the failure
// and surface a display string.
type Error struct {
	StatusCode int
	Method     string
	Path       string
	Detail     Detail
}

// Error implements the error interface. The message is the normalized
// detail string, suitable for direct display.
func (e *Error) Error() string {
	return e.Detail.Message()
}

// IsAuthFailure reports whether the server rejected the bearer token or
// credentials.
func (e *Error) IsAuthFailure() bool {
	return e.StatusCode == 401
}

// IsNotFound reports whether the addressed resource does not exist.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsValidation reports whether the request failed server-side validation.
func (e *Error) IsValidation() bool {
	return e.StatusCode == 422
}

// ExtractMessage returns a display string for any error coming out of the
// client. API errors render their normalized detail; nil yields an empty
// string; everything else falls back to err.Error().
func ExtractMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail.Message()
	}
	return err.Error()
}

// decodeError builds an *Error from a non-2xx response body. A body that
// is not valid JSON is treated as carrying no detail.
func decodeError(statusCode int, method, path string, body []byte) *Error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	return &Error{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Detail:     parseDetail(eb.Detail),
	}
}
