package gnewsdecode

import "fmt"

// FailureKind classifies what went wrong during a decode attempt.
type FailureKind string

const (
	KindInvalidURLFormat         FailureKind = "invalid_url_format"
	KindMissingDataAttributes    FailureKind = "missing_data_attributes"
	KindUnexpectedFetchError     FailureKind = "unexpected_fetch_error"
	KindHTTPError                FailureKind = "http_error"
	KindResponseTooShort         FailureKind = "response_too_short"
	KindMissingResponseDataArray FailureKind = "missing_response_data_array"
	KindResponseArrayTooShort    FailureKind = "response_array_too_short"
	KindParsingFailed            FailureKind = "parsing_failed"
	KindInvalidParameterFormat   FailureKind = "invalid_parameter_format"
)

// DecodeError is a classified pipeline failure. Callers of the library see it
// flattened into DecodeResult.Message; the Kind is for programmatic branching.
type DecodeError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(kind FailureKind, message string) *DecodeError {
	return &DecodeError{Kind: kind, Message: message}
}

func wrapDecodeError(kind FailureKind, message string, err error) *DecodeError {
	return &DecodeError{Kind: kind, Message: message, Err: err}
}
