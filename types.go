package gnewsdecode

import "fmt"

// Diagnostic carries the raw request/response context of a failed RPC call so
// callers can debug rejections without re-issuing the request.
type Diagnostic struct {
	HTTPStatus     int
	ResponseBody   string
	RequestPayload string
}

// DecodeResult is the only output type of the decoder. Exactly one of the two
// shapes is ever populated: OK=true with DecodedURL, or OK=false with Message
// and an optional Diagnostic.
type DecodeResult struct {
	OK         bool
	DecodedURL string
	Message    string
	Diagnostic *Diagnostic
}

// decodingParams are the per-article signing tokens scraped from the article
// page. Empty signature/timestamp values are forwarded rather than rejected;
// the remote endpoint is the authority on their validity.
type decodingParams struct {
	signature string
	timestamp string
	articleID string
}

func success(decodedURL string) DecodeResult {
	return DecodeResult{OK: true, DecodedURL: decodedURL}
}

func failure(err error) DecodeResult {
	return DecodeResult{Message: err.Error()}
}

func httpFailure(status int, body, payload string) DecodeResult {
	return DecodeResult{
		Message: fmt.Sprintf("Request failed with status code: %d", status),
		Diagnostic: &Diagnostic{
			HTTPStatus:     status,
			ResponseBody:   body,
			RequestPayload: payload,
		},
	}
}
