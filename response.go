package gnewsdecode

import (
	"encoding/json"
	"strings"
)

// antiHijackPrefix is prepended by the endpoint to keep the body from being
// executable as a script tag. It must be stripped before JSON parsing.
const antiHijackPrefix = ")]}'"

// parseDecodedURL unwraps the layered batchexecute response and returns the
// publisher URL. The envelope is a JSON array whose last two elements are
// trailing metadata; the first remaining element holds, at index 2, a
// JSON-encoded string that itself contains the array with the URL at index 1.
// The indices and the drop-last-two step mirror the remote wire format and
// must not be "cleaned up".
func parseDecodedURL(body string) (string, error) {
	parts := strings.SplitN(body, "\n\n", 2)
	if len(parts) < 2 {
		return "", newDecodeError(KindResponseTooShort,
			"response body is missing the envelope separator")
	}

	payload := strings.TrimSpace(parts[1])
	payload = strings.TrimSpace(strings.TrimPrefix(payload, antiHijackPrefix))

	var envelope []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return "", wrapDecodeError(KindParsingFailed, "parsing response envelope failed", err)
	}

	// The final two elements are trailing envelope metadata.
	if len(envelope) <= 2 {
		return "", newDecodeError(KindMissingResponseDataArray,
			"response envelope has no data array")
	}
	trimmed := envelope[:len(envelope)-2]

	var data []json.RawMessage
	if err := json.Unmarshal(trimmed[0], &data); err != nil {
		return "", wrapDecodeError(KindMissingResponseDataArray,
			"response envelope has no data array", err)
	}

	if len(data) < 3 {
		return "", newDecodeError(KindResponseArrayTooShort,
			"response data array is too short")
	}

	var quoted string
	if err := json.Unmarshal(data[2], &quoted); err != nil {
		return "", wrapDecodeError(KindParsingFailed,
			"response data element is not a JSON string", err)
	}

	var result []json.RawMessage
	if err := json.Unmarshal([]byte(quoted), &result); err != nil {
		return "", wrapDecodeError(KindParsingFailed,
			"parsing embedded result array failed", err)
	}

	if len(result) < 2 {
		return "", newDecodeError(KindResponseArrayTooShort,
			"embedded result array is too short")
	}

	var decodedURL string
	if err := json.Unmarshal(result[1], &decodedURL); err != nil {
		return "", wrapDecodeError(KindParsingFailed,
			"embedded result is not a URL string", err)
	}

	return decodedURL, nil
}
