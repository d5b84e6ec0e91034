package gnewsdecode

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Older Google News identifiers embed the publisher URL directly as a
// length-prefixed field inside a base64url payload. These framing bytes
// delimit that field.
const (
	legacyPrefix = "\x08\x13\x22"
	legacySuffix = "\xd2\x01\x00"
)

// DecodeLegacy recovers the publisher URL from the identifier payload itself,
// without any network round trip. It only works for identifiers minted before
// Google switched to signed lookups; newer identifiers carry no URL and
// require Decoder.Decode.
func DecodeLegacy(sourceURL string) (string, error) {
	articleID, err := extractArticleID(sourceURL)
	if err != nil {
		return "", err
	}

	padded := articleID
	if rem := len(padded) % 4; rem != 0 {
		padded += strings.Repeat("=", 4-rem)
	}

	raw, err := base64.URLEncoding.DecodeString(padded)
	if err != nil {
		return "", fmt.Errorf("decoding article identifier: %w", err)
	}

	payload := strings.TrimPrefix(string(raw), legacyPrefix)
	payload = strings.TrimSuffix(payload, legacySuffix)
	if payload == "" {
		return "", fmt.Errorf("article identifier has an empty payload")
	}

	// The URL field starts with a one- or two-byte varint length.
	data := []byte(payload)
	length := int(data[0])
	offset := 1
	if length >= 0x80 {
		if len(data) < 2 {
			return "", fmt.Errorf("article identifier payload is truncated")
		}
		length = length - 0x80 + int(data[1])<<7
		offset = 2
	}

	if len(data) < offset+length {
		return "", fmt.Errorf("article identifier payload is truncated")
	}

	decodedURL := string(data[offset : offset+length])
	if !strings.HasPrefix(decodedURL, "http") {
		return "", fmt.Errorf("article identifier does not embed a URL")
	}

	return decodedURL, nil
}
