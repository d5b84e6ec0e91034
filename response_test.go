package gnewsdecode

import "testing"

func TestParseDecodedURL(t *testing.T) {
	body := "junk\n\n)]}'\n[[null,null,\"[\\\"ignored\\\",\\\"https://example.com/real-article\\\"]\"],0,0]"

	decoded, err := parseDecodedURL(body)
	if err != nil {
		t.Fatalf("parseDecodedURL() error = %v", err)
	}
	if decoded != "https://example.com/real-article" {
		t.Errorf("parseDecodedURL() = %q, want %q", decoded, "https://example.com/real-article")
	}
}

func TestParseDecodedURLProductionShape(t *testing.T) {
	// The live endpoint nests the data array inside a wrb.fr frame and
	// appends two metadata frames.
	body := ")]}'\n\n" +
		`[["wrb.fr","Fbv4je","[\"garturlres\",\"https://example.com/story\"]",null,null,null,"generic"],["di",23],["af.httprl",null]]`

	decoded, err := parseDecodedURL(body)
	if err != nil {
		t.Fatalf("parseDecodedURL() error = %v", err)
	}
	if decoded != "https://example.com/story" {
		t.Errorf("parseDecodedURL() = %q, want %q", decoded, "https://example.com/story")
	}
}

func TestParseDecodedURLFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind FailureKind
	}{
		{"empty body", "", KindResponseTooShort},
		{"no separator", ")]}'\n[[1,2,3],0,0]", KindResponseTooShort},
		{"not json", "x\n\n)]}'\nnot json at all", KindParsingFailed},
		{"envelope too small", "x\n\n)]}'\n[0,0]", KindMissingResponseDataArray},
		{"first element not array", "x\n\n)]}'\n[5,0,0]", KindMissingResponseDataArray},
		{"data array too short", "x\n\n)]}'\n[[1,2],0,0]", KindResponseArrayTooShort},
		{"element not a string", "x\n\n)]}'\n[[null,null,7],0,0]", KindParsingFailed},
		{"embedded not json", "x\n\n)]}'\n[[null,null,\"oops\"],0,0]", KindParsingFailed},
		{"embedded array too short", "x\n\n)]}'\n[[null,null,\"[\\\"only\\\"]\"],0,0]", KindResponseArrayTooShort},
		{"embedded element not a string", "x\n\n)]}'\n[[null,null,\"[null,7]\"],0,0]", KindParsingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := parseDecodedURL(tt.body)
			if err == nil {
				t.Fatalf("parseDecodedURL() = %q, want error", decoded)
			}

			decErr, ok := err.(*DecodeError)
			if !ok {
				t.Fatalf("parseDecodedURL() error type = %T, want *DecodeError", err)
			}
			if decErr.Kind != tt.kind {
				t.Errorf("DecodeError.Kind = %q, want %q", decErr.Kind, tt.kind)
			}
		})
	}
}
