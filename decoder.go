// Package gnewsdecode resolves obfuscated Google News redirect URLs
// (https://news.google.com/rss/articles/<id>) back into the original
// publisher article URL. Decoding takes two sequential network calls: a GET
// of the article page to scrape per-article signing tokens, then a signed
// POST to the internal batchexecute RPC whose layered response embeds the
// target URL.
package gnewsdecode

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// Decoder holds the HTTP client shared by decode calls. It is safe for
// concurrent use; every call keeps its state on the stack.
type Decoder struct {
	client    *resty.Client
	baseURL   string
	userAgent string
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithProxy routes both network calls through the given proxy URL
// (http, https or socks5).
func WithProxy(proxyURL string) Option {
	return func(d *Decoder) {
		d.client.SetProxy(proxyURL)
	}
}

// WithTimeout overrides the default 30s per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Decoder) {
		d.client.SetTimeout(timeout)
	}
}

// WithUserAgent overrides the browser User-Agent sent on every request.
func WithUserAgent(userAgent string) Option {
	return func(d *Decoder) {
		d.userAgent = userAgent
	}
}

// NewDecoder creates a Decoder with a reusable HTTP client.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		client:    resty.New().SetTimeout(defaultTimeout),
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.client.SetHeader("User-Agent", d.userAgent)
	return d
}

// Decode resolves a single Google News redirect URL. It never returns an
// error; every failure is folded into the result with a human-readable
// message, and RPC rejections additionally carry the HTTP status, the raw
// response body and the exact payload that was sent.
//
// interval is an optional pause applied after a successful decode only, as a
// rate-limiting aid when callers loop over many URLs. Cancelling ctx during
// the pause returns the (already successful) result immediately.
func (d *Decoder) Decode(ctx context.Context, sourceURL string, interval time.Duration) DecodeResult {
	articleID, err := extractArticleID(sourceURL)
	if err != nil {
		return failure(err)
	}

	params, err := d.fetchDecodingParams(ctx, articleID)
	if err != nil {
		return failure(err)
	}

	payload, err := buildArticlePayload(params)
	if err != nil {
		return failure(err)
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", formContentType).
		SetBody(payload).
		Post(d.baseURL + batchExecutePath)
	if err != nil {
		return failure(wrapDecodeError(KindUnexpectedFetchError, "batch RPC request failed", err))
	}

	if status := resp.StatusCode(); status < 200 || status > 299 {
		return httpFailure(status, string(resp.Body()), payload)
	}

	decodedURL, err := parseDecodedURL(string(resp.Body()))
	if err != nil {
		return failure(err)
	}

	if interval > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(interval):
		}
	}

	return success(decodedURL)
}

// DecodeAll decodes urls one at a time, in order. Results line up with the
// input slice. The calls are strictly serial; interval paces them the same
// way it paces Decode. Once ctx is cancelled the remaining URLs fail without
// touching the network.
func (d *Decoder) DecodeAll(ctx context.Context, urls []string, interval time.Duration) []DecodeResult {
	results := make([]DecodeResult, 0, len(urls))
	for _, sourceURL := range urls {
		if err := ctx.Err(); err != nil {
			results = append(results, failure(wrapDecodeError(KindUnexpectedFetchError,
				"decoding cancelled", err)))
			continue
		}
		results = append(results, d.Decode(ctx, sourceURL, interval))
	}
	return results
}
