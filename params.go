package gnewsdecode

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

const (
	signatureAttr = "data-n-a-sg"
	timestampAttr = "data-n-a-ts"
)

// fetchDecodingParams loads the article page and scrapes the signing tokens
// the batch RPC requires. Missing attribute values are forwarded as empty
// strings rather than rejected here; the remote endpoint produces the
// authoritative error in that case.
func (d *Decoder) fetchDecodingParams(ctx context.Context, articleID string) (decodingParams, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		Get(d.baseURL + "/articles/" + articleID)
	if err != nil {
		return decodingParams{}, wrapDecodeError(KindUnexpectedFetchError,
			"fetching decoding parameters failed", err)
	}

	if resp.IsError() {
		return decodingParams{}, newDecodeError(KindUnexpectedFetchError,
			fmt.Sprintf("fetching decoding parameters failed: HTTP %d for %s", resp.StatusCode(), articleID))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return decodingParams{}, wrapDecodeError(KindUnexpectedFetchError,
			"parsing article page failed", err)
	}

	node := findSigningNode(doc)
	if node == nil {
		return decodingParams{}, newDecodeError(KindMissingDataAttributes,
			"article page is missing the signing data attributes")
	}

	return decodingParams{
		signature: node.AttrOr(signatureAttr, ""),
		timestamp: node.AttrOr(timestampAttr, ""),
		articleID: articleID,
	}, nil
}

// findSigningNode locates the element carrying the per-article signing
// attributes. The selector is tied to the page's current markup; when Google
// changes the layout this is the only place to patch.
func findSigningNode(doc *goquery.Document) *goquery.Selection {
	node := doc.Find("c-wiz > div[jscontroller]").First()
	if node.Length() == 0 {
		return nil
	}
	return node
}
