package gnewsdecode

import (
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	defaultBaseURL   = "https://news.google.com"
	batchExecutePath = "/_/DotsSplashUi/data/batchexecute"
	formContentType  = "application/x-www-form-urlencoded;charset=UTF-8"

	// rpcMethodID names the remote procedure that resolves a garturlreq.
	rpcMethodID = "Fbv4je"
)

// defaultUserAgent mimics a desktop Chrome browser. The batchexecute endpoint
// rejects requests without a realistic User-Agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

// garturlreqTemplate is the inner request array the endpoint expects. The
// leading constant block (locale US:en, "X" and null placeholders) must be
// reproduced verbatim or the RPC refuses to resolve the article.
const garturlreqTemplate = `["garturlreq",[["X","X",["X","X"],null,null,1,1,"US:en",null,1,null,null,null,null,null,0,1],"X","X",1,[1,1,1],1,1,null,0,0,null,0],"%s",%s,"%s"]`

// buildArticlePayload serializes the signed garturlreq envelope into the
// f.req form body. Pure: identical params always yield identical bytes.
//
// The inner array is formatted as text first and then embedded as a string
// element of the outer array, so JSON encoding of the outer array provides
// the required quote escaping. An empty timestamp produces an inner array the
// endpoint will reject, matching the upstream contract of forwarding empty
// signing tokens instead of failing early.
func buildArticlePayload(params decodingParams) (string, error) {
	inner := fmt.Sprintf(garturlreqTemplate, params.articleID, params.timestamp, params.signature)

	envelope := [][][]interface{}{{{rpcMethodID, inner}}}
	raw, err := json.Marshal(envelope)
	if err != nil {
		return "", wrapDecodeError(KindInvalidParameterFormat,
			"encoding batch RPC payload failed", err)
	}

	return "f.req=" + url.QueryEscape(string(raw)), nil
}
