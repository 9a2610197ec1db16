package request

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/minikit/core/logger"
	"github.com/dmitrymomot/minikit/pkg/async"
)

const (
	// FormIDPath reports UI form identifiers.
	FormIDPath = "bh/r/stat/addFormId"
	// StatLogPath receives analytics pings.
	StatLogPath = "bh/r/stat/addStatLog"

	// DevToolFormID is contained in every placeholder form id produced by the developer tool.
	DevToolFormID = "the formId"

	// DefaultStatSource and DefaultStatBizType tag analytics pings.
	DefaultStatSource  = "minibhapp"
	DefaultStatBizType = "YBXG"
)

// AddFormID reports formID in the background. Placeholder ids from the developer
// tool are skipped without contacting the transport.
//
// The call is best-effort: callers may drop the returned future, and its error
// is only informative.
func (c *Client) AddFormID(ctx context.Context, formID string) *async.ExecFuture {
	if strings.Contains(formID, DevToolFormID) {
		c.logger.DebugContext(ctx, "skipping placeholder form id",
			logger.Component("request"),
			logger.Key("form_id", formID),
		)
		return async.Done(nil)
	}

	return async.Exec(ctx, formID, func(ctx context.Context, id string) error {
		_, err := c.Get(ctx, Options{URL: FormIDPath, Data: map[string]string{"formId": id}})
		return err
	})
}

// Log sends record as query parameters to the analytics endpoint in the
// background. A nil or empty record is a no-op.
//
// Like AddFormID the call is best-effort and failure-silent by contract.
func (c *Client) Log(ctx context.Context, record map[string]any) *async.ExecFuture {
	if len(record) == 0 {
		return async.Done(nil)
	}

	path := c.statPath(record)
	return async.Exec(ctx, path, func(ctx context.Context, p string) error {
		_, err := c.Get(ctx, Options{URL: p})
		return err
	})
}

// statPath builds the analytics URL. Record keys are sorted so pings are reproducible.
func (c *Client) statPath(record map[string]any) string {
	var b strings.Builder
	b.WriteString(StatLogPath)
	b.WriteString("?t=")
	b.WriteString(strconv.FormatInt(c.now().UnixMilli(), 10))
	b.WriteString("&source=")
	b.WriteString(encodeComponent(c.statSource))
	b.WriteString("&bizType=")
	b.WriteString(encodeComponent(c.statBizType))

	keys := make([]string, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		b.WriteByte('&')
		b.WriteString(encodeComponent(k))
		b.WriteByte('=')
		b.WriteString(encodeComponent(stringify(record[k])))
	}
	return b.String()
}

// encodeComponent percent-encodes s, using %20 for spaces.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
