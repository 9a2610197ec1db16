package request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/minikit/core/host"
	"github.com/dmitrymomot/minikit/core/logger"
)

const (
	// UploadPath is the fixed upload endpoint, relative to the base URL.
	UploadPath = "bh/r/upload/uploadFile"
	// UploadField is the multipart field carrying the file.
	UploadField = "file"

	// FileTypeHeadImg marks an avatar upload. It is the default file type.
	FileTypeHeadImg = "head_img"
	// FileTypeDiaryImg marks an image attached to a diary entry.
	FileTypeDiaryImg = "diary_img"
)

// Upload sends the file at filePath to the upload endpoint and returns the envelope's data.
// An empty fileType means FileTypeHeadImg.
//
// The call succeeds only on HTTP 200 with success:true. A refusal that carries
// a msg is toasted and reported as ErrUploadRejected; every other failure
// returns a *ResponseError with the raw response.
func (c *Client) Upload(ctx context.Context, filePath, fileType string) (json.RawMessage, error) {
	if filePath == "" {
		return nil, ErrMissingFilePath
	}
	if fileType == "" {
		fileType = FileTypeHeadImg
	}

	start := time.Now()
	url := c.URL(UploadPath)

	resp, err := c.transport.UploadFile(ctx, host.UploadRequest{
		URL:      url,
		FilePath: filePath,
		Name:     UploadField,
		Header:   c.headers.Snapshot(),
		FormData: map[string]string{"fileType": fileType},
	})
	if err != nil {
		c.observe(methodUpload, outcomeNetworkError, start)
		c.logger.DebugContext(ctx, "upload failed",
			logger.Component("request"),
			logger.URL(url),
			logger.Error(err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNetwork, ctxErr)
		}
		return nil, ErrNetwork
	}

	c.headers.Capture(resp.Header)

	raw := &ResponseError{StatusCode: resp.StatusCode, Body: resp.Data, Header: resp.Header}
	if resp.StatusCode != http.StatusOK {
		c.observe(methodUpload, outcomeAppError, start)
		return nil, raw
	}

	env, _, err := decodeEnvelope(resp.Data)
	if err != nil {
		c.observe(methodUpload, outcomeInvalid, start)
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}

	if env.Success {
		c.observe(methodUpload, outcomeOK, start)
		c.logger.DebugContext(ctx, "upload settled",
			logger.Component("request"),
			logger.URL(url),
			logger.Key("file_type", fileType),
			logger.Duration(time.Since(start)),
		)
		return env.Data, nil
	}

	c.observe(methodUpload, outcomeAppError, start)
	if env.Msg != "" {
		c.ShowToast(env.Msg, 0)
		return nil, fmt.Errorf("%w: %s", ErrUploadRejected, env.Msg)
	}
	return nil, raw
}
