package request

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingBaseURL is returned by NewFromConfig without a base URL.
	ErrMissingBaseURL = errors.New("request: missing base url")
	// ErrMissingURL is returned by Post before any I/O when Options.URL is empty.
	ErrMissingURL = errors.New("request: missing url")
	// ErrMissingFilePath is returned by Upload before any I/O when no file is given.
	ErrMissingFilePath = errors.New("request: missing file path")
	// ErrNetwork reports that the transport could not complete the exchange.
	ErrNetwork = errors.New("request: network error")
	// ErrApplication is matched by every *EnvelopeError.
	ErrApplication = errors.New("request: unsuccessful response")
	// ErrUnexpectedResponse is matched by every *ResponseError.
	ErrUnexpectedResponse = errors.New("request: unexpected upload response")
	// ErrUploadRejected is returned when the upload endpoint refuses the file with a message.
	ErrUploadRejected = errors.New("request: upload rejected")
	// ErrInvalidEnvelope is returned when a successful upload response is not a JSON envelope.
	ErrInvalidEnvelope = errors.New("request: invalid response envelope")
)

// EnvelopeError is returned when the server answers with anything but success:true.
// The envelope is kept for programmatic inspection.
type EnvelopeError struct {
	Envelope   Envelope
	StatusCode int
	// Raw is the undecoded body, useful when it was not an envelope at all.
	Raw []byte
}

func (e *EnvelopeError) Error() string {
	if e.Envelope.Msg != "" {
		return fmt.Sprintf("request: unsuccessful response: %s", e.Envelope.Msg)
	}
	return "request: unsuccessful response"
}

func (e *EnvelopeError) Unwrap() error {
	return ErrApplication
}

// ResponseError carries the raw transport response of a failed upload.
type ResponseError struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("request: unexpected upload response (status %d)", e.StatusCode)
}

func (e *ResponseError) Unwrap() error {
	return ErrUnexpectedResponse
}
