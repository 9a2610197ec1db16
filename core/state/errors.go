package state

import "errors"

// ErrEmptyShareQR is returned when rendering a share QR that has not been set.
var ErrEmptyShareQR = errors.New("state: share qr is empty")
