// Package qrcode renders QR codes as PNG images or base64 data URIs.
//
// Images use Medium error correction (about 15% recovery), which keeps codes
// readable on phone screens and printed posters alike.
//
//	png, err := qrcode.Generate("https://example.com/share?u=42", 256)
//
//	uri, err := qrcode.GenerateBase64Image(shareQR, 0) // default size
//	// <img src="{{ uri }}">
//
// A size of zero or less falls back to DefaultSize. Empty content is rejected
// with ErrEmptyContent.
package qrcode
