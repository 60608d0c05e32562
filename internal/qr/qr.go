// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package qr renders generated keys as QR codes, either as PNG files or
// as a compact block drawing for terminal display.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels when no size is given.
const DefaultSize = 256

// WritePNG renders text as a QR code PNG at path. A size of zero or less
// selects DefaultSize.
func WritePNG(text, path string, size int) error {
	if text == "" {
		return fmt.Errorf("nothing to encode as a qr code")
	}
	if size <= 0 {
		size = DefaultSize
	}
	if err := qrcode.WriteFile(text, qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("write qr code %s: %w", path, err)
	}
	return nil
}

// Terminal renders text as a half-height block drawing suitable for
// printing to a terminal.
func Terminal(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("nothing to encode as a qr code")
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("render qr code: %w", err)
	}
	return q.ToSmallString(false), nil
}
