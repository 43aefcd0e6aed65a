package entity

import "errors"

var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Canvas errors
	ErrNoBackground = errors.New("no background image loaded")
	ErrNoTextLayer  = errors.New("no text layer")

	// Upload errors
	ErrNoImageFile          = errors.New("no image file provided")
	ErrUnsupportedImageType = errors.New("unsupported image type, supported: image/jpeg, image/png, image/webp")
	ErrDecodeFailed         = errors.New("image could not be decoded")
	ErrImageTooLarge        = errors.New("image file is too large")

	// Export archive errors
	ErrExportNotFound = errors.New("export not found")

	// Text layer errors
	ErrInvalidFontSize   = errors.New("invalid font size")
	ErrInvalidFontWeight = errors.New("invalid font weight")
	ErrUnknownFontFamily = errors.New("unknown font family")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
