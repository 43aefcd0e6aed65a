package entity

import "time"

type CreateSessionResponse struct {
	ID string `json:"id"`
}

type SessionResponse struct {
	ID           string     `json:"id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	HasImage     bool       `json:"has_image"`
	Layer        *TextLayer `json:"text_layer,omitempty"`
	Font         string     `json:"font,omitempty"`
	Mode         Mode       `json:"mode"`
	Dragging     bool       `json:"dragging"`
	LastActivity time.Time  `json:"last_activity"`
}

type UploadResponse struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

type KeyRequest struct {
	Key string `json:"key" binding:"required"`
}

type PointerDownRequest struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	DisplayedWidth  float64 `json:"displayed_width"`
	DisplayedHeight float64 `json:"displayed_height"`
}

type PointerMoveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MoveResponse struct {
	Moved bool       `json:"moved"`
	Layer *TextLayer `json:"text_layer,omitempty"`
}

type OptionsResponse struct {
	FontSizes    []int    `json:"font_sizes"`
	FontFamilies []string `json:"font_families"`
	FontWeights  []int    `json:"font_weights"`
	Accept       []string `json:"accept"`
}
