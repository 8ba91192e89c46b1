package dto

import "vocab-coach/internal/render"

// ClientResponse is returned when a new client instance is created.
type ClientResponse struct {
	ClientID string         `json:"clientId"`
	Frames   []render.Frame `json:"frames"`
}

// CommandResponse answers every engine command with the render frames and
// media directives the page must apply, in order.
type CommandResponse struct {
	Frames          []render.Frame   `json:"frames"`
	MediaDirectives []MediaDirective `json:"mediaDirectives,omitempty"`
}

// MediaDirective is one command the page must forward to its media element.
type MediaDirective struct {
	Command string  `json:"command"`
	Src     string  `json:"src,omitempty"`
	Value   float64 `json:"value,omitempty"`
}

// StartCategoryRequest selects the category to start.
type StartCategoryRequest struct {
	CategoryID int `json:"categoryId"`
}

// AnswerRequest carries the option the user clicked.
type AnswerRequest struct {
	Option string `json:"option"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
