package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ListResponse envuelve listados sin paginación.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
