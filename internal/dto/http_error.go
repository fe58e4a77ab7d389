package dto

// HTTPError is the shared error response body.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}
