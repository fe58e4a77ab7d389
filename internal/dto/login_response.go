package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
