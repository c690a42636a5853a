package response

import "facility-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken  string                      `json:"accessToken"`
	RefreshToken string                      `json:"refreshToken"`
	User         *queries.AuthorizedUserView `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
