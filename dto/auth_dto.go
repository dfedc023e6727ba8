package dto

type LoginInput struct {
	Token string `json:"token" binding:"required"`
}

type LoginResponse struct {
	SessionToken string `json:"sessionToken"`
	StateToken   string `json:"stateToken"`
}
