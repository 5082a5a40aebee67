package models

import "time"

// Admin is a content-management user. Candidates taking a test are anonymous
// and identified only by their session ID.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
