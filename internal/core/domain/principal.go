package domain

// Principal is the verified identity attached to an authenticated request.
// It is derived from token claims at verification time and never persisted.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
