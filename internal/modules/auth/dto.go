package auth

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResult struct {
	AdminID  int64
	Username string
	Token    string
}
