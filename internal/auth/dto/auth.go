package dto

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email,max=40"`
	Password        string `json:"password" binding:"required,min=6,max=60,containsdigit"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=40"`
	Password string `json:"password" binding:"required,min=6,max=60,containsdigit"`
}

type DeleteUserRequest struct {
	ID string `json:"id" binding:"required"`
}
