package user

type CreateUserInput struct {
	Username   string  `json:"username" binding:"required,min=3,max=50" example:"jchen"`
	Password   string  `json:"password" binding:"required,min=6" example:"password123"`
	Email      *string `json:"email" binding:"omitempty,email" example:"user@bank.example"`
	FullName   *string `json:"full_name" example:"Jordan Chen"`
	Role       *string `json:"role" binding:"omitempty,oneof=assessor reviewer admin" example:"assessor"`
	Department *string `json:"department" example:"IT Security Division"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password" example:"oldPass123"`
	Password    *string `json:"password" example:"newPass123"`
	Email       *string `json:"email" binding:"omitempty,email" example:"user@bank.example"`
	FullName    *string `json:"full_name" example:"Jordan Chen"`
	Role        *string `json:"role" binding:"omitempty,oneof=assessor reviewer admin" example:"reviewer"`
	Department  *string `json:"department" example:"Risk Management"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"jchen"`
	Password string `json:"password" binding:"required" example:"password123"`
}
