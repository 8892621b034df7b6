package dto

type CreateUserInput struct {
	Username    string  `json:"username" binding:"required" example:"johndoe"`
	Password    string  `json:"password" binding:"required,min=6" example:"password123"`
	Email       *string `json:"email" binding:"omitempty,email" example:"user@example.com"`
	FullName    *string `json:"full_name" example:"John Doe"`
	IsSuperuser bool    `json:"is_superuser" example:"false"`
}

type UpdateUserInput struct {
	OldPassword *string `json:"old_password" example:"oldPass123"`
	Password    *string `json:"password" binding:"omitempty,min=6" example:"newPass123"`
	Email       *string `json:"email" binding:"omitempty,email" example:"user@example.com"`
	FullName    *string `json:"full_name" example:"John Doe"`
	IsSuperuser *bool   `json:"is_superuser" example:"false"`
	IsActive    *bool   `json:"is_active" example:"true"`
}

type UserDTO struct {
	ID          uint    `json:"id" example:"1"`
	Username    string  `json:"username" example:"johndoe"`
	Email       *string `json:"email" example:"user@example.com"`
	FullName    *string `json:"full_name" example:"John Doe"`
	IsSuperuser bool    `json:"is_superuser" example:"false"`
	IsActive    bool    `json:"is_active" example:"true"`
	CreatedAt   string  `json:"created_at" example:"2025-07-17 15:20:41"`
	UpdatedAt   string  `json:"updated_at" example:"2025-07-17 15:20:41"`
}
