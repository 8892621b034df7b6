package dto

type TagInput struct {
	Name string `json:"name" binding:"required"`
}
