package dto

// CreateMaterialRequest represents the multipart material upload form.
// The file itself travels as the "file" part.
type CreateMaterialRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"required"`
}
