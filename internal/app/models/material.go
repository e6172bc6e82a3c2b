package models

import "time"

// Material defines an educational material based on the 'materials' table
type Material struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    string    `json:"category" db:"category"`
	FileURL     string    `json:"fileUrl" db:"file_url"`
	UploaderID  int64     `json:"uploaderId" db:"uploader_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
