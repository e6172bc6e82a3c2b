package dto

// CreateSchoolRequest represents school creation data
type CreateSchoolRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PhoneNumber   string `json:"phoneNumber"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
}

// UpdateSchoolRequest replaces a school's mutable fields
type UpdateSchoolRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PhoneNumber   string `json:"phoneNumber"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
}

// UpdateSchoolAddressRequest replaces only the address field
type UpdateSchoolAddressRequest struct {
	Address string `json:"address" binding:"required"`
}
