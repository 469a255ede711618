package dto

type CreateContactRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=30"`
	Email       string `json:"email" binding:"required,email,max=40"`
	Description string `json:"description" binding:"required,min=1,max=250"`
	Category    int    `json:"category" binding:"required,min=1,max=10"`
}

// UpdateContactRequest doubles as the delete payload: only the id is
// required, everything else is an optional partial update.
type UpdateContactRequest struct {
	ID          string  `json:"_id" binding:"required,min=1,max=70"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=30"`
	Email       *string `json:"email" binding:"omitempty,email,max=40"`
	Description *string `json:"description" binding:"omitempty,min=1,max=250"`
	Category    *int    `json:"category" binding:"omitempty,min=1,max=10"`
}
