package dto

type OrganizerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Contact     string `json:"contact" validate:"required,ruphone"`
	Description string `json:"description" validate:"max=500"`
}
