package request

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}
