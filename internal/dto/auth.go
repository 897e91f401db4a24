package dto

type RegisterRequestDTO struct {
	Login      string `json:"login" validate:"required,min=3,max=50"`
	Password   string `json:"password" validate:"required,min=8"`
	UserType   string `json:"user_type,omitempty" validate:"omitempty,oneof=patient hospital_authority admin" example:"patient"`
	HospitalID int    `json:"hospital_id,omitempty" validate:"omitempty,min=1" example:"3"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
