package dto

// CreatePlaceReq carries the multipart form fields of a place creation.
// Bounds mirror the domain rules so bad input fails before the image
// upload happens.
type CreatePlaceReq struct {
	Title       string `validate:"required,max=120"`
	Description string `validate:"required,min=5,max=4000"`
	Address     string `validate:"required,max=300"`
}

// UpdatePlaceReq patches the mutable fields. Absent fields keep their
// current value.
type UpdatePlaceReq struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=5,max=4000"`
}

// SignupReq carries the multipart form fields of a signup.
type SignupReq struct {
	Name     string `validate:"required,max=80"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
