package request_models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type StudentRegistrationRequest struct {
	Name            string `json:"name" form:"name" binding:"required,max=100"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	RollNumber      string `json:"roll_number" form:"roll_number" binding:"required,max=20"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"password1" form:"password1" binding:"required"`
}

type ExternalRegistrationRequest struct {
	Name            string `json:"name" form:"name" binding:"required,max=100"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	CollegeName     string `json:"college_name" form:"college_name" binding:"required,max=100"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"password1" form:"password1" binding:"required"`
}

type OrganiserRegistrationRequest struct {
	Name            string `json:"name" form:"name" binding:"required,max=100"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"password1" form:"password1" binding:"required"`
}
