package dto

// ResourceDTO is one entry of the admin index.
type ResourceDTO struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	CanRead  bool   `json:"can_read"`
	CanWrite bool   `json:"can_write"`
}

type AdminIndexDTO struct {
	Username  string        `json:"username"`
	Role      string        `json:"role"`
	Resources []ResourceDTO `json:"resources"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

type AdminUserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type CreatePilotRequest struct {
	Username  string `json:"username" binding:"required,max=30"`
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
}

type CreateAirstripRequest struct {
	Ident  string `json:"ident" binding:"required,max=10"`
	Name   string `json:"name" binding:"required,max=100"`
	IsBase bool   `json:"is_base"`
}

type CreateAircraftTypeRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type CreateCheckoutRequest struct {
	PilotID        uint `json:"pilot_id" binding:"required"`
	AirstripID     uint `json:"airstrip_id" binding:"required"`
	AircraftTypeID uint `json:"aircraft_type_id" binding:"required"`
}
