package responses

type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
	IsActive  bool   `json:"isActive"`
}

type LoginUser struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  UserProfile `json:"user"`
}
