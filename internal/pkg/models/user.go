package models

// User is the portal-facing shape of a backend user record. The backend
// owns the record; this layer only reshapes responses into this form.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	TempPassword string `json:"tempPassword,omitempty"`
}

// UserInput carries the fields for a user create request.
type UserInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	TempPassword string `json:"tempPassword"`
}

// UserUpdate carries the fields for a user update request. TempPassword is
// only forwarded when non-empty.
type UserUpdate struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	TempPassword string `json:"tempPassword,omitempty"`
}

// RegisterRequest is the self-registration payload. Phone and Mobile are
// interchangeable; the first non-empty one wins.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
}
