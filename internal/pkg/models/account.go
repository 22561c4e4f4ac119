package models

// Account is the portal-facing shape of a backend account record.
type Account struct {
	AccountID    string `json:"accountId,omitempty"`
	ClientName   string `json:"clientName"`
	AccountName  string `json:"accountName"`
	GSTNumber    string `json:"gstNumber,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Status       string `json:"status,omitempty"`
}

// AccountInput carries the fields for an account create request.
type AccountInput struct {
	ClientName   string `json:"clientName"`
	AccountName  string `json:"accountName"`
	GSTNumber    string `json:"gstNumber"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}
