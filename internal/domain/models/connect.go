package models

// ConnectRecord is a feedback form submission. Only FullName and Email are
// mandatory; the rest are optional and stored as-is.
type ConnectRecord struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Comment  string `json:"comment"`
}
