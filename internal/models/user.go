package models

type UnknownUser struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
	Name     string  `json:"name,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Email    string  `json:"email,omitempty"`
}

type User struct {
	ID    string
	Login string
	Name  string
	Phone string
	Email string
	Hash  string
}

// Identity returns the order-matching identity of the user. The login doubles
// as the customer ID everywhere a record is keyed per customer.
func (u *User) Identity() CustomerIdentity {
	return CustomerIdentity{
		CustomerID: u.Login,
		Phone:      u.Phone,
		Name:       u.Name,
		Email:      u.Email,
	}
}
