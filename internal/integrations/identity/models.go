package identity

// AdminRole значение role в метаданных, дающее административные права
const AdminRole = "admin"

// User модель пользователя из identity-провайдера
type User struct {
	ID              string         `json:"id"`
	EmailAddresses  []EmailAddress `json:"email_addresses"`
	PublicMetadata  Metadata       `json:"public_metadata"`
	PrivateMetadata Metadata       `json:"private_metadata"`
}

// EmailAddress адрес пользователя; первый в списке считается основным
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// Metadata произвольные метаданные, из которых читается только role
type Metadata struct {
	Role string `json:"role,omitempty"`
}

// PrimaryEmail первый email пользователя или пустая строка
func (u *User) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// HasAdminRole true, если role=admin в публичных или приватных метаданных
func (u *User) HasAdminRole() bool {
	return u.PublicMetadata.Role == AdminRole || u.PrivateMetadata.Role == AdminRole
}
