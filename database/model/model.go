package model

// Role identifies the authorization role of an account.
type Role string

const (
	RoleProfesor      Role = "profesor"
	RoleAdministrador Role = "administrador"
)

// Account is an authenticated identity with its credential and
// authorization metadata. The password hash never leaves the server.
type Account struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"displayName"`

	// Role-specific attributes. Department and Specialty apply to
	// profesor accounts, AccessLevel to administrador accounts.
	Department  string `json:"department,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	AccessLevel string `json:"accessLevel,omitempty"`
}

// AccountView is the sanitized outward representation of an Account.
// Role-specific fields are only set when they apply to the account's role,
// never fabricated for the other role.
type AccountView struct {
	Id          int    `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Department  string `json:"department,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	AccessLevel string `json:"accessLevel,omitempty"`
}

// View returns the sanitized representation of the account.
func (a *Account) View() AccountView {
	view := AccountView{
		Id:          a.Id,
		Email:       a.Email,
		Role:        a.Role,
		DisplayName: a.Name,
	}
	switch a.Role {
	case RoleProfesor:
		view.Department = a.Department
		view.Specialty = a.Specialty
	case RoleAdministrador:
		view.AccessLevel = a.AccessLevel
	}
	return view
}
