package schema

import "strings"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole accepts the role names case-insensitively and returns "" for
// anything else.
func ParseRole(value string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleUser:
		return RoleUser
	}
	return ""
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	Id        int64  `json:"id" yaml:"id"`
	Username  string `json:"username" yaml:"username"`
	Password  string `json:"password,omitempty" yaml:"-"`
	Email     string `json:"email" yaml:"email"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Role      Role   `json:"role" yaml:"role"`
}

// Public returns a copy without the password.
func (u User) Public() User {
	u.Password = ""
	return u
}

// UserForm is the editable part of a profile. An empty Password keeps
// the current one.
type UserForm struct {
	Email     string `json:"email" yaml:"email"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Password  string `json:"password" yaml:"-"`
}

func NewUserForm(u *User) UserForm {
	return UserForm{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Merge copies the form onto the user, leaving the password alone.
func (f UserForm) Merge(u *User) {
	u.Email = f.Email
	u.FirstName = f.FirstName
	u.LastName = f.LastName
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
