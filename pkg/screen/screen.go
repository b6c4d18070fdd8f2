package screen

import (
	"io"

	"github.com/krainet/userctl/pkg/client"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
)

const (
	InvalidCredentials = "Invalid credentials"
	RegistrationFailed = "Registration failed"
	FetchUsersFailed   = "Failed to fetch users"
	FetchUserFailed    = "Failed to fetch user data"
	UpdateUserFailed   = "Failed to update user"
	DeleteUserFailed   = "Failed to delete user"
)

const (
	DeleteSelfPrompt = "Are you sure you want to delete your account?"
	DeleteUserPrompt = "Are you sure you want to delete this user?"
)

// API is the part of the user API the screens call.
type API interface {
	Login(username, password string) (string, error)
	Register(user *schema.User) (*schema.User, error)
	GetUser(username string) (*schema.User, error)
	Me() (*schema.User, error)
	ListUsers() ([]schema.User, error)
	UpdateUser(id int64, form schema.UserForm) (*schema.User, error)
	DeleteUser(id int64) error
}

// Dialer returns an API bound to token; an empty token means none.
type Dialer func(token string) API

func ClientDialer(url string) Dialer {
	base := client.New(url, "")
	return func(token string) API {
		return base.WithToken(token)
	}
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Always confirms every prompt.
var Always = ConfirmFunc(func(string) bool { return true })

type Screen interface {
	Name() string
	Mount()
	Message() string
	Render(w io.Writer, format string) error
}

type base struct {
	Error string
	out   *libol.SubLogger
}

func (b *base) Message() string {
	return b.Error
}

func (b *base) fail(message string, err error) {
	b.Error = message
	if b.out != nil {
		b.out.Warn("%s: %s", message, err)
	}
}

func confirm(c Confirmer, prompt string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(prompt)
}
