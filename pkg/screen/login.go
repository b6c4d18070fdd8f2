package screen

import (
	"io"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/session"
)

type Login struct {
	base
	dial   Dialer
	holder *session.Holder
}

func NewLogin(dial Dialer, holder *session.Holder) *Login {
	return &Login{
		base:   base{out: libol.NewSubLogger("login")},
		dial:   dial,
		holder: holder,
	}
}

func (l *Login) Name() string {
	return "Login"
}

func (l *Login) Mount() {}

// Submit logs in, then asks for the user's role by username. It returns
// the path to go to, or "" when the login failed and nothing changed.
func (l *Login) Submit(username, password string) string {
	token, err := l.dial("").Login(username, password)
	if err != nil {
		l.fail(InvalidCredentials, err)
		return ""
	}
	user, err := l.dial(token).GetUser(username)
	if err != nil {
		l.fail(InvalidCredentials, err)
		return ""
	}
	role := user.Role.String()
	if err := l.holder.Set(token, role); err != nil {
		l.fail(InvalidCredentials, err)
		return ""
	}
	l.Error = ""
	l.out.Info("Login.Submit: %s as %s", username, role)
	return router.Landing(role)
}

const loginTmpl = `Login
{{- if .Error }}
error: {{ .Error }}
{{- end }}
`

func (l *Login) Render(w io.Writer, format string) error {
	view := struct {
		Error string `json:"error,omitempty" yaml:"error,omitempty"`
	}{Error: l.Error}
	return Out(w, view, format, loginTmpl)
}
