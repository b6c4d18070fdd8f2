package screen

import (
	"io"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/schema"
)

type Register struct {
	base
	dial    Dialer
	Created *schema.User
}

func NewRegister(dial Dialer) *Register {
	return &Register{
		base: base{out: libol.NewSubLogger("register")},
		dial: dial,
	}
}

func (r *Register) Name() string {
	return "Register"
}

func (r *Register) Mount() {}

// Submit creates the account and returns the login path on success.
func (r *Register) Submit(user schema.User) string {
	created, err := r.dial("").Register(&user)
	if err != nil {
		r.fail(RegistrationFailed, err)
		return ""
	}
	r.Created = created
	r.Error = ""
	r.out.Info("Register.Submit: %s", created.Username)
	return router.Login
}

const registerTmpl = `Register
{{- if .Error }}
error: {{ .Error }}
{{- end }}
{{- with .Created }}
created {{ .Username }} ({{ .Role }}), you can log in now
{{- end }}
`

func (r *Register) Render(w io.Writer, format string) error {
	view := struct {
		Error   string       `json:"error,omitempty" yaml:"error,omitempty"`
		Created *schema.User `json:"created,omitempty" yaml:"created,omitempty"`
	}{Error: r.Error, Created: r.Created}
	return Out(w, view, format, registerTmpl)
}
