package screen

import (
	"io"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/session"
)

// Profile lets the logged-in user edit or delete their own account.
type Profile struct {
	base
	dial    Dialer
	holder  *session.Holder
	confirm Confirmer
	User    *schema.User
	Form    schema.UserForm
}

func NewProfile(dial Dialer, holder *session.Holder, confirm Confirmer) *Profile {
	return &Profile{
		base:    base{out: libol.NewSubLogger("profile")},
		dial:    dial,
		holder:  holder,
		confirm: confirm,
	}
}

func (p *Profile) Name() string {
	return "User Profile"
}

func (p *Profile) api() API {
	return p.dial(p.holder.Token())
}

func (p *Profile) Mount() {
	p.Load()
}

func (p *Profile) Load() {
	user, err := p.api().Me()
	if err != nil {
		p.fail(FetchUserFailed, err)
		return
	}
	p.User = user
	p.Form = schema.NewUserForm(user)
}

func (p *Profile) Loaded() bool {
	return p.User != nil
}

// Update sends the whole form and merges it locally on success.
func (p *Profile) Update(form schema.UserForm) {
	if p.User == nil {
		p.fail(UpdateUserFailed, libol.NewErr("profile not loaded"))
		return
	}
	if _, err := p.api().UpdateUser(p.User.Id, form); err != nil {
		p.fail(UpdateUserFailed, err)
		return
	}
	form.Merge(p.User)
	p.Form = form
	p.Error = ""
	p.out.Info("Profile.Update: %s", p.User.Username)
}

// Delete removes the account after confirmation, clears the session and
// returns the login path. It returns "" when nothing was deleted.
func (p *Profile) Delete() string {
	if p.User == nil {
		p.fail(DeleteUserFailed, libol.NewErr("profile not loaded"))
		return ""
	}
	if !confirm(p.confirm, DeleteSelfPrompt) {
		return ""
	}
	if err := p.api().DeleteUser(p.User.Id); err != nil {
		p.fail(DeleteUserFailed, err)
		return ""
	}
	p.out.Info("Profile.Delete: %s", p.User.Username)
	p.holder.Clear()
	p.User = nil
	return router.Login
}

const profileTmpl = `User Profile
{{- if .Error }}
error: {{ .Error }}
{{- end }}
{{- if .User }}
{{ ps -12 "Username" }}: {{ .User.Username }}
{{ ps -12 "Email" }}: {{ .Form.Email }}
{{ ps -12 "First Name" }}: {{ .Form.FirstName }}
{{ ps -12 "Last Name" }}: {{ .Form.LastName }}
{{ ps -12 "Role" }}: {{ .User.Role }}
{{- else if not .Error }}
Loading...
{{- end }}
`

func (p *Profile) Render(w io.Writer, format string) error {
	view := struct {
		Error string           `json:"error,omitempty" yaml:"error,omitempty"`
		User  *schema.User     `json:"user,omitempty" yaml:"user,omitempty"`
		Form  *schema.UserForm `json:"form,omitempty" yaml:"form,omitempty"`
	}{Error: p.Error}
	if p.User != nil {
		user := p.User.Public()
		view.User = &user
		form := p.Form
		form.Password = ""
		view.Form = &form
	}
	return Out(w, view, format, profileTmpl)
}
