package screen

import (
	"io"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/session"
)

type Admin struct {
	base
	dial    Dialer
	holder  *session.Holder
	confirm Confirmer
	Users   []schema.User
}

func NewAdmin(dial Dialer, holder *session.Holder, confirm Confirmer) *Admin {
	return &Admin{
		base:    base{out: libol.NewSubLogger("admin")},
		dial:    dial,
		holder:  holder,
		confirm: confirm,
		Users:   make([]schema.User, 0, 32),
	}
}

func (a *Admin) Name() string {
	return "Admin Panel"
}

func (a *Admin) api() API {
	return a.dial(a.holder.Token())
}

func (a *Admin) Mount() {
	a.Load()
}

func (a *Admin) Load() {
	users, err := a.api().ListUsers()
	if err != nil {
		a.fail(FetchUsersFailed, err)
		return
	}
	a.Users = users
}

// Delete removes the user after confirmation and drops its row from the
// local list without fetching the list again.
func (a *Admin) Delete(id int64) {
	if !confirm(a.confirm, DeleteUserPrompt) {
		return
	}
	if err := a.api().DeleteUser(id); err != nil {
		a.fail(DeleteUserFailed, err)
		return
	}
	kept := make([]schema.User, 0, len(a.Users))
	for _, u := range a.Users {
		if u.Id != id {
			kept = append(kept, u)
		}
	}
	a.Users = kept
	a.out.Info("Admin.Delete: %d", id)
}

const adminTmpl = `Admin Panel
{{- if .Error }}
error: {{ .Error }}
{{- end }}
{{ ps -6 "ID" }} {{ ps -16 "Username" }} {{ ps -28 "Email" }} {{ ps -8 "Role" }}
{{- range .Users }}
{{ pi -6 .Id }} {{ ps -16 .Username }} {{ ps -28 .Email }} {{ ps -8 .Role }}
{{- end }}
`

func (a *Admin) Render(w io.Writer, format string) error {
	view := struct {
		Error string        `json:"error,omitempty" yaml:"error,omitempty"`
		Users []schema.User `json:"users" yaml:"users"`
	}{Error: a.Error, Users: make([]schema.User, 0, len(a.Users))}
	for _, u := range a.Users {
		view.Users = append(view.Users, u.Public())
	}
	return Out(w, view, format, adminTmpl)
}
