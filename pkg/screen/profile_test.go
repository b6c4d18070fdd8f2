package screen

import (
	"bytes"
	"testing"

	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/session"
	"github.com/krainet/userctl/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func newProfile(t *testing.T, api *fakeAPI, confirm Confirmer) (*Profile, *session.Holder) {
	holder := session.New(storage.NewMemory())
	assert.Nil(t, holder.Set("T2", "USER"))
	return NewProfile(api.dialer(), holder, confirm), holder
}

func TestProfileLoad(t *testing.T) {
	api := newFakeAPI()
	p, _ := newProfile(t, api, Always)
	p.Mount()

	assert.True(t, p.Loaded())
	assert.Equal(t, "bob", p.User.Username)
	assert.Equal(t, schema.UserForm{Email: "bob@x", FirstName: "Bob"}, p.Form)
	assert.Equal(t, []string{"me:T2"}, api.tokenUsed)
}

func TestProfileLoadFails(t *testing.T) {
	api := newFakeAPI()
	api.fail["me"] = true
	p, _ := newProfile(t, api, Always)
	p.Mount()

	assert.False(t, p.Loaded())
	assert.Equal(t, FetchUserFailed, p.Message())
	assert.Equal(t, schema.UserForm{}, p.Form)
}

func TestProfileUpdate(t *testing.T) {
	api := newFakeAPI()
	p, _ := newProfile(t, api, Always)
	p.Load()

	form := p.Form
	form.LastName = "Builder"
	form.Password = "new"
	p.Update(form)

	assert.Equal(t, "", p.Message())
	assert.Equal(t, "Builder", p.User.LastName)
	assert.Equal(t, "", p.User.Password)
	assert.Equal(t, []schema.UserForm{form}, api.updated, "whole form is sent")
}

func TestProfileUpdateFails(t *testing.T) {
	api := newFakeAPI()
	api.fail["update"] = true
	p, _ := newProfile(t, api, Always)
	p.Load()

	form := p.Form
	form.Email = "changed@x"
	p.Update(form)
	assert.Equal(t, UpdateUserFailed, p.Message())
	assert.Equal(t, "bob@x", p.User.Email)

	api.fail["update"] = false
	p.Update(form)
	assert.Equal(t, "", p.Message(), "a later success clears the message")
}

func TestProfileUpdateNotLoaded(t *testing.T) {
	api := newFakeAPI()
	p, _ := newProfile(t, api, Always)
	p.Update(schema.UserForm{Email: "x@x"})
	assert.Equal(t, UpdateUserFailed, p.Message())
	assert.Equal(t, 0, api.calls["update"])
}

func TestProfileDelete(t *testing.T) {
	api := newFakeAPI()
	p, holder := newProfile(t, api, Always)
	p.Load()

	assert.Equal(t, router.Login, p.Delete())
	assert.Equal(t, session.Anonymous, holder.State())
	assert.Equal(t, 3, len(api.users))
}

func TestProfileDeleteDeclined(t *testing.T) {
	api := newFakeAPI()
	prompts := make([]string, 0, 1)
	p, holder := newProfile(t, api, ConfirmFunc(func(prompt string) bool {
		prompts = append(prompts, prompt)
		return false
	}))
	p.Load()

	assert.Equal(t, "", p.Delete())
	assert.Equal(t, []string{DeleteSelfPrompt}, prompts)
	assert.Equal(t, 0, api.calls["delete"])
	assert.Equal(t, "T2", holder.Token())
}

func TestProfileDeleteFails(t *testing.T) {
	api := newFakeAPI()
	api.fail["delete"] = true
	p, holder := newProfile(t, api, Always)
	p.Load()

	assert.Equal(t, "", p.Delete())
	assert.Equal(t, DeleteUserFailed, p.Message())
	assert.Equal(t, "T2", holder.Token())
}

func TestProfileRender(t *testing.T) {
	api := newFakeAPI()
	p, _ := newProfile(t, api, Always)
	p.Load()

	buf := &bytes.Buffer{}
	assert.Nil(t, p.Render(buf, "table"))
	assert.Contains(t, buf.String(), "Username    : bob\n")
	assert.Contains(t, buf.String(), "First Name  : Bob\n")

	buf.Reset()
	assert.Nil(t, p.Render(buf, "yaml"))
	assert.Contains(t, buf.String(), "username: bob")
	assert.NotContains(t, buf.String(), "password")
}
