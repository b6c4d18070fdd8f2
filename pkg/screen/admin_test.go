package screen

import (
	"bytes"
	"testing"

	"github.com/krainet/userctl/pkg/session"
	"github.com/krainet/userctl/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func newAdmin(t *testing.T, api *fakeAPI, confirm Confirmer) *Admin {
	holder := session.New(storage.NewMemory())
	assert.Nil(t, holder.Set("T1", "ADMIN"))
	return NewAdmin(api.dialer(), holder, confirm)
}

func ids(a *Admin) []int64 {
	out := make([]int64, 0, len(a.Users))
	for _, u := range a.Users {
		out = append(out, u.Id)
	}
	return out
}

func TestAdminLoad(t *testing.T) {
	api := newFakeAPI()
	a := newAdmin(t, api, Always)
	a.Mount()
	assert.Equal(t, []int64{1, 3, 7, 9}, ids(a))
	assert.Equal(t, []string{"list:T1"}, api.tokenUsed)
}

func TestAdminLoadFails(t *testing.T) {
	api := newFakeAPI()
	api.fail["list"] = true
	a := newAdmin(t, api, Always)
	a.Mount()
	assert.Equal(t, FetchUsersFailed, a.Message())
	assert.Equal(t, 0, len(a.Users))
}

func TestAdminDeleteRemovesOnlyThatRow(t *testing.T) {
	api := newFakeAPI()
	a := newAdmin(t, api, Always)
	a.Load()

	a.Delete(7)
	assert.Equal(t, []int64{1, 3, 9}, ids(a))
	assert.Equal(t, 1, api.calls["list"], "no re-fetch after delete")
	assert.Equal(t, 1, api.calls["delete"])
	assert.Equal(t, "", a.Message())
}

func TestAdminDeleteFails(t *testing.T) {
	api := newFakeAPI()
	api.fail["delete"] = true
	a := newAdmin(t, api, Always)
	a.Load()

	a.Delete(3)
	assert.Equal(t, DeleteUserFailed, a.Message())
	assert.Equal(t, []int64{1, 3, 7, 9}, ids(a))
}

func TestAdminDeleteDeclined(t *testing.T) {
	api := newFakeAPI()
	a := newAdmin(t, api, ConfirmFunc(func(prompt string) bool {
		assert.Equal(t, DeleteUserPrompt, prompt)
		return false
	}))
	a.Load()

	a.Delete(3)
	assert.Equal(t, 0, api.calls["delete"])
	assert.Equal(t, []int64{1, 3, 7, 9}, ids(a))
}

func TestAdminDeleteWithoutConfirmer(t *testing.T) {
	api := newFakeAPI()
	a := newAdmin(t, api, nil)
	a.Load()
	a.Delete(3)
	assert.Equal(t, 0, api.calls["delete"])
}

func TestAdminRender(t *testing.T) {
	api := newFakeAPI()
	a := newAdmin(t, api, Always)
	a.Load()
	a.Delete(7)

	buf := &bytes.Buffer{}
	assert.Nil(t, a.Render(buf, "table"))
	out := buf.String()
	assert.Contains(t, out, "ID     Username         Email                        Role    \n")
	assert.Contains(t, out, "3      bob              bob@x                        USER    ")
	assert.NotContains(t, out, "carol")

	buf.Reset()
	assert.Nil(t, a.Render(buf, "json"))
	assert.Contains(t, buf.String(), `"username": "dave"`)
}
