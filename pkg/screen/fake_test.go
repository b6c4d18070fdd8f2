package screen

import (
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
)

// fakeAPI records calls and serves a fixed user table.
type fakeAPI struct {
	passwords map[string]string
	tokens    map[string]string
	users     []schema.User
	calls     map[string]int
	tokenUsed []string
	fail      map[string]bool
	updated   []schema.UserForm
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		passwords: map[string]string{"alice": "pw", "bob": "pw2"},
		tokens:    map[string]string{"alice": "T1", "bob": "T2"},
		users: []schema.User{
			{Id: 1, Username: "alice", Email: "alice@x", Role: schema.RoleAdmin},
			{Id: 3, Username: "bob", Email: "bob@x", FirstName: "Bob", Role: schema.RoleUser},
			{Id: 7, Username: "carol", Email: "carol@x", Role: schema.RoleUser},
			{Id: 9, Username: "dave", Email: "dave@x", Role: schema.RoleUser},
		},
		calls: map[string]int{},
		fail:  map[string]bool{},
	}
}

func (f *fakeAPI) dialer() Dialer {
	return func(token string) API {
		return &fakeConn{api: f, token: token}
	}
}

func (f *fakeAPI) byToken(token string) *schema.User {
	for name, t := range f.tokens {
		if t == token {
			for i := range f.users {
				if f.users[i].Username == name {
					return &f.users[i]
				}
			}
		}
	}
	return nil
}

type fakeConn struct {
	api   *fakeAPI
	token string
}

func (c *fakeConn) enter(name string) error {
	c.api.calls[name]++
	c.api.tokenUsed = append(c.api.tokenUsed, name+":"+c.token)
	if c.api.fail[name] {
		return libol.NewErr("%s failed", name)
	}
	return nil
}

func (c *fakeConn) Login(username, password string) (string, error) {
	if err := c.enter("login"); err != nil {
		return "", err
	}
	if p, ok := c.api.passwords[username]; !ok || p != password {
		return "", libol.NewErr("401 Unauthorized")
	}
	return c.api.tokens[username], nil
}

func (c *fakeConn) Register(user *schema.User) (*schema.User, error) {
	if err := c.enter("register"); err != nil {
		return nil, err
	}
	u := *user
	u.Id = 11
	u.Role = schema.RoleUser
	u.Password = ""
	c.api.users = append(c.api.users, u)
	return &u, nil
}

func (c *fakeConn) GetUser(username string) (*schema.User, error) {
	if err := c.enter("get"); err != nil {
		return nil, err
	}
	if c.api.byToken(c.token) == nil {
		return nil, libol.NewErr("401 Unauthorized")
	}
	for i := range c.api.users {
		if c.api.users[i].Username == username {
			u := c.api.users[i]
			return &u, nil
		}
	}
	return nil, libol.NewErr("404 Not Found")
}

func (c *fakeConn) Me() (*schema.User, error) {
	if err := c.enter("me"); err != nil {
		return nil, err
	}
	if u := c.api.byToken(c.token); u != nil {
		me := *u
		return &me, nil
	}
	return nil, libol.NewErr("401 Unauthorized")
}

func (c *fakeConn) ListUsers() ([]schema.User, error) {
	if err := c.enter("list"); err != nil {
		return nil, err
	}
	out := make([]schema.User, len(c.api.users))
	copy(out, c.api.users)
	return out, nil
}

func (c *fakeConn) UpdateUser(id int64, form schema.UserForm) (*schema.User, error) {
	if err := c.enter("update"); err != nil {
		return nil, err
	}
	c.api.updated = append(c.api.updated, form)
	for i := range c.api.users {
		if c.api.users[i].Id == id {
			form.Merge(&c.api.users[i])
			u := c.api.users[i]
			return &u, nil
		}
	}
	return nil, libol.NewErr("404 Not Found")
}

func (c *fakeConn) DeleteUser(id int64) error {
	if err := c.enter("delete"); err != nil {
		return err
	}
	for i := range c.api.users {
		if c.api.users[i].Id == id {
			c.api.users = append(c.api.users[:i], c.api.users[i+1:]...)
			return nil
		}
	}
	return libol.NewErr("404 Not Found")
}
