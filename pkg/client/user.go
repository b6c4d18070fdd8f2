package client

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
)

func (cl *Client) AuthUrl(name string) string {
	return cl.Url + "/api/auth/" + name
}

func (cl *Client) UserUrl(name string) string {
	if name == "" {
		return cl.Url + "/api/users"
	}
	return cl.Url + "/api/users/" + url.PathEscape(name)
}

// Login exchanges credentials for a token. The server answers with the
// bare token as the body; a JSON string or {"token": ...} is accepted too.
func (cl *Client) Login(username, password string) (string, error) {
	req := &schema.LoginRequest{Username: username, Password: password}
	body, err := cl.WithToken("").PostJSON(cl.AuthUrl("login"), req, nil)
	if err != nil {
		return "", err
	}
	token := ParseToken(body)
	if token == "" {
		return "", libol.NewErr("login: empty token")
	}
	return token, nil
}

func ParseToken(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	switch body[0] {
	case '"':
		var token string
		if err := json.Unmarshal(body, &token); err != nil {
			return ""
		}
		return token
	case '{':
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return ""
		}
		return resp.Token
	}
	return string(body)
}

func (cl *Client) Register(user *schema.User) (*schema.User, error) {
	created := &schema.User{}
	if _, err := cl.WithToken("").PostJSON(cl.AuthUrl("register"), user, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetUser looks a user up by username.
func (cl *Client) GetUser(username string) (*schema.User, error) {
	if username == "" {
		return nil, libol.NewErr("username is empty")
	}
	user := &schema.User{}
	if err := cl.GetJSON(cl.UserUrl(username), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (cl *Client) Me() (*schema.User, error) {
	user := &schema.User{}
	if err := cl.GetJSON(cl.UserUrl("me"), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (cl *Client) ListUsers() ([]schema.User, error) {
	users := make([]schema.User, 0, 32)
	if err := cl.GetJSON(cl.UserUrl(""), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (cl *Client) UpdateUser(id int64, form schema.UserForm) (*schema.User, error) {
	user := &schema.User{}
	if _, err := cl.PutJSON(cl.UserUrl(strconv.FormatInt(id, 10)), form, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (cl *Client) DeleteUser(id int64) error {
	return cl.Delete(cl.UserUrl(strconv.FormatInt(id, 10)))
}
