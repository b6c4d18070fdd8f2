package client

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/krainet/userctl/pkg/libol"
)

// Client talks to the user API. Every call except login and register
// carries the bearer token.
type Client struct {
	Url   string
	Token string
	Http  *http.Client
	out   *libol.SubLogger
}

func New(url, token string) *Client {
	return &Client{
		Url:   strings.TrimRight(url, "/"),
		Token: token,
		out:   libol.NewSubLogger("client"),
	}
}

// WithToken returns a copy of the client using token.
func (cl *Client) WithToken(token string) *Client {
	c := *cl
	c.Token = token
	return &c
}

func (cl *Client) Log() *libol.SubLogger {
	if cl.out == nil {
		cl.out = libol.NewSubLogger("client")
	}
	return cl.out
}

func (cl *Client) NewRequest(url string) *libol.HttpClient {
	return &libol.HttpClient{
		Auth: libol.Auth{
			Type:  "bearer",
			Token: cl.Token,
		},
		Url:    url,
		Client: cl.Http,
	}
}

func (cl *Client) do(client *libol.HttpClient) ([]byte, error) {
	out := cl.Log()
	r, err := client.Do()
	if err != nil {
		out.Debug("Client.do %s %s: %s", client.Method, client.Url, err)
		return nil, err
	}
	defer r.Body.Close()
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if r.StatusCode < 200 || r.StatusCode > 299 {
		out.Debug("Client.do %s %s: %s %s", client.Method, client.Url, r.Status, body)
		return nil, libol.NewErr("%s %s: %s", client.Method, client.Url, r.Status)
	}
	out.Debug("Client.do %s %s: %s", client.Method, client.Url, r.Status)
	return body, nil
}

func (cl *Client) GetBody(url string) ([]byte, error) {
	client := cl.NewRequest(url)
	client.Method = "GET"
	return cl.do(client)
}

func (cl *Client) GetJSON(url string, v interface{}) error {
	body, err := cl.GetBody(url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return libol.NewErr("decode %s: %s", url, err)
	}
	return nil
}

// SendJSON encodes in as the request body and decodes a non-empty
// response into out when out is not nil.
func (cl *Client) SendJSON(client *libol.HttpClient, in, out interface{}) ([]byte, error) {
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		client.Payload = bytes.NewReader(data)
	}
	body, err := cl.do(client)
	if err != nil {
		return nil, err
	}
	if out != nil && len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, libol.NewErr("decode %s: %s", client.Url, err)
		}
	}
	return body, nil
}

func (cl *Client) PostJSON(url string, in, out interface{}) ([]byte, error) {
	client := cl.NewRequest(url)
	client.Method = "POST"
	return cl.SendJSON(client, in, out)
}

func (cl *Client) PutJSON(url string, in, out interface{}) ([]byte, error) {
	client := cl.NewRequest(url)
	client.Method = "PUT"
	return cl.SendJSON(client, in, out)
}

func (cl *Client) Delete(url string) error {
	client := cl.NewRequest(url)
	client.Method = "DELETE"
	_, err := cl.do(client)
	return err
}
