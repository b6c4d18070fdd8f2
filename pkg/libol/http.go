package libol

import (
	"io"
	"net/http"
)

type Auth struct {
	Type  string
	Token string
}

type HttpClient struct {
	Method      string
	Url         string
	Payload     io.Reader
	ContentType string
	Auth        Auth
	Client      *http.Client
}

func (cl *HttpClient) Do() (*http.Response, error) {
	if cl.Method == "" {
		cl.Method = "GET"
	}
	req, err := http.NewRequest(cl.Method, cl.Url, cl.Payload)
	if err != nil {
		return nil, err
	}
	if cl.Payload != nil {
		contentType := cl.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if cl.Auth.Type == "bearer" && cl.Auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.Auth.Token)
	}
	client := cl.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}
