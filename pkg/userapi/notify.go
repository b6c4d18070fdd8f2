package userapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
)

// Notifier is told about every account change.
type Notifier interface {
	Notify(action string, user *schema.User, admins []schema.User)
}

type LogNotifier struct{}

func (n LogNotifier) Notify(action string, user *schema.User, admins []schema.User) {
	for _, admin := range admins {
		libol.Info("Notify: %s user %s to %s", action, user.Username, admin.Email)
	}
}

// HttpNotifier posts one mail per admin to the notification service.
// A failed post is logged and does not fail the account change.
type HttpNotifier struct {
	Url    string
	Client *http.Client
	out    *libol.SubLogger
}

func NewHttpNotifier(url string) *HttpNotifier {
	return &HttpNotifier{
		Url: url,
		out: libol.NewSubLogger("notify"),
	}
}

func NewNotification(action string, user *schema.User, admin schema.User) schema.Notification {
	return schema.Notification{
		To:      admin.Email,
		Subject: fmt.Sprintf("%s user %s", action, user.Username),
		Text: fmt.Sprintf("%s user with username - %s, email - %s",
			action, user.Username, user.Email),
	}
}

func (n *HttpNotifier) Notify(action string, user *schema.User, admins []schema.User) {
	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		if err := n.send(NewNotification(action, user, admin)); err != nil {
			n.out.Warn("HttpNotifier.Notify %s: %s", admin.Email, err)
			continue
		}
		n.out.Info("HttpNotifier.Notify: sent to %s", admin.Email)
	}
}

func (n *HttpNotifier) send(msg schema.Notification) error {
	data, err := json.Marshal(&msg)
	if err != nil {
		return err
	}
	client := &libol.HttpClient{
		Method:  "POST",
		Url:     n.Url,
		Payload: bytes.NewReader(data),
		Client:  n.Client,
	}
	r, err := client.Do()
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		return libol.NewErr(r.Status)
	}
	return nil
}

// NewNotifier posts to the notification service when one is configured
// and only logs otherwise.
func NewNotifier(cfg *Config) Notifier {
	if cfg.NotifyUrl == "" {
		return LogNotifier{}
	}
	return NewHttpNotifier(cfg.NotifyUrl)
}
