package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/screen"
	"github.com/krainet/userctl/pkg/session"
)

var ErrScreen = errors.New("not available on this screen")

// App keeps the current path and screen and moves between screens
// through the guard.
type App struct {
	Holder  *session.Holder
	Dial    screen.Dialer
	Confirm screen.Confirmer
	Out     io.Writer
	Format  string
	Path    string
	Kind    router.Screen
	Current screen.Screen
	Notice  string
	out     *libol.SubLogger
}

func NewApp(holder *session.Holder, dial screen.Dialer, confirm screen.Confirmer) *App {
	return &App{
		Holder:  holder,
		Dial:    dial,
		Confirm: confirm,
		Out:     os.Stdout,
		Format:  "table",
		out:     libol.NewSubLogger("app"),
	}
}

// Navigate resolves path for the current session, mounts the screen it
// lands on and makes it current.
func (a *App) Navigate(path string) screen.Screen {
	path, kind := router.Resolve(a.Holder.State(), path)
	var s screen.Screen
	switch kind {
	case router.LoginScreen:
		s = screen.NewLogin(a.Dial, a.Holder)
	case router.RegisterScreen:
		s = screen.NewRegister(a.Dial)
	case router.ProfileScreen:
		s = screen.NewProfile(a.Dial, a.Holder, a.Confirm)
	case router.AdminScreen:
		s = screen.NewAdmin(a.Dial, a.Holder, a.Confirm)
	default:
		s = screen.NewNotFound(path)
	}
	a.out.Debug("App.Navigate: %s -> %s", path, kind)
	a.Path = path
	a.Kind = kind
	a.Current = s
	s.Mount()
	return s
}

func (a *App) Logout() {
	a.Holder.Logout()
	a.Navigate(router.Login)
}

// Header is the role line shown above every screen while logged in.
func (a *App) Header() string {
	if a.Holder.Token() == "" {
		return ""
	}
	return "Role: " + a.Holder.Role()
}

func (a *App) Message() string {
	if a.Current == nil {
		return ""
	}
	return a.Current.Message()
}

// Render writes the header, a pending notice and the current screen.
// The header and notice only go to the table output.
func (a *App) Render() error {
	if a.Current == nil {
		a.Navigate(router.Root)
	}
	if a.Format != "json" && a.Format != "yaml" {
		if header := a.Header(); header != "" {
			fmt.Fprintln(a.Out, header)
		}
		if a.Notice != "" {
			fmt.Fprintln(a.Out, a.Notice)
		}
	}
	a.Notice = ""
	return a.Current.Render(a.Out, a.Format)
}

func (a *App) Login(username, password string) error {
	login, ok := a.Current.(*screen.Login)
	if !ok {
		return ErrScreen
	}
	if next := login.Submit(username, password); next != "" {
		a.Navigate(next)
	}
	return nil
}

func (a *App) Register(user schema.User) error {
	register, ok := a.Current.(*screen.Register)
	if !ok {
		return ErrScreen
	}
	if next := register.Submit(user); next != "" {
		a.Notice = fmt.Sprintf("created %s, you can log in now", register.Created.Username)
		a.Navigate(next)
	}
	return nil
}

func (a *App) Update(form schema.UserForm) error {
	profile, ok := a.Current.(*screen.Profile)
	if !ok {
		return ErrScreen
	}
	profile.Update(form)
	return nil
}

// Delete removes the account on the profile screen, or the user with id
// on the admin screen.
func (a *App) Delete(id int64) error {
	switch s := a.Current.(type) {
	case *screen.Profile:
		if next := s.Delete(); next != "" {
			a.Navigate(next)
		}
	case *screen.Admin:
		if id <= 0 {
			return libol.NewErr("delete needs a user id")
		}
		s.Delete(id)
	default:
		return ErrScreen
	}
	return nil
}
