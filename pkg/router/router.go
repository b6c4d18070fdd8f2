package router

import (
	"strings"

	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/session"
)

const (
	Root     = "/"
	Login    = "/login"
	Register = "/register"
	Profile  = "/profile"
	Admin    = "/admin"
)

type Screen int

const (
	None Screen = iota
	LoginScreen
	RegisterScreen
	ProfileScreen
	AdminScreen
	NotFoundScreen
)

func (s Screen) String() string {
	switch s {
	case LoginScreen:
		return "login"
	case RegisterScreen:
		return "register"
	case ProfileScreen:
		return "profile"
	case AdminScreen:
		return "admin"
	case NotFoundScreen:
		return "not-found"
	}
	return "none"
}

// Decision is either a screen to render or a path to redirect to.
type Decision struct {
	Screen   Screen
	Redirect string
}

func Render(screen Screen) Decision {
	return Decision{Screen: screen}
}

func RedirectTo(path string) Decision {
	return Decision{Redirect: path}
}

func (d Decision) IsRedirect() bool {
	return d.Redirect != ""
}

func Clean(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = Root
		}
	}
	return path
}

// Route maps the session state and a requested path to what is shown.
func Route(state session.State, path string) Decision {
	switch Clean(path) {
	case Root:
		return RedirectTo(Login)
	case Login:
		return Render(LoginScreen)
	case Register:
		return Render(RegisterScreen)
	case Profile:
		switch state {
		case session.Authenticated, session.Administrator:
			return Render(ProfileScreen)
		case session.Anonymous:
			return RedirectTo(Login)
		}
	case Admin:
		switch state {
		case session.Administrator:
			return Render(AdminScreen)
		case session.Anonymous, session.Authenticated:
			return RedirectTo(Login)
		}
	}
	return Render(NotFoundScreen)
}

// Resolve follows redirects until a screen is reached.
func Resolve(state session.State, path string) (string, Screen) {
	path = Clean(path)
	for i := 0; i < 8; i++ {
		d := Route(state, path)
		if !d.IsRedirect() {
			return path, d.Screen
		}
		path = d.Redirect
	}
	return path, NotFoundScreen
}

// Landing is where a freshly logged-in user goes.
func Landing(role string) string {
	if schema.Role(role) == schema.RoleAdmin {
		return Admin
	}
	return Profile
}
