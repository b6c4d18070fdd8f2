package api

import (
	"fmt"

	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/screen"
	"github.com/urfave/cli/v2"
)

type Session struct {
	Cmd
}

func (u Session) Login(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	username, err := u.Ask(prompter, c.String("username"), "Username: ", false)
	if err != nil {
		return err
	}
	password, err := u.Ask(prompter, c.String("password"), "Password: ", true)
	if err != nil {
		return err
	}
	app.Navigate(router.Login)
	if err := app.Login(username, password); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Session) Logout(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	app.Logout()
	return u.Done(app)
}

func (u Session) Register(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	user := schema.User{
		Email:     c.String("email"),
		FirstName: c.String("first-name"),
		LastName:  c.String("last-name"),
	}
	if user.Username, err = u.Ask(prompter, c.String("username"), "Username: ", false); err != nil {
		return err
	}
	if user.Password, err = u.Ask(prompter, c.String("password"), "Password: ", true); err != nil {
		return err
	}
	app.Navigate(router.Register)
	if err := app.Register(user); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Session) Status(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	data := struct {
		State string `json:"state" yaml:"state"`
		Role  string `json:"role,omitempty" yaml:"role,omitempty"`
	}{
		State: app.Holder.State().String(),
		Role:  app.Holder.Role(),
	}
	tmpl := `{{ ps -8 "State" }}: {{ .State }}
{{- if .Role }}
{{ ps -8 "Role" }}: {{ .Role }}
{{- end }}
`
	return screen.Out(c.App.Writer, data, c.String("format"), tmpl)
}

func (u Session) Open(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("open needs exactly one path", 1)
	}
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	app.Navigate(c.Args().First())
	if app.Kind == router.NotFoundScreen {
		_ = app.Render()
		return cli.Exit(fmt.Sprintf("%s: not found", app.Path), 1)
	}
	return u.Done(app)
}

func (u Session) Commands(app *cli.App) cli.Commands {
	return append(app.Commands,
		&cli.Command{
			Name:  "login",
			Usage: "Log in and save the session",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "username", Aliases: []string{"u"}},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}},
			},
			Action: u.Login,
		},
		&cli.Command{
			Name:   "logout",
			Usage:  "Forget the saved session",
			Action: u.Logout,
		},
		&cli.Command{
			Name:  "register",
			Usage: "Create a new account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "username", Aliases: []string{"u"}},
				&cli.StringFlag{Name: "password", Aliases: []string{"p"}},
				&cli.StringFlag{Name: "email", Aliases: []string{"e"}},
				&cli.StringFlag{Name: "first-name"},
				&cli.StringFlag{Name: "last-name"},
			},
			Action: u.Register,
		},
		&cli.Command{
			Name:   "status",
			Usage:  "Show the saved session",
			Action: u.Status,
		},
		&cli.Command{
			Name:      "open",
			Usage:     "Show the screen at a path",
			ArgsUsage: "<path>",
			Action:    u.Open,
		},
	)
}
