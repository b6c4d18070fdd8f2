package api

import (
	"github.com/krainet/userctl/pkg/router"
	"github.com/krainet/userctl/pkg/screen"
	"github.com/urfave/cli/v2"
)

type Profile struct {
	Cmd
}

func (u Profile) Show(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	if err := u.Expect(app, router.Profile); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Profile) Update(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	if err := u.Expect(app, router.Profile); err != nil {
		return err
	}
	profile := app.Current.(*screen.Profile)
	if !profile.Loaded() {
		return u.Done(app)
	}
	form := profile.Form
	if c.IsSet("email") {
		form.Email = c.String("email")
	}
	if c.IsSet("first-name") {
		form.FirstName = c.String("first-name")
	}
	if c.IsSet("last-name") {
		form.LastName = c.String("last-name")
	}
	form.Password = c.String("password")
	if err := app.Update(form); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Profile) Remove(c *cli.Context) error {
	app, prompter, err := u.NewApp(c)
	if err != nil {
		return err
	}
	defer prompter.Close()
	if err := u.Expect(app, router.Profile); err != nil {
		return err
	}
	if app.Message() != "" {
		return u.Done(app)
	}
	if err := app.Delete(0); err != nil {
		return err
	}
	return u.Done(app)
}

func (u Profile) Commands(app *cli.App) cli.Commands {
	return append(app.Commands, &cli.Command{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "Your own account",
		Subcommands: []*cli.Command{
			{
				Name:    "show",
				Usage:   "Display your profile",
				Aliases: []string{"ls"},
				Action:  u.Show,
			},
			{
				Name:  "update",
				Usage: "Update your profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}},
					&cli.StringFlag{Name: "first-name"},
					&cli.StringFlag{Name: "last-name"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "new password, blank keeps it"},
				},
				Action: u.Update,
			},
			{
				Name:    "delete",
				Usage:   "Delete your account",
				Aliases: []string{"rm"},
				Action:  u.Remove,
			},
		},
	})
}
