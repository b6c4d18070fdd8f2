package api

import (
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/storage"
	"github.com/urfave/cli/v2"
)

var (
	Url     = "http://localhost:8080"
	Storage = storage.DefaultFile
)

type App struct {
	cli *cli.App
}

func (a *App) Flags() []cli.Flag {
	var flags []cli.Flag

	flags = append(flags,
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"l"},
			Usage:   "api server url",
			Value:   Url,
		})
	flags = append(flags,
		&cli.StringFlag{
			Name:    "storage",
			Aliases: []string{"s"},
			Usage:   "session storage file",
			Value:   Storage,
		})
	flags = append(flags,
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: table, json, yaml",
			Value:   "table",
		})
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable verbose",
			Value:   false,
		})
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "answer yes to every confirmation",
			Value:   false,
		})
	return flags
}

func (a *App) New() *cli.App {
	app := &cli.App{
		Name:     "userctl",
		Usage:    "User management client",
		Flags:    a.Flags(),
		Commands: []*cli.Command{},
		Before:   a.Before,
		After:    a.After,
	}
	a.cli = app
	return a.cli
}

func (a *App) Before(c *cli.Context) error {
	if c.Bool("verbose") {
		libol.SetLogger("", libol.DEBUG)
	} else {
		libol.SetLevel(libol.WARN)
	}
	return nil
}

func (a *App) After(c *cli.Context) error {
	return nil
}

// NewCli builds the command line with every command registered.
func NewCli() *cli.App {
	app := (&App{}).New()
	app.Commands = Session{}.Commands(app)
	app.Commands = Profile{}.Commands(app)
	app.Commands = Admin{}.Commands(app)
	app.Commands = Shell{}.Commands(app)
	return app
}
