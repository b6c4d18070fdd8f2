package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/userapi"
	"github.com/urfave/cli/v2"
)

func run(c *cli.Context) error {
	defer libol.Catch("userapi.run")
	if c.Bool("verbose") {
		libol.SetLogger(c.String("log"), libol.DEBUG)
	} else {
		libol.SetLogger(c.String("log"), libol.INFO)
	}
	cfg := userapi.NewConfig()
	if err := cfg.Load(c.String("conf")); err != nil {
		return err
	}
	store, release, err := userapi.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer release()
	h, err := userapi.New(cfg, store, userapi.NewNotifier(cfg))
	if err != nil {
		return err
	}
	h.Start()
	libol.Wait()
	h.Shutdown()
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("userapi: .env: %s", err)
	}
	app := &cli.App{
		Name:  "userapi",
		Usage: "Development user API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "conf",
				Aliases: []string{"c"},
				Usage:   "yaml config file",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "also write the log to this file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
