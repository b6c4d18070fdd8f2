package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/krainet/userctl/cmd/userctl/api"
	"github.com/krainet/userctl/pkg/libol"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("userctl: .env: %s", err)
	}
	api.Url = libol.GetEnv("USERCTL_URL", libol.GetEnv("API_URL", api.Url))
	api.Storage = libol.GetEnv("USERCTL_STORAGE", api.Storage)
	app := api.NewCli()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
