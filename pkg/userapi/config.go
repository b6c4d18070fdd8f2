package userapi

import (
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"github.com/krainet/userctl/pkg/libol"
	"gopkg.in/yaml.v2"
)

type Admin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

type Config struct {
	Listen      string        `yaml:"listen"`
	Secret      string        `yaml:"secret"`
	TokenTTL    time.Duration `yaml:"tokenTTL"`
	DatabaseUrl string        `yaml:"databaseUrl"`
	NotifyUrl   string        `yaml:"notifyUrl"`
	Admin       Admin         `yaml:"admin"`
}

func NewConfig() *Config {
	ttl, err := strconv.Atoi(libol.GetEnv("USERAPI_TOKEN_TTL", "3600"))
	if err != nil || ttl <= 0 {
		ttl = 3600
	}
	return &Config{
		Listen:      libol.GetEnv("USERAPI_LISTEN", "127.0.0.1:8080"),
		Secret:      libol.GetEnv("USERAPI_SECRET", "change-me"),
		TokenTTL:    time.Duration(ttl) * time.Second,
		DatabaseUrl: libol.GetEnv("USERAPI_DATABASE_URL", ""),
		NotifyUrl:   libol.GetEnv("USERAPI_NOTIFY_URL", ""),
		Admin: Admin{
			Username: libol.GetEnv("USERAPI_ADMIN_USERNAME", "admin"),
			Password: libol.GetEnv("USERAPI_ADMIN_PASSWORD", "admin"),
			Email:    libol.GetEnv("USERAPI_ADMIN_EMAIL", "admin@localhost"),
		},
	}
}

// Load reads a YAML file over the environment defaults.
func (c *Config) Load(file string) error {
	if file == "" {
		return nil
	}
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return libol.NewErr("read config %s: %s", file, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return libol.NewErr("decode config %s: %s", file, err)
	}
	return nil
}

func (c *Config) Correct() error {
	c.Listen = strings.TrimSpace(c.Listen)
	if c.Listen == "" {
		return libol.NewErr("listen address must not be empty")
	}
	if c.Secret == "" {
		return libol.NewErr("token secret must not be empty")
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	return nil
}
