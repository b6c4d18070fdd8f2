package libol

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

func Marshal(v interface{}, pretty bool) ([]byte, error) {
	str, err := json.Marshal(v)
	if err != nil {
		Error("Marshal error: %s", err)
		return nil, err
	}
	if !pretty {
		return str, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, str, "", "  "); err != nil {
		return str, nil
	}
	return out.Bytes(), nil
}

// MarshalSave writes v as indented JSON, creating parent directories.
func MarshalSave(v interface{}, file string, pretty bool) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	f, err := CreateFile(file)
	if err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	defer f.Close()
	str, err := Marshal(v, pretty)
	if err != nil {
		return err
	}
	if _, err := f.Write(str); err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	return nil
}

func UnmarshalLoad(v interface{}, file string) error {
	if err := FileExist(file); err != nil {
		return NewErr("UnmarshalLoad: %s %s", file, err)
	}
	contents, err := ioutil.ReadFile(file)
	if err != nil {
		return NewErr("UnmarshalLoad: %s %s", file, err)
	}
	if len(bytes.TrimSpace(contents)) == 0 {
		return nil
	}
	if err := json.Unmarshal(contents, v); err != nil {
		return NewErr("UnmarshalLoad: %s", err)
	}
	return nil
}

func FileExist(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return err
	}
	return nil
}

func OpenWrite(file string) (*os.File, error) {
	return os.OpenFile(file, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
}

func CreateFile(name string) (*os.File, error) {
	return os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
}

func GetEnv(key, value string) string {
	val := os.Getenv(key)
	if val == "" {
		return value
	}
	return val
}

// HomeFile expands a leading "~/" against the user's home directory.
func HomeFile(name string) string {
	if !strings.HasPrefix(name, "~/") {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name[2:])
}

func Wait() {
	x := make(chan os.Signal, 1)
	signal.Notify(x, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	Info("Wait: ...")
	n := <-x
	Warn("Wait: ... Signal %d received ...", n)
}
