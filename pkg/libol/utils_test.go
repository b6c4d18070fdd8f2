package libol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	v := map[string]string{"token": "T1"}

	data, err := Marshal(v, false)
	assert.Nil(t, err)
	assert.Equal(t, `{"token":"T1"}`, string(data), "be the same.")

	data, err = Marshal(v, true)
	assert.Nil(t, err)
	assert.Equal(t, "{\n  \"token\": \"T1\"\n}", string(data), "be the same.")
}

func TestMarshalSaveAndLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "state.json")
	in := map[string]string{"token": "T1", "role": "ADMIN"}
	assert.Nil(t, MarshalSave(in, file, true))

	out := map[string]string{}
	assert.Nil(t, UnmarshalLoad(&out, file))
	assert.Equal(t, in, out, "be the same.")
}

func TestUnmarshalLoadMissing(t *testing.T) {
	out := map[string]string{}
	err := UnmarshalLoad(&out, filepath.Join(t.TempDir(), "none.json"))
	assert.NotNil(t, err)
}

func TestUnmarshalLoadEmpty(t *testing.T) {
	file := filepath.Join(t.TempDir(), "empty.json")
	assert.Nil(t, os.WriteFile(file, []byte("  \n"), 0600))
	out := map[string]string{}
	assert.Nil(t, UnmarshalLoad(&out, file))
	assert.Equal(t, 0, len(out))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("USERCTL_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("USERCTL_TEST_KEY", "fallback"))
	t.Setenv("USERCTL_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("USERCTL_TEST_KEY", "fallback"))
}

func TestHomeFile(t *testing.T) {
	assert.Equal(t, "/tmp/a.json", HomeFile("/tmp/a.json"))
	home, err := os.UserHomeDir()
	if err == nil {
		assert.Equal(t, filepath.Join(home, ".userctl", "a.json"), HomeFile("~/.userctl/a.json"))
	}
}
