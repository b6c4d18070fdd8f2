package userapi

import (
	"testing"

	"github.com/krainet/userctl/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	alice := &schema.User{Username: "alice", Email: "a@x", Role: schema.RoleAdmin}
	bob := &schema.User{Username: "bob", Email: "b@x", Role: schema.RoleUser}
	assert.Nil(t, s.Add(alice))
	assert.Nil(t, s.Add(bob))
	assert.Equal(t, int64(1), alice.Id)
	assert.Equal(t, int64(2), bob.Id)

	assert.Equal(t, ErrUsernameTaken, s.Add(&schema.User{Username: "bob", Email: "other@x"}))
	assert.Equal(t, ErrEmailTaken, s.Add(&schema.User{Username: "carol", Email: "b@x"}))

	u, err := s.GetByName("bob")
	assert.Nil(t, err)
	assert.Equal(t, int64(2), u.Id)
	u.Email = "changed@x"
	again, _ := s.Get(2)
	assert.Equal(t, "b@x", again.Email, "returned users are copies")

	assert.Nil(t, s.Update(&schema.User{Id: 2, Email: "bob2@x", FirstName: "Bob"}))
	again, _ = s.Get(2)
	assert.Equal(t, "bob2@x", again.Email)
	assert.Equal(t, "bob", again.Username, "username never changes")
	assert.Equal(t, ErrEmailTaken, s.Update(&schema.User{Id: 2, Email: "a@x"}))

	users, _ := s.List()
	assert.Equal(t, 2, len(users))
	assert.Equal(t, "alice", users[0].Username)

	assert.Nil(t, s.Del(1))
	assert.Equal(t, ErrNotFound, s.Del(1))
	_, err = s.Get(1)
	assert.Equal(t, ErrNotFound, err)
	_, err = s.GetByName("alice")
	assert.Equal(t, ErrNotFound, err)
	assert.Equal(t, ErrNotFound, s.Update(&schema.User{Id: 1}))
}
