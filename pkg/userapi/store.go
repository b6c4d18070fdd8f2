package userapi

import (
	"errors"
	"sort"
	"sync"

	"github.com/krainet/userctl/pkg/schema"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// Store keeps users with their password hash in User.Password.
type Store interface {
	Add(user *schema.User) error
	Get(id int64) (*schema.User, error)
	GetByName(username string) (*schema.User, error)
	List() ([]schema.User, error)
	Update(user *schema.User) error
	Del(id int64) error
}

type MemoryStore struct {
	lock   sync.RWMutex
	nextId int64
	users  map[int64]*schema.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextId: 1,
		users:  make(map[int64]*schema.User, 32),
	}
}

func (s *MemoryStore) Add(user *schema.User) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
		if user.Email != "" && u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	user.Id = s.nextId
	s.nextId++
	obj := *user
	s.users[user.Id] = &obj
	return nil
}

func (s *MemoryStore) Get(id int64) (*schema.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if u, ok := s.users[id]; ok {
		obj := *u
		return &obj, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetByName(username string) (*schema.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			obj := *u
			return &obj, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) List() ([]schema.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	users := make([]schema.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Id < users[j].Id
	})
	return users, nil
}

func (s *MemoryStore) Update(user *schema.User) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	older, ok := s.users[user.Id]
	if !ok {
		return ErrNotFound
	}
	for id, u := range s.users {
		if id != user.Id && user.Email != "" && u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	older.Email = user.Email
	older.FirstName = user.FirstName
	older.LastName = user.LastName
	older.Password = user.Password
	return nil
}

func (s *MemoryStore) Del(id int64) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}
