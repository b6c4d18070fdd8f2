package userapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("bad credentials")
	ErrForbidden      = errors.New("access denied")
	ErrInvalid        = errors.New("invalid user")
)

type Service struct {
	store    Store
	tokens   *Tokens
	notifier Notifier
}

func NewService(store Store, tokens *Tokens, notifier Notifier) *Service {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Service{store: store, tokens: tokens, notifier: notifier}
}

var HashCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Bootstrap creates the admin account unless it already exists.
func (s *Service) Bootstrap(admin Admin) error {
	if admin.Username == "" {
		return nil
	}
	if _, err := s.store.GetByName(admin.Username); err == nil {
		return nil
	}
	hash, err := HashPassword(admin.Password)
	if err != nil {
		return err
	}
	user := &schema.User{
		Username: admin.Username,
		Password: hash,
		Email:    admin.Email,
		Role:     schema.RoleAdmin,
	}
	if err := s.store.Add(user); err != nil {
		return err
	}
	libol.Info("Service.Bootstrap: admin %s", admin.Username)
	return nil
}

func (s *Service) Login(username, password string) (string, error) {
	user, err := s.store.GetByName(username)
	if err != nil {
		return "", ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrBadCredentials
	}
	libol.Info("Service.Login: %s", username)
	return s.tokens.Issue(user.Username, user.Role.String())
}

// Authenticate maps a bearer token to its current user.
func (s *Service) Authenticate(token string) (*schema.User, error) {
	name, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrBadCredentials
	}
	user, err := s.store.GetByName(name)
	if err != nil {
		return nil, ErrBadCredentials
	}
	return user, nil
}

func (s *Service) Register(in *schema.User) (*schema.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, ErrInvalid
	}
	// usernames travel as one path segment of /api/users/{key}
	if strings.Contains(in.Username, "/") {
		return nil, ErrInvalid
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &schema.User{
		Username:  in.Username,
		Password:  hash,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      schema.RoleUser,
	}
	if err := s.store.Add(user); err != nil {
		return nil, err
	}
	libol.Info("Service.Register: %s", user.Username)
	s.notify("Created", user)
	return user, nil
}

func (s *Service) checkAccess(caller, target *schema.User) error {
	if caller.Role.IsAdmin() || caller.Username == target.Username {
		return nil
	}
	return ErrForbidden
}

// Get resolves key as a username, then as an id when no user has that
// name.
func (s *Service) Get(caller *schema.User, key string) (*schema.User, error) {
	user, err := s.store.GetByName(key)
	if errors.Is(err, ErrNotFound) {
		if id, perr := strconv.ParseInt(key, 10, 64); perr == nil {
			user, err = s.store.Get(id)
		}
	}
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(caller, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) List(caller *schema.User) ([]schema.User, error) {
	if !caller.Role.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.store.List()
}

// Update replaces the editable fields; a blank password keeps the old one.
func (s *Service) Update(caller *schema.User, id int64, form schema.UserForm) (*schema.User, error) {
	user, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(caller, user); err != nil {
		return nil, err
	}
	form.Merge(user)
	if form.Password != "" {
		hash, err := HashPassword(form.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if err := s.store.Update(user); err != nil {
		return nil, err
	}
	libol.Info("Service.Update: %s", user.Username)
	s.notify("Updated", user)
	return user, nil
}

func (s *Service) Delete(caller *schema.User, id int64) error {
	user, err := s.store.Get(id)
	if err != nil {
		return err
	}
	if err := s.checkAccess(caller, user); err != nil {
		return err
	}
	if err := s.store.Del(id); err != nil {
		return err
	}
	libol.Info("Service.Delete: %s", user.Username)
	s.notify("Deleted", user)
	return nil
}

func (s *Service) notify(action string, user *schema.User) {
	users, err := s.store.List()
	if err != nil {
		libol.Warn("Service.notify: %s", err)
		return
	}
	admins := make([]schema.User, 0, 4)
	for _, u := range users {
		if u.Role.IsAdmin() {
			admins = append(admins, u)
		}
	}
	s.notifier.Notify(action, user, admins)
}
