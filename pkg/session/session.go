package session

import (
	"sync"

	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/krainet/userctl/pkg/storage"
)

const (
	TokenKey = "token"
	RoleKey  = "role"
)

type State int

const (
	Anonymous State = iota
	Authenticated
	Administrator
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated-user"
	case Administrator:
		return "authenticated-admin"
	}
	return "anonymous"
}

// Holder owns the client's token and role. Both are set together or
// cleared together; every change is mirrored to storage.
type Holder struct {
	lock  sync.RWMutex
	store storage.Storage
	token string
	role  string
	out   *libol.SubLogger
}

func New(store storage.Storage) *Holder {
	h := &Holder{
		store: store,
		out:   libol.NewSubLogger("session"),
	}
	token, hasToken := store.Get(TokenKey)
	role, hasRole := store.Get(RoleKey)
	if hasToken && hasRole && token != "" {
		h.token = token
		h.role = role
	} else if hasToken || hasRole {
		h.out.Warn("Holder.New: incomplete session in storage, clearing")
		h.forget()
	}
	return h
}

// Set stores a session. Only an empty token is refused; a failed write
// to storage is logged since storage is a mirror.
func (h *Holder) Set(token, role string) error {
	if token == "" {
		return libol.NewErr("session token is empty")
	}
	h.lock.Lock()
	defer h.lock.Unlock()
	h.token = token
	h.role = role
	if err := h.store.Set(TokenKey, token); err != nil {
		h.out.Warn("Holder.Set: %s", err)
	}
	if err := h.store.Set(RoleKey, role); err != nil {
		h.out.Warn("Holder.Set: %s", err)
	}
	h.out.Debug("Holder.Set: role %s", role)
	return nil
}

func (h *Holder) Clear() {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.token = ""
	h.role = ""
	h.forget()
}

func (h *Holder) Logout() {
	h.out.Info("Holder.Logout")
	h.Clear()
}

func (h *Holder) forget() {
	if err := h.store.Remove(TokenKey); err != nil {
		h.out.Warn("Holder.forget: %s", err)
	}
	if err := h.store.Remove(RoleKey); err != nil {
		h.out.Warn("Holder.forget: %s", err)
	}
}

func (h *Holder) Token() string {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.token
}

func (h *Holder) Role() string {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.role
}

func (h *Holder) State() State {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if h.token == "" {
		return Anonymous
	}
	if schema.Role(h.role) == schema.RoleAdmin {
		return Administrator
	}
	return Authenticated
}
