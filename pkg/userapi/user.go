package userapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/krainet/userctl/pkg/libol"
	"github.com/krainet/userctl/pkg/schema"
)

type User struct {
	Service *Service
}

func (h User) Router(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/api/users", h.List).Methods("GET")
	router.HandleFunc("/api/users/me", h.Me).Methods("GET")
	router.HandleFunc("/api/users/{key}", h.Get).Methods("GET")
	router.HandleFunc("/api/users/{id:[0-9]+}", h.Update).Methods("PUT")
	router.HandleFunc("/api/users/{id:[0-9]+}", h.Del).Methods("DELETE")
}

func (h User) Login(w http.ResponseWriter, r *http.Request) {
	req := &schema.LoginRequest{}
	if err := GetData(r, req); err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.Service.Login(req.Username, req.Password)
	if err != nil {
		libol.Warn("User.Login %s: %s", req.Username, err)
		ResponseError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(token))
}

func (h User) Register(w http.ResponseWriter, r *http.Request) {
	user := &schema.User{}
	if err := GetData(r, user); err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.Service.Register(user)
	if err != nil {
		ResponseError(w, err)
		return
	}
	ResponseJson(w, created.Public())
}

func (h User) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(Caller(r))
	if err != nil {
		ResponseError(w, err)
		return
	}
	out := make([]schema.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	ResponseJson(w, out)
}

func (h User) Me(w http.ResponseWriter, r *http.Request) {
	ResponseJson(w, Caller(r).Public())
}

func (h User) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	user, err := h.Service.Get(Caller(r), vars["key"])
	if err != nil {
		ResponseError(w, err)
		return
	}
	ResponseJson(w, user.Public())
}

func (h User) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	form := schema.UserForm{}
	if err := GetData(r, &form); err != nil {
		ResponseMsg(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.Service.Update(Caller(r), id, form)
	if err != nil {
		ResponseError(w, err)
		return
	}
	ResponseJson(w, user.Public())
}

func (h User) Del(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	libol.Info("User.Del %d", id)
	if err := h.Service.Delete(Caller(r), id); err != nil {
		ResponseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
