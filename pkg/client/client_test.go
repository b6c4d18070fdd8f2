package client

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/krainet/userctl/pkg/schema"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	auth   []string
	hits   map[string]int
	bodies map[string]string
}

func newServer(t *testing.T) (*httptest.Server, *recorder) {
	rec := &recorder{hits: map[string]int{}, bodies: map[string]string{}}
	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec.auth = append(rec.auth, r.Header.Get("Authorization"))
			rec.hits[r.Method+" "+r.URL.Path]++
			data, _ := ioutil.ReadAll(r.Body)
			rec.bodies[r.Method+" "+r.URL.Path] = string(data)
			next.ServeHTTP(w, r)
		})
	})
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if rec.bodies["POST /api/auth/login"] != `{"username":"alice","password":"pw"}` {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("T1\n"))
	}).Methods("POST")
	router.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":5,"username":"carol","role":"USER"}`))
	}).Methods("POST")
	router.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"username":"alice","role":"ADMIN"},{"id":3,"username":"bob","role":"USER"}]`))
	}).Methods("GET")
	router.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"username":"alice","email":"a@x","role":"ADMIN"}`))
	}).Methods("GET")
	router.HandleFunc("/api/users/{key}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["key"] != "alice" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"username":"alice","role":"ADMIN"}`))
	}).Methods("GET")
	router.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"username":"alice","email":"new@x","role":"ADMIN"}`))
	}).Methods("PUT")
	router.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods("DELETE")
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestLogin(t *testing.T) {
	srv, rec := newServer(t)
	cl := New(srv.URL+"/", "stale")

	token, err := cl.Login("alice", "pw")
	assert.Nil(t, err)
	assert.Equal(t, "T1", token)
	assert.Equal(t, []string{""}, rec.auth, "login is sent without a token")

	_, err = cl.Login("alice", "wrong")
	assert.NotNil(t, err)
}

func TestParseToken(t *testing.T) {
	assert.Equal(t, "T1", ParseToken([]byte("T1")))
	assert.Equal(t, "T1", ParseToken([]byte(" T1\n")))
	assert.Equal(t, "T1", ParseToken([]byte(`"T1"`)))
	assert.Equal(t, "T1", ParseToken([]byte(`{"token":"T1","role":"ADMIN"}`)))
	assert.Equal(t, "", ParseToken([]byte("")))
	assert.Equal(t, "", ParseToken([]byte(`{"token":`)))
}

func TestGetUser(t *testing.T) {
	srv, rec := newServer(t)
	cl := New(srv.URL, "T1")

	u, err := cl.GetUser("alice")
	assert.Nil(t, err)
	assert.Equal(t, schema.RoleAdmin, u.Role)
	assert.Equal(t, []string{"Bearer T1"}, rec.auth)

	_, err = cl.GetUser("nobody")
	assert.NotNil(t, err)
	_, err = cl.GetUser("")
	assert.NotNil(t, err)
}

func TestMeAndList(t *testing.T) {
	srv, _ := newServer(t)
	cl := New(srv.URL, "T1")

	me, err := cl.Me()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), me.Id)
	assert.Equal(t, "a@x", me.Email)

	users, err := cl.ListUsers()
	assert.Nil(t, err)
	assert.Equal(t, 2, len(users))
	assert.Equal(t, "bob", users[1].Username)
}

func TestUpdateUser(t *testing.T) {
	srv, rec := newServer(t)
	cl := New(srv.URL, "T1")

	form := schema.UserForm{Email: "new@x", FirstName: "Al", Password: ""}
	u, err := cl.UpdateUser(1, form)
	assert.Nil(t, err)
	assert.Equal(t, "new@x", u.Email)

	sent := schema.UserForm{}
	assert.Nil(t, json.Unmarshal([]byte(rec.bodies["PUT /api/users/1"]), &sent))
	assert.Equal(t, form, sent)
}

func TestDeleteUser(t *testing.T) {
	srv, rec := newServer(t)
	cl := New(srv.URL, "T1")
	assert.Nil(t, cl.DeleteUser(7))
	assert.Equal(t, 1, rec.hits["DELETE /api/users/7"])
}

func TestRegister(t *testing.T) {
	srv, rec := newServer(t)
	cl := New(srv.URL, "")
	u, err := cl.Register(&schema.User{Username: "carol", Password: "pw", Email: "c@x"})
	assert.Nil(t, err)
	assert.Equal(t, int64(5), u.Id)
	assert.Equal(t, []string{""}, rec.auth)
}

func TestUnreachable(t *testing.T) {
	cl := New("http://127.0.0.1:1", "T1")
	_, err := cl.Me()
	assert.NotNil(t, err)
}
