package userapi

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/krainet/userctl/pkg/schema"
)

func ResponseJson(w http.ResponseWriter, v interface{}) {
	str, err := json.MarshalIndent(v, "", "    ")
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(str)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ResponseMsg(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	str, _ := json.Marshal(&schema.Message{Code: code, Message: message})
	_, _ = w.Write(str)
}

func ResponseError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, ErrBadCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
		code = http.StatusBadRequest
	}
	ResponseMsg(w, code, err.Error())
}

func GetData(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return err
	}
	return nil
}
