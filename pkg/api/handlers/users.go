package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/models"
	"smartgrocery/pkg/utils"
)

// RegisterUsers wires the user management endpoints.
func RegisterUsers(r *mux.Router, c *catalog.Catalog) {
	r.Handle("/users", protected(listUsers(c))).Methods(http.MethodGet)
	r.Handle("/users", protected(createUser(c))).Methods(http.MethodPost)
	r.Handle("/users/{id:[0-9]+}", protected(updateUser(c))).Methods(http.MethodPut, http.MethodPatch)
	r.Handle("/users/{id:[0-9]+}", protected(deleteUser(c))).Methods(http.MethodDelete)
}

func listUsers(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.JSONWrite(w, http.StatusOK, paginate(r, c.ListUsers()))
	}
}

func createUser(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u models.User
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if u.Email == "" {
			utils.JSONError(w, http.StatusBadRequest, "email is required")
			return
		}
		_ = utils.JSONWrite(w, http.StatusCreated, c.CreateUser(u))
	}
}

func updateUser(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := io.ReadAll(r.Body)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		u, ok := c.UpdateUser(pathID(mux.Vars(r)), patch)
		if !ok {
			utils.JSONError(w, http.StatusNotFound, "User not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, u)
	}
}

func deleteUser(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.DeleteUser(pathID(mux.Vars(r))) {
			utils.JSONError(w, http.StatusNotFound, "User not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"success": true})
	}
}
