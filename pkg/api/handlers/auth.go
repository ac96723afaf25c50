package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"smartgrocery/pkg/auth"
	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/utils"
)

// RegisterAuth wires the login and current-user endpoints.
func RegisterAuth(r *mux.Router, c *catalog.Catalog, limiter *auth.LimiterPool) {
	r.HandleFunc("/auth/login", loginHandler(c, limiter)).Methods(http.MethodPost)
	r.Handle("/auth/me", protected(meHandler(c))).Methods(http.MethodGet)
}

func loginHandler(c *catalog.Catalog, limiter *auth.LimiterPool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if limiter != nil && !limiter.Allow(creds.Email) {
			utils.JSONError(w, http.StatusTooManyRequests, "too many login attempts")
			return
		}
		user, ok := c.Authenticate(creds.Email, creds.Password)
		if !ok {
			logger.Warn("login_failed", "email", creds.Email)
			utils.JSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Info("login_ok", "user", user.ID, "role", string(user.Role))
		_ = utils.JSONWrite(w, http.StatusOK, map[string]any{
			"user":  user,
			"token": auth.Token(user.ID),
		})
	}
}

func meHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := auth.UserID(auth.BearerToken(r))
		user, ok := c.UserByID(id)
		if !ok {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, user)
	}
}
