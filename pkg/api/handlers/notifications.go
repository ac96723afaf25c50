package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/utils"
)

// RegisterNotifications wires the notification endpoints.
func RegisterNotifications(r *mux.Router, c *catalog.Catalog) {
	r.Handle("/notifications", protected(listNotifications(c))).Methods(http.MethodGet)
	r.Handle("/notifications/{id:[0-9]+}/read", protected(markNotificationRead(c))).Methods(http.MethodPost, http.MethodPut)
	r.Handle("/notifications/read-all", protected(markAllNotificationsRead(c))).Methods(http.MethodPost, http.MethodPut)
}

func listNotifications(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = utils.JSONWrite(w, http.StatusOK, paginate(r, c.Notifications()))
	}
}

func markNotificationRead(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.MarkNotificationRead(pathID(mux.Vars(r)))
		_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func markAllNotificationsRead(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		c.MarkAllNotificationsRead()
		_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"success": true})
	}
}
