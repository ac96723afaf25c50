package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"smartgrocery/pkg/auth"
	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/messaging"
	"smartgrocery/pkg/utils"
)

// RegisterMessaging wires the chat endpoints over the persistent
// messaging service.
func RegisterMessaging(r *mux.Router, svc *messaging.Service, c *catalog.Catalog) {
	r.Handle("/threads", protected(listThreads(svc))).Methods(http.MethodGet)
	r.Handle("/threads/{id}/read", protected(markThreadRead(svc))).Methods(http.MethodPost)
	r.Handle("/messages", protected(listMessages(svc))).Methods(http.MethodGet)
	r.Handle("/messages", protected(sendMessage(svc, c))).Methods(http.MethodPost)
}

func listThreads(svc *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"threads": svc.Threads()})
	}
}

func listMessages(svc *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs := svc.Messages(r.URL.Query().Get("threadId"))
		_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"messages": msgs})
	}
}

func sendMessage(svc *messaging.Service, c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ThreadID string `json:"threadId"`
			Body     string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		from, ok := c.UserByID(auth.UserID(auth.BearerToken(r)))
		if !ok {
			utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		msg := svc.Send(messaging.SendParams{ThreadID: req.ThreadID, Body: req.Body, From: from})
		if msg == nil {
			// Unknown thread or blank body; the service treats both as
			// input guards rather than errors.
			utils.JSONError(w, http.StatusUnprocessableEntity, "message not sent")
			return
		}
		_ = utils.JSONWrite(w, http.StatusCreated, msg)
	}
}

func markThreadRead(svc *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(auth.BearerToken(r))
		svc.MarkThreadRead(mux.Vars(r)["id"], userID)
		_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"success": true})
	}
}
