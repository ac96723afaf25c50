package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"smartgrocery/pkg/auth"
	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/models"
	"smartgrocery/pkg/utils"
)

// RegisterOrders wires the order endpoints.
func RegisterOrders(r *mux.Router, c *catalog.Catalog) {
	r.Handle("/orders", protected(listOrders(c))).Methods(http.MethodGet)
	r.Handle("/orders/{id:[0-9]+}", protected(getOrder(c))).Methods(http.MethodGet)
	r.Handle("/orders", protected(createOrder(c))).Methods(http.MethodPost)
	r.Handle("/orders/{id:[0-9]+}", protected(updateOrder(c))).Methods(http.MethodPut, http.MethodPatch)
}

func listOrders(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := c.ListOrders(catalog.OrderFilters{
			Status:     models.OrderStatus(q.Get("status")),
			SupplierID: queryInt(r, "supplierId", 0),
		})
		_ = utils.JSONWrite(w, http.StatusOK, paginate(r, items))
	}
}

func getOrder(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := c.GetOrder(pathID(mux.Vars(r)))
		if !ok {
			utils.JSONError(w, http.StatusNotFound, "Order not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, o)
	}
}

func createOrder(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var o models.Order
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if o.ProductID == 0 {
			utils.JSONError(w, http.StatusBadRequest, "productId is required")
			return
		}
		if o.RequestedBy == 0 {
			o.RequestedBy = auth.UserID(auth.BearerToken(r))
		}
		_ = utils.JSONWrite(w, http.StatusCreated, c.CreateOrder(o))
	}
}

func updateOrder(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := io.ReadAll(r.Body)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		o, ok := c.UpdateOrder(pathID(mux.Vars(r)), patch)
		if !ok {
			utils.JSONError(w, http.StatusNotFound, "Order not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, o)
	}
}
