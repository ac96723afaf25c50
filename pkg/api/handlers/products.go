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

// RegisterProducts wires the product CRUD plus the dev stock-adjust
// endpoint. Reads are open so the storefront can browse without a
// session; mutations need a token.
func RegisterProducts(r *mux.Router, c *catalog.Catalog) {
	r.HandleFunc("/products", listProducts(c)).Methods(http.MethodGet)
	r.HandleFunc("/products/{id:[0-9]+}", getProduct(c)).Methods(http.MethodGet)
	r.Handle("/products", protected(createProduct(c))).Methods(http.MethodPost)
	r.Handle("/products/{id:[0-9]+}", protected(updateProduct(c))).Methods(http.MethodPut, http.MethodPatch)
	r.Handle("/products/{id:[0-9]+}", protected(deleteProduct(c))).Methods(http.MethodDelete)
	r.Handle("/dev/adjust-stock", protected(adjustStock(c))).Methods(http.MethodPost)
}

func listProducts(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := c.ListProducts(catalog.ProductFilters{
			Query:    q.Get("search"),
			Category: q.Get("category"),
			LowStock: q.Get("lowStock") == "true",
		})
		_ = utils.JSONWrite(w, http.StatusOK, paginate(r, items))
	}
}

func getProduct(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := c.GetProduct(pathID(mux.Vars(r)))
		if !ok {
			utils.JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, p)
	}
}

func createProduct(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if p.Name == "" {
			utils.JSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		_ = utils.JSONWrite(w, http.StatusCreated, c.CreateProduct(p))
	}
}

func updateProduct(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := io.ReadAll(r.Body)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p, ok := c.UpdateProduct(pathID(mux.Vars(r)), patch)
		if !ok {
			utils.JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, p)
	}
}

func deleteProduct(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.DeleteProduct(pathID(mux.Vars(r))) {
			utils.JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func adjustStock(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID int `json:"productId"`
			Stock     int `json:"stock"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.JSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p, ok := c.AdjustStock(req.ProductID, req.Stock)
		if !ok {
			utils.JSONError(w, http.StatusNotFound, "Product not found")
			return
		}
		_ = utils.JSONWrite(w, http.StatusOK, p)
	}
}
