package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"smartgrocery/pkg/catalog"
	"smartgrocery/pkg/utils"
)

// RegisterReports wires the reporting endpoints.
func RegisterReports(r *mux.Router, c *catalog.Catalog) {
	r.Handle("/reports/monthly-consumption", protected(monthlyConsumption(c))).Methods(http.MethodGet)
}

func monthlyConsumption(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		rows := c.MonthlyConsumption(q.Get("start"), q.Get("end"))
		_ = utils.JSONWrite(w, http.StatusOK, map[string]any{"data": rows})
	}
}
