package routes

import (
	"encoding/json"
	"net/http"

	"perfume-logistics/internal/catalog"
	"perfume-logistics/internal/session"

	"github.com/go-chi/chi/v5"
)

type ProductsResponse struct {
	Products []catalog.Product `json:"products"`
	Stats    catalog.Stats     `json:"stats"`
}

func ListProductsHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := s.Products()
		writeJSON(w, http.StatusOK, ProductsResponse{
			Products: products,
			Stats:    catalog.Summarize(products),
		})
	}
}

func AddProductHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in catalog.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p, err := s.AddProduct(r.Context(), in)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func UpdateProductHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in catalog.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.UpdateProduct(r.Context(), id, in); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
	}
}

func DeleteProductHandler(s *session.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.RemoveProduct(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}
