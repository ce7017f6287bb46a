package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	nodex "github.com/napatw/shopmind/assistant/nodes"
	catalogx "github.com/napatw/shopmind/catalog"
)

type chatRequest struct {
	Message    string `json:"message"`
	CustomerID string `json:"customer_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type memorySearchResponse struct {
	Query  string `json:"query"`
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Smart Shopping Assistant API is running",
		"status":  "healthy",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := s.assistant.HandleMessage(r.Context(), req.CustomerID, req.Message)
	if err != nil {
		if errors.Is(err, nodex.ErrInvalidMessage) {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}
		log.Error().Err(err).Msg("chat pipeline failed")
		writeError(w, http.StatusInternalServerError, "chat is temporarily unavailable")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response:  reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleListProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Products())
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["productID"]

	p, err := s.catalog.Product(id)
	if err != nil {
		if errors.Is(err, catalogx.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "catalog lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	var filter catalogx.Filter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		writeError(w, http.StatusBadRequest, "invalid search filter")
		return
	}

	writeJSON(w, http.StatusOK, s.catalog.Search(filter))
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: s.catalog.GroupNames()})
}

func (s *Server) handleMemorySearch(w http.ResponseWriter, r *http.Request) {
	if s.memory == nil {
		writeError(w, http.StatusServiceUnavailable, "memory store not configured")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	result, err := s.memory.Lookup(r.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("memory search failed")
		writeError(w, http.StatusBadGateway, "memory store unavailable")
		return
	}

	writeJSON(w, http.StatusOK, memorySearchResponse{Query: query, Result: result})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
