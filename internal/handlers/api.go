// Package handlers exposes the generated entities as plain JSON for the
// rendering boundary: stations, demand edges, trips and route geometries
// carry no behavior, only data.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/dutchev/chargemap/internal/auth"
	"github.com/dutchev/chargemap/internal/models"
	"github.com/dutchev/chargemap/internal/pipeline"
)

// Handler serves the entity export API for one session.
type Handler struct {
	session     *pipeline.Session
	authService *auth.Service
}

// NewHandler creates a Handler for the given session. authService may be
// nil when no admin surface is configured.
func NewHandler(session *pipeline.Session, authService *auth.Service) *Handler {
	return &Handler{session: session, authService: authService}
}

// EdgeView is the flattened JSON shape of a demand edge.
type EdgeView struct {
	FromID   string          `json:"from_id"`
	ToID     string          `json:"to_id"`
	FromName string          `json:"from_name"`
	ToName   string          `json:"to_name"`
	TripType models.TripType `json:"trip_type"`
	Weight   int             `json:"weight"`
}

// StationsResponse is the JSON response for GET /api/stations.
type StationsResponse struct {
	Stations []models.ChargingStation `json:"stations"`
	Count    int                      `json:"count"`
}

// EdgesResponse is the JSON response for GET /api/edges.
type EdgesResponse struct {
	Edges []EdgeView `json:"edges"`
	Count int        `json:"count"`
}

// TripsResponse is the JSON response for GET /api/trips. RoutesLoaded lets
// the consuming surface show a loading state while resolution runs.
type TripsResponse struct {
	Trips        []models.Trip `json:"trips"`
	Count        int           `json:"count"`
	RoutesLoaded bool          `json:"routesLoaded"`
	Loading      bool          `json:"loading"`
}

// StatusResponse is the JSON response for GET /api/status.
type StatusResponse struct {
	RoutesLoaded bool      `json:"routesLoaded"`
	Loading      bool      `json:"loading"`
	Stations     int       `json:"stations"`
	Edges        int       `json:"edges"`
	Trips        int       `json:"trips"`
	Routes       int       `json:"routes"`
	Timestamp    time.Time `json:"timestamp"`
}

// ErrorResponse is the JSON error shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetStations handles GET /api/stations.
func (h *Handler) GetStations(w http.ResponseWriter, r *http.Request) {
	stations := h.session.Stations()
	writeJSON(w, http.StatusOK, StationsResponse{Stations: stations, Count: len(stations)})
}

// GetEdges handles GET /api/edges.
func (h *Handler) GetEdges(w http.ResponseWriter, r *http.Request) {
	edges := h.session.Edges()
	views := make([]EdgeView, len(edges))
	for i, e := range edges {
		views[i] = EdgeView{
			FromID:   e.From.ID,
			ToID:     e.To.ID,
			FromName: e.From.Name,
			ToName:   e.To.Name,
			TripType: e.TripType,
			Weight:   e.Weight,
		}
	}
	writeJSON(w, http.StatusOK, EdgesResponse{Edges: views, Count: len(views)})
}

// GetTrips handles GET /api/trips. While routes are still loading the
// response carries zero trips and the loading flags instead of an error.
func (h *Handler) GetTrips(w http.ResponseWriter, r *http.Request) {
	loaded, loading := h.session.Status()
	trips := h.session.Trips()
	writeJSON(w, http.StatusOK, TripsResponse{
		Trips:        trips,
		Count:        len(trips),
		RoutesLoaded: loaded,
		Loading:      loading,
	})
}

// GetRoute handles GET /api/routes/{routeKey}.
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "routeKey")
	geom, ok := h.session.Routes()[key]
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "route not found"})
		return
	}
	writeJSON(w, http.StatusOK, geom)
}

// GetStatus handles GET /api/status.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	loaded, loading := h.session.Status()
	writeJSON(w, http.StatusOK, StatusResponse{
		RoutesLoaded: loaded,
		Loading:      loading,
		Stations:     len(h.session.Stations()),
		Edges:        len(h.session.Edges()),
		Trips:        len(h.session.Trips()),
		Routes:       len(h.session.Routes()),
		Timestamp:    time.Now().UTC(),
	})
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the admin token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.authService == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "admin surface not configured"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}
	var req LoginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "password is required"})
		return
	}

	token, err := h.authService.Authenticate(req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// ReloadRequest optionally overrides the seeds for the regenerated run.
type ReloadRequest struct {
	StationSeed *int32 `json:"station_seed,omitempty"`
	NetworkSeed *int32 `json:"network_seed,omitempty"`
	TripSeed    *int32 `json:"trip_seed,omitempty"`
}

// Reload handles POST /api/admin/reload: regenerates the network and
// re-expands trips, optionally under new seeds.
func (h *Handler) Reload(defaults pipeline.Seeds) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seeds := defaults

		var req ReloadRequest
		if body, err := io.ReadAll(r.Body); err == nil && len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
				return
			}
		}
		if req.StationSeed != nil {
			seeds.Stations = *req.StationSeed
		}
		if req.NetworkSeed != nil {
			seeds.Network = *req.NetworkSeed
		}
		if req.TripSeed != nil {
			seeds.Trips = *req.TripSeed
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
		defer cancel()
		if err := h.session.Reload(ctx, seeds); err != nil {
			log.WithError(err).Error("Reload failed")
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "reload failed"})
			return
		}

		h.GetStatus(w, r)
	}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}
