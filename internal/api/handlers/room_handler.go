package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/avasse/roomly-be/internal/auth"
	"github.com/avasse/roomly-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// RoomHandler handles HTTP requests for room listings.
type RoomHandler struct {
	service services.RoomServiceProvider
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service services.RoomServiceProvider) *RoomHandler {
	return &RoomHandler{service: service}
}

// Publish handles the creation of a new room by the authenticated user.
func (h *RoomHandler) Publish(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var fields services.RoomFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(user.ID, fields)
	if err != nil {
		log.Warn().Err(err).Str("owner_id", user.ID).Msg("Failed to publish room")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// GetAll returns every room. Public read: no filtering, no pagination.
func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetAllRooms()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list rooms")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rooms)
}

// Get returns a single room with its owner profile. An unknown id is an
// ordinary not-found result, not an error.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing room id")
		return
	}

	room, found, err := h.service.GetRoomByID(id)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("Failed to get room")
		writeServiceError(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Room not found"})
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// Update applies a partial update to a room owned by the requester.
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing room id")
		return
	}

	var fields services.RoomFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(id, user.ID, fields)
	if err != nil {
		log.Warn().Err(err).Str("room_id", id).Str("requester_id", user.ID).Msg("Failed to update room")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

// Delete removes a room owned by the requester.
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing room id")
		return
	}

	if err := h.service.DeleteRoom(id, user.ID); err != nil {
		log.Warn().Err(err).Str("room_id", id).Str("requester_id", user.ID).Msg("Failed to delete room")
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Room deleted"})
}
