package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/avasse/roomly-be/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Coordinates is the location shape clients send: an object with lat/lng.
// Rooms serialize it back out as a 2-element [lat, lng] array.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RoomFields is a partial set of room attributes. Nil pointers mean the
// field was absent from the request, which is how Create distinguishes
// missing parameters and Update knows what to leave untouched.
type RoomFields struct {
	Title       *string      `json:"title"`
	Price       *float64     `json:"price"`
	Description *string      `json:"description"`
	Location    *Coordinates `json:"location"`
}

// RoomServiceProvider defines the interface for room services.
type RoomServiceProvider interface {
	CreateRoom(ownerID string, fields RoomFields) (models.Room, error)
	GetAllRooms() ([]models.RoomSummary, error)
	GetRoomByID(id string) (models.Room, bool, error)
	UpdateRoom(id, requesterID string, fields RoomFields) (models.Room, error)
	DeleteRoom(id, requesterID string) error
}

// RoomService maintains the two-sided user/room ownership relationship:
// the room's user_id is the source of truth, and the owner's denormalized
// rooms list is kept in step with it on publish and delete.
type RoomService struct {
	db *sql.DB
}

// NewRoomService creates a new RoomService.
func NewRoomService(db *sql.DB) *RoomService {
	return &RoomService{db: db}
}

// CreateRoom persists a new room owned by ownerID and appends its id to the
// owner's rooms list. Both writes run in one transaction so a crash between
// them cannot leave the back-reference dangling.
func (s *RoomService) CreateRoom(ownerID string, fields RoomFields) (models.Room, error) {
	if fields.Title == nil || *fields.Title == "" ||
		fields.Price == nil ||
		fields.Description == nil || *fields.Description == "" ||
		fields.Location == nil {
		return models.Room{}, ErrMissingParameters
	}

	room := models.Room{
		ID:          uuid.New().String(),
		Title:       *fields.Title,
		Description: *fields.Description,
		Price:       *fields.Price,
		Location:    [2]float64{fields.Location.Lat, fields.Location.Lng},
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Room{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO rooms(id, title, description, price, lat, lng, user_id, created_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?)",
		room.ID, room.Title, room.Description, room.Price, room.Location[0], room.Location[1], ownerID, room.CreatedAt,
	)
	if err != nil {
		return models.Room{}, err
	}

	ownedRooms, err := ownedRoomIDs(tx, ownerID)
	if err != nil {
		return models.Room{}, err
	}
	if err := writeOwnedRoomIDs(tx, ownerID, append(ownedRooms, room.ID)); err != nil {
		return models.Room{}, err
	}

	var owner models.PublicAccount
	err = tx.QueryRow("SELECT username, name FROM users WHERE id = ?", ownerID).
		Scan(&owner.Username, &owner.Name)
	if err != nil {
		return models.Room{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Room{}, err
	}

	room.Owner = models.RoomOwner{ID: ownerID, Account: owner}
	log.Info().Str("room_id", room.ID).Str("owner_id", ownerID).Msg("Room published")
	return room, nil
}

// GetAllRooms returns every room annotated with its owner's public profile.
// The description field is left out of the list view.
func (s *RoomService) GetAllRooms() ([]models.RoomSummary, error) {
	rows, err := s.db.Query(`
	SELECT r.id, r.title, r.price, r.lat, r.lng, r.user_id, u.username, u.name
	FROM rooms r JOIN users u ON u.id = r.user_id
	ORDER BY r.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []models.RoomSummary{}
	for rows.Next() {
		var rm models.RoomSummary
		err := rows.Scan(
			&rm.ID, &rm.Title, &rm.Price, &rm.Location[0], &rm.Location[1],
			&rm.Owner.ID, &rm.Owner.Account.Username, &rm.Owner.Account.Name,
		)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

// GetRoomByID retrieves a single room with its owner profile. A missing
// room is reported through the found flag, not an error: the public read
// answers "not found" as an ordinary result.
func (s *RoomService) GetRoomByID(id string) (models.Room, bool, error) {
	var rm models.Room
	row := s.db.QueryRow(`
	SELECT r.id, r.title, r.description, r.price, r.lat, r.lng, r.user_id, r.created_at, u.username, u.name
	FROM rooms r JOIN users u ON u.id = r.user_id
	WHERE r.id = ?`, id)
	err := row.Scan(
		&rm.ID, &rm.Title, &rm.Description, &rm.Price, &rm.Location[0], &rm.Location[1],
		&rm.Owner.ID, &rm.CreatedAt, &rm.Owner.Account.Username, &rm.Owner.Account.Name,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Room{}, false, nil
		}
		return models.Room{}, false, err
	}
	return rm, true, nil
}

// UpdateRoom applies the supplied fields to a room after checking that the
// requester owns it. Fields absent from the partial update are untouched.
func (s *RoomService) UpdateRoom(id, requesterID string, fields RoomFields) (models.Room, error) {
	var ownerID string
	err := s.db.QueryRow("SELECT user_id FROM rooms WHERE id = ?", id).Scan(&ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, err
	}
	if !sameIdentity(requesterID, ownerID) {
		return models.Room{}, ErrNotOwner
	}

	set := []string{}
	args := []any{}
	if fields.Title != nil && *fields.Title != "" {
		set = append(set, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Price != nil {
		set = append(set, "price = ?")
		args = append(args, *fields.Price)
	}
	if fields.Description != nil && *fields.Description != "" {
		set = append(set, "description = ?")
		args = append(args, *fields.Description)
	}
	if fields.Location != nil {
		set = append(set, "lat = ?", "lng = ?")
		args = append(args, fields.Location.Lat, fields.Location.Lng)
	}
	if len(set) == 0 {
		return models.Room{}, ErrMissingParameters
	}
	args = append(args, id)

	_, err = s.db.Exec("UPDATE rooms SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Room{}, err
	}

	room, found, err := s.GetRoomByID(id)
	if err != nil {
		return models.Room{}, err
	}
	if !found {
		return models.Room{}, ErrRoomNotFound
	}
	return room, nil
}

// DeleteRoom removes a room after checking ownership, then drops its id
// from the owner's rooms list. An id already absent from the list (a
// pre-existing inconsistency) leaves the list untouched; the room is
// deleted regardless.
func (s *RoomService) DeleteRoom(id, requesterID string) error {
	var ownerID string
	err := s.db.QueryRow("SELECT user_id FROM rooms WHERE id = ?", id).Scan(&ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrRoomNotFound
		}
		return err
	}
	if !sameIdentity(requesterID, ownerID) {
		return ErrNotOwner
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM rooms WHERE id = ?", id); err != nil {
		return err
	}

	ownedRooms, err := ownedRoomIDs(tx, ownerID)
	if err != nil {
		return err
	}
	for i, roomID := range ownedRooms {
		if roomID == id {
			ownedRooms = append(ownedRooms[:i], ownedRooms[i+1:]...)
			break
		}
	}
	if err := writeOwnedRoomIDs(tx, ownerID, ownedRooms); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Str("room_id", id).Str("owner_id", ownerID).Msg("Room deleted")
	return nil
}

// sameIdentity compares two identities by canonical string form; ids are
// opaque strings, so string equality is the defined equality.
func sameIdentity(a, b string) bool {
	return a == b
}

func ownedRoomIDs(tx *sql.Tx, userID string) ([]string, error) {
	var raw string
	if err := tx.QueryRow("SELECT rooms_json FROM users WHERE id = ?", userID).Scan(&raw); err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("corrupt rooms list for user %s: %w", userID, err)
	}
	return ids, nil
}

func writeOwnedRoomIDs(tx *sql.Tx, userID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = tx.Exec("UPDATE users SET rooms_json = ? WHERE id = ?", string(raw), userID)
	return err
}
