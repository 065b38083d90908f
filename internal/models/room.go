package models

import "time"

// Room represents a single listing published by a user.
type Room struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Location    [2]float64 `json:"location"` // [latitude, longitude]
	Owner       RoomOwner  `json:"user"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// RoomSummary is the list-view shape of a room. The description field is
// deliberately absent.
type RoomSummary struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Price    float64    `json:"price"`
	Location [2]float64 `json:"location"`
	Owner    RoomOwner  `json:"user"`
}

// RoomOwner annotates a room with the owning user's public profile.
type RoomOwner struct {
	ID      string        `json:"id"`
	Account PublicAccount `json:"account"`
}
