// Package models defines server-side records persisted in the database and
// returned over the REST API.
package models

import "time"

// User is the single owner of every record. PinHash never leaves the server.
type User struct {
	ID        string     `json:"_id"`
	PinHash   string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
