// Package services contains the server-side business logic behind the REST
// API. Every operation is scoped to the user id taken from the request's
// authenticated identity.
package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/lifeos/lifeos/internal/common"
)

// Record ids are UUIDs. Anything else cannot exist, so it is reported as
// not found instead of reaching the database.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrNotFound
	}
	return nil
}

func utcNow() time.Time { return time.Now().UTC() }
