package model

import (
	"github.com/google/uuid"
)

type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceUnavailable ResourceStatus = "unavailable"
)

// Resource is a room (whose key is lent) or a projector. Location is set
// for rooms, Brand for projectors.
type Resource struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Kind        Kind           `json:"kind" db:"kind"`
	Name        string         `json:"name" db:"name"`
	Location    string         `json:"location,omitempty" db:"location"`
	Brand       string         `json:"brand,omitempty" db:"brand"`
	Description *string        `json:"description,omitempty" db:"description"`
	Status      ResourceStatus `json:"status" db:"status"`
}

type Catalog struct {
	Rooms      []Resource `json:"rooms"`
	Projectors []Resource `json:"projectors"`
}
