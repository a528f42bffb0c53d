package model

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindRoomKey   Kind = "room_key"
	KindProjector Kind = "projector"
)

func (k Kind) Valid() bool {
	return k == KindRoomKey || k == KindProjector
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses admit no further mutation.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusCompleted
}

// CanTransition reports whether a stored status may move to next.
// approved -> completed is never stored, it is derived by ObservedStatus.
func CanTransition(from, next Status) bool {
	if from != StatusPending {
		return false
	}
	switch next {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID              uuid.UUID `json:"id" db:"id"`
	RequesterID     uuid.UUID `json:"requesterId" db:"requester_id"`
	RequesterName   string    `json:"requesterName,omitempty" db:"requester_name"`
	RequesterNimNip string    `json:"requesterNimNip,omitempty" db:"requester_nim_nip"`
	Kind            Kind      `json:"kind" db:"kind"`
	ResourceID      uuid.UUID `json:"resourceId" db:"resource_id"`
	Purpose         string    `json:"purpose" db:"purpose"`
	StartAt         time.Time `json:"startAt" db:"start_at"`
	EndAt           time.Time `json:"endAt" db:"end_at"`
	Status          Status    `json:"status" db:"status"`
	AdminAnnotation *string   `json:"adminAnnotation" db:"admin_annotation"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
	EffectiveStatus Status    `json:"effectiveStatus" db:"-"`
}

// ObservedStatus is the status a reader sees at now: an approved
// reservation whose window has passed reads as completed.
func ObservedStatus(r Reservation, now time.Time) Status {
	if r.Status == StatusApproved && now.After(r.EndAt) {
		return StatusCompleted
	}
	return r.Status
}

// Transition is a compare-and-swap on one reservation row. RequesterID, when
// set, restricts the swap to the owner.
type Transition struct {
	ID          uuid.UUID
	From        Status
	To          Status
	RequesterID *uuid.UUID
	Annotation  *string
	At          time.Time
}

type Scope string

const (
	ScopeOwn Scope = "own"
	ScopeAll Scope = "all"
)

type ListFilter struct {
	RequesterID *uuid.UUID
	Status      *Status
	Now         time.Time
	Limit       uint64
}

type Summary struct {
	Total     int `json:"total" db:"total"`
	Pending   int `json:"pending" db:"pending"`
	Approved  int `json:"approved" db:"approved"`
	Active    int `json:"active" db:"active"`
	Completed int `json:"completed" db:"completed"`
	Rejected  int `json:"rejected" db:"rejected"`
	Cancelled int `json:"cancelled" db:"cancelled"`
}

type SubmitRequest struct {
	Kind       Kind      `json:"kind" validate:"required,oneof=room_key projector"`
	ResourceID uuid.UUID `json:"resourceId" validate:"required"`
	Purpose    string    `json:"purpose" validate:"required"`
	StartAt    time.Time `json:"startAt" validate:"required"`
	EndAt      time.Time `json:"endAt" validate:"required"`
}

type DecisionRequest struct {
	Outcome    Status  `json:"outcome" validate:"required,oneof=approved rejected"`
	Annotation *string `json:"annotation"`
}

type ListQuery struct {
	Scope  Scope  `query:"scope" validate:"omitempty,oneof=own all"`
	Status Status `query:"status" validate:"omitempty,oneof=pending approved rejected completed cancelled"`
	Limit  uint64 `query:"limit"`
}

type ListReservations struct {
	TotalElements int           `json:"totalElements"`
	Items         []Reservation `json:"items"`
}
