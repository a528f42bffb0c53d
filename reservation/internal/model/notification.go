package model

import (
	"time"

	"github.com/google/uuid"
)

// DecisionEvent is published once an admin approves or rejects a reservation.
type DecisionEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	RequesterID   uuid.UUID `json:"requesterId"`
	ActorID       uuid.UUID `json:"actorId"`
	Outcome       Status    `json:"outcome"`
	Annotation    *string   `json:"annotation,omitempty"`
	DecidedAt     time.Time `json:"decidedAt"`
}

type Notification struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	ReservationID uuid.UUID `json:"reservationId" db:"reservation_id"`
	Outcome       Status    `json:"outcome" db:"outcome"`
	Message       string    `json:"message" db:"message"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

func NotificationFromEvent(ev DecisionEvent) Notification {
	msg := "Peminjaman disetujui"
	if ev.Outcome == StatusRejected {
		msg = "Peminjaman ditolak"
		if ev.Annotation != nil {
			msg += ": " + *ev.Annotation
		}
	}
	return Notification{
		ID:            uuid.New(),
		UserID:        ev.RequesterID,
		ReservationID: ev.ReservationID,
		Outcome:       ev.Outcome,
		Message:       msg,
		CreatedAt:     ev.DecidedAt,
	}
}
