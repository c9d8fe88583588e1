package models

import "time"

const (
	SessionStatusPending   = "pending"
	SessionStatusCompleted = "completed"
)

type SessionProgress struct {
	Current int `bson:"current" json:"current"`
	Total   int `bson:"total" json:"total"`
}

// FillSession is the shared broker record for a cross-device fill. After
// creation the remote filler is the only writer of Responses, Progress and
// Status; the initiating side only reads.
type FillSession struct {
	SessionID       string `bson:"sessionId" json:"sessionId"`
	QuestionnaireID string `bson:"questionnaireId" json:"questionnaireId"`
	StorageKey      string `bson:"storageKey" json:"storageKey"`
	Status          string `bson:"status" json:"status"`
	// Created is unix milliseconds, matching the original record shape.
	Created   int64           `bson:"created" json:"created"`
	Responses ResponseMap     `bson:"responses" json:"responses"`
	Progress  SessionProgress `bson:"progress" json:"progress"`
	// CompletedAt is an ISO-8601 UTC timestamp; the fixed format keeps
	// lexicographic order equal to chronological order.
	CompletedAt string `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	// CreatedAt exists solely for the pending-session TTL index.
	CreatedAt time.Time `bson:"createdAt" json:"-"`
}

func (s *FillSession) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}
