package models

import "time"

// MembershipEventType names a change to class membership.
type MembershipEventType string

const (
	EventStudentEnrolled   MembershipEventType = "student_enrolled"
	EventStudentUnenrolled MembershipEventType = "student_unenrolled"
)

// MembershipEvent is published after a committed membership change.
type MembershipEvent struct {
	Type            MembershipEventType `json:"type"`
	ClassRegistry   string              `json:"class_registry"`
	StudentRegistry string              `json:"student_registry"`
	OccurredAt      time.Time           `json:"occurred_at"`
}
