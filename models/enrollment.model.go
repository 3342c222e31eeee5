package models

import "time"

// Enrollment links a user to a course. A (userId, courseId) pair is unique
// within the collection.
type Enrollment struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	CourseID    uint       `json:"courseId"`
	Progress    int        `json:"progress"` // 0-100
	Completed   bool       `json:"completed"`
	EnrolledAt  time.Time  `json:"enrolledAt"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

func (e Enrollment) GetID() uint { return e.ID }
