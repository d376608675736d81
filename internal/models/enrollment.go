package models

import "time"

// EnrollmentType represents how a user enrolled in a course
type EnrollmentType string

const (
	EnrollmentTypeFreeTrial EnrollmentType = "free_trial"
	EnrollmentTypePaid      EnrollmentType = "paid"
)

// EnrollmentStatus represents the payment state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentStatusPending EnrollmentStatus = "pending"
	EnrollmentStatusPaid    EnrollmentStatus = "paid"
	EnrollmentStatusFailed  EnrollmentStatus = "failed"
)

// Enrollment represents a user's registered relationship to a course.
// At most one enrollment exists per (user, course) pair. Status moves
// pending -> paid exactly once; it never moves back.
type Enrollment struct {
	ID             int              `json:"id"`
	UserID         int              `json:"userId"`
	CourseID       int              `json:"courseId"`
	EnrollmentType EnrollmentType   `json:"enrollmentType"`
	Status         EnrollmentStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// EnrollmentListItem represents an enrollment in student dashboard responses
type EnrollmentListItem struct {
	ID             int              `json:"id"`
	CourseID       int              `json:"courseId"`
	CourseTitle    string           `json:"courseTitle"`
	EnrollmentType EnrollmentType   `json:"enrollmentType"`
	Status         EnrollmentStatus `json:"status"`
}

// CreateEnrollmentRequest represents a request to enroll in a course
type CreateEnrollmentRequest struct {
	EnrollmentType EnrollmentType `json:"enrollmentType"`
}

// ValidEnrollmentType reports whether t is a known enrollment type
func ValidEnrollmentType(t EnrollmentType) bool {
	return t == EnrollmentTypeFreeTrial || t == EnrollmentTypePaid
}
