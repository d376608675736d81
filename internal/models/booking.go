package models

import "time"

// LessonType represents the format of a booked lesson
type LessonType string

const (
	LessonTypePrivate     LessonType = "private"
	LessonTypeSemiPrivate LessonType = "semi_private"
	LessonTypeGroup       LessonType = "group"
)

// BookingStatus represents the state of a lesson booking
type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// LessonBooking represents a user's reservation of a lesson occurrence.
// At most one booking exists per (user, lesson, lesson_type) triple.
// CourseID is denormalized from the lesson so dashboard reads avoid a
// join; a lesson's course never changes once created.
type LessonBooking struct {
	ID         int           `json:"id"`
	UserID     int           `json:"userId"`
	LessonID   int           `json:"lessonId"`
	CourseID   int           `json:"courseId"`
	LessonType LessonType    `json:"lessonType"`
	Schedule   time.Time     `json:"schedule"`
	Status     BookingStatus `json:"status"`
}

// BookingListItem represents a booking in student dashboard responses
type BookingListItem struct {
	ID          int           `json:"id"`
	LessonID    int           `json:"lessonId"`
	LessonTitle string        `json:"lessonTitle"`
	CourseTitle string        `json:"courseTitle"`
	LessonType  LessonType    `json:"lessonType"`
	Schedule    time.Time     `json:"schedule"`
	Status      BookingStatus `json:"status"`
}

// CreateBookingRequest represents a request to book a lesson
type CreateBookingRequest struct {
	LessonType LessonType `json:"lessonType"`
	Schedule   string     `json:"schedule"` // e.g. "2025-03-01T10:00"
}

// ValidLessonType reports whether t is a known lesson type
func ValidLessonType(t LessonType) bool {
	return t == LessonTypePrivate || t == LessonTypeSemiPrivate || t == LessonTypeGroup
}
