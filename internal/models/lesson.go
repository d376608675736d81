package models

import "time"

// Lesson represents a lesson in a course, assigned to a teacher.
// Completed is monotonic: once set true it is never reset.
type Lesson struct {
	ID        int       `json:"id"`
	CourseID  int       `json:"courseId"`
	TeacherID int       `json:"teacherId"`
	Title     string    `json:"title"`
	Schedule  time.Time `json:"schedule"`
	Completed bool      `json:"completed"`
}

// TeacherLessonItem represents a lesson in teacher dashboard responses
type TeacherLessonItem struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	Title       string    `json:"title"`
	Schedule    time.Time `json:"schedule"`
	Completed   bool      `json:"completed"`
}
