package models

// CourseType represents the level of a course
type CourseType string

const (
	CourseTypeBeginner     CourseType = "Beginner"
	CourseTypeIntermediate CourseType = "Intermediate"
	CourseTypeAdvanced     CourseType = "Advanced"
)

// CourseTypeAbbreviation maps abbreviations to full course types
var CourseTypeAbbreviation = map[string]CourseType{
	"b": CourseTypeBeginner,
	"i": CourseTypeIntermediate,
	"a": CourseTypeAdvanced,
}

// Course represents a course in the catalog
type Course struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	CourseType  CourseType `json:"courseType"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
}

// CourseListItem represents a course in list responses
type CourseListItem struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	CourseType CourseType `json:"courseType"`
	Price      float64    `json:"price"`
}

// CourseLessonsResponse is a course together with its lessons
type CourseLessonsResponse struct {
	Course  Course   `json:"course"`
	Lessons []Lesson `json:"lessons"`
}
