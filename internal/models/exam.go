package models

import "time"

// ExamDB represents an exam record in the database.
// An exam belongs to exactly one student and one course.
type ExamDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Score     int       `json:"score" db:"score"`           // Exam score
	Date      time.Time `json:"date" db:"date"`             // Date the exam was taken
	FileURL   *string   `json:"file_url" db:"file_url"`     // Optional link to the graded paper
	CourseID  int64     `json:"course_id" db:"course_id"`   // Owning course
	StudentID int64     `json:"student_id" db:"student_id"` // Owning student
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
