package models

import "time"

// FlashcardDB represents a flashcard record in the database.
// Same ownership shape as ExamDB: one student, one course.
type FlashcardDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Front     string    `json:"front" db:"front"`           // Question side
	Back      string    `json:"back" db:"back"`             // Answer side
	CourseID  int64     `json:"course_id" db:"course_id"`   // Owning course
	StudentID int64     `json:"student_id" db:"student_id"` // Owning student
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
