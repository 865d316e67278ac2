package models

// StudyActivity represents a study event published to the activity topic.
type StudyActivity struct {
	ActivityID string `json:"activity_id"` // ActivityID is a unique identifier for the event.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	StudentID  int64  `json:"student_id"`  // StudentID is the account the activity belongs to; 0 for anonymous actions.
	CourseID   int64  `json:"course_id"`   // CourseID is the course involved.
	Action     string `json:"action"`      // Action describes the event, e.g. "exam_recorded" or "flashcard_created".
}
