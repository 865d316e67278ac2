package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/models"
	"github.com/example/studytracker/internal/repositories"
)

var (
	// ErrCourseNotFound is returned when the referenced course does not exist.
	ErrCourseNotFound = errors.New("course does not exist")
	// ErrInvalidCourse is returned when a course is created with an empty title.
	ErrInvalidCourse = errors.New("course title must not be empty")
	// ErrCourseTitleTaken is returned when a course with the same title already exists.
	ErrCourseTitleTaken = errors.New("course title already exists")
	// ErrInvalidFlashcard is returned when a flashcard has an empty side.
	ErrInvalidFlashcard = errors.New("flashcard front and back must not be empty")
)

// CourseReader defines read operations for courses.
type CourseReader interface {
	GetByID(ctx context.Context, id int64) (*models.CourseDB, error)
	GetByTitle(ctx context.Context, title string) (*models.CourseDB, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]models.CourseDB, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, title string) (*models.CourseDB, error)
}

// ExamReader defines read operations for exams.
type ExamReader interface {
	ListByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.ExamDB, error)
}

// ExamWriter defines write operations for exams.
type ExamWriter interface {
	Save(ctx context.Context, exam models.ExamDB) (*models.ExamDB, error)
}

// FlashcardReader defines read operations for flashcards.
type FlashcardReader interface {
	ListByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.FlashcardDB, error)
}

// FlashcardWriter defines write operations for flashcards.
type FlashcardWriter interface {
	Save(ctx context.Context, card models.FlashcardDB) (*models.FlashcardDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// StudyService is the single enforcement point for ownership scoping:
// every exam and flashcard read or write goes through it and is filtered
// by the caller's student id.
type StudyService struct {
	courseReader    CourseReader
	courseWriter    CourseWriter
	examReader      ExamReader
	examWriter      ExamWriter
	flashcardReader FlashcardReader
	flashcardWriter FlashcardWriter
	kafkaWriter     KafkaWriter
}

// NewStudyService creates a new StudyService.
func NewStudyService(
	courseReader CourseReader,
	courseWriter CourseWriter,
	examReader ExamReader,
	examWriter ExamWriter,
	flashcardReader FlashcardReader,
	flashcardWriter FlashcardWriter,
	kafkaWriter KafkaWriter,
) *StudyService {
	return &StudyService{
		courseReader:    courseReader,
		courseWriter:    courseWriter,
		examReader:      examReader,
		examWriter:      examWriter,
		flashcardReader: flashcardReader,
		flashcardWriter: flashcardWriter,
		kafkaWriter:     kafkaWriter,
	}
}

// publishActivity publishes a study event to Kafka.
func (s *StudyService) publishActivity(ctx context.Context, activity models.StudyActivity) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "activity_id", activity.ActivityID)
		return
	}

	data, err := json.Marshal(activity)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity for Kafka", "activity_id", activity.ActivityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(activity.ActivityID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity to Kafka", "activity_id", activity.ActivityID, "error", err)
	} else {
		logger.Log.Infow("Activity published to Kafka", "activity_id", activity.ActivityID, "action", activity.Action)
	}
}

// ListCourses returns the courses the student is enrolled in, derived
// from their exam and flashcard records.
func (s *StudyService) ListCourses(ctx context.Context, studentID int64) ([]models.CourseDB, error) {
	courses, err := s.courseReader.ListByStudentID(ctx, studentID)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "student_id", studentID, "error", err)
		return nil, err
	}
	return courses, nil
}

// CreateCourse creates a new course with a unique title.
func (s *StudyService) CreateCourse(ctx context.Context, title string) (*models.CourseDB, error) {
	if title == "" {
		return nil, ErrInvalidCourse
	}

	existing, err := s.courseReader.GetByTitle(ctx, title)
	if err != nil {
		logger.Log.Errorw("failed to check course title", "title", title, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCourseTitleTaken
	}

	course, err := s.courseWriter.Save(ctx, title)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrCourseTitleTaken
		}
		logger.Log.Errorw("failed to save course", "title", title, "error", err)
		return nil, err
	}

	s.publishActivity(ctx, models.StudyActivity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		CourseID:   course.ID,
		Action:     "course_created",
	})

	return course, nil
}

// ListExams returns the student's own exams in the course.
func (s *StudyService) ListExams(ctx context.Context, studentID, courseID int64) ([]models.ExamDB, error) {
	course, err := s.courseReader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	return s.examReader.ListByStudentAndCourse(ctx, studentID, courseID)
}

// CreateExam records an exam for the student in the course.
func (s *StudyService) CreateExam(ctx context.Context, studentID, courseID int64, score int, date time.Time, fileURL *string) (*models.ExamDB, error) {
	course, err := s.courseReader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	exam, err := s.examWriter.Save(ctx, models.ExamDB{
		Score:     score,
		Date:      date,
		FileURL:   fileURL,
		CourseID:  courseID,
		StudentID: studentID,
	})
	if err != nil {
		logger.Log.Errorw("failed to save exam", "student_id", studentID, "course_id", courseID, "error", err)
		return nil, err
	}

	s.publishActivity(ctx, models.StudyActivity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		StudentID:  studentID,
		CourseID:   courseID,
		Action:     "exam_recorded",
	})

	return exam, nil
}

// ListFlashcards returns the student's own flashcards in the course.
func (s *StudyService) ListFlashcards(ctx context.Context, studentID, courseID int64) ([]models.FlashcardDB, error) {
	course, err := s.courseReader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	return s.flashcardReader.ListByStudentAndCourse(ctx, studentID, courseID)
}

// CreateFlashcard creates a flashcard bound to the student and course.
func (s *StudyService) CreateFlashcard(ctx context.Context, studentID, courseID int64, front, back string) (*models.FlashcardDB, error) {
	if front == "" || back == "" {
		return nil, ErrInvalidFlashcard
	}

	course, err := s.courseReader.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	card, err := s.flashcardWriter.Save(ctx, models.FlashcardDB{
		Front:     front,
		Back:      back,
		CourseID:  courseID,
		StudentID: studentID,
	})
	if err != nil {
		logger.Log.Errorw("failed to save flashcard", "student_id", studentID, "course_id", courseID, "error", err)
		return nil, err
	}

	s.publishActivity(ctx, models.StudyActivity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		StudentID:  studentID,
		CourseID:   courseID,
		Action:     "flashcard_created",
	})

	return card, nil
}
