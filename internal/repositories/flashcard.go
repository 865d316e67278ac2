package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/models"
)

// FlashcardReadRepository handles flashcard read operations
type FlashcardReadRepository struct {
	db *sqlx.DB
}

func NewFlashcardReadRepository(db *sqlx.DB) *FlashcardReadRepository {
	return &FlashcardReadRepository{db: db}
}

// ListByStudentAndCourse returns the flashcards of one student in one course.
func (r *FlashcardReadRepository) ListByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.FlashcardDB, error) {
	const query = `
		SELECT id, front, back, course_id, student_id, created_at, updated_at
		FROM flashcards
		WHERE student_id = $1 AND course_id = $2
		ORDER BY id
	`

	flashcards := []models.FlashcardDB{}
	err := r.db.SelectContext(ctx, &flashcards, query, studentID, courseID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{studentID, courseID},
		"result", len(flashcards),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return flashcards, nil
}

// FlashcardWriteRepository handles flashcard write operations
type FlashcardWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFlashcardWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FlashcardWriteRepository {
	return &FlashcardWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new flashcard bound to its student and course and returns the created row.
func (r *FlashcardWriteRepository) Save(ctx context.Context, card models.FlashcardDB) (*models.FlashcardDB, error) {
	query := `
		INSERT INTO flashcards (front, back, course_id, student_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, front, back, course_id, student_id, created_at, updated_at
	`
	args := []any{card.Front, card.Back, card.CourseID, card.StudentID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var created models.FlashcardDB
	err := sqlx.GetContext(ctx, executor, &created, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}
