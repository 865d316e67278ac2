package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/models"
)

// CourseReadRepository handles course read operations
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// GetByID returns the course with the given id, or nil when absent.
func (r *CourseReadRepository) GetByID(ctx context.Context, id int64) (*models.CourseDB, error) {
	const query = `
		SELECT id, title, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.CourseDB
	err := r.db.GetContext(ctx, &course, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", course,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &course, nil
}

// GetByTitle returns the course with the given title, or nil when absent.
func (r *CourseReadRepository) GetByTitle(ctx context.Context, title string) (*models.CourseDB, error) {
	const query = `
		SELECT id, title, created_at, updated_at
		FROM courses
		WHERE title = $1
	`

	var course models.CourseDB
	err := r.db.GetContext(ctx, &course, query, title)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title},
		"result", course,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &course, nil
}

// ListByStudentID returns the courses a student is enrolled in.
// Enrollment is derived: a student is enrolled in every course referenced
// by their exams or flashcards. The union is computed per call, there is
// no stored enrollment relation.
func (r *CourseReadRepository) ListByStudentID(ctx context.Context, studentID int64) ([]models.CourseDB, error) {
	const query = `
		SELECT c.id, c.title, c.created_at, c.updated_at
		FROM courses c
		WHERE c.id IN (
			SELECT course_id FROM exams WHERE student_id = $1
			UNION
			SELECT course_id FROM flashcards WHERE student_id = $1
		)
		ORDER BY c.id
	`

	courses := []models.CourseDB{}
	err := r.db.SelectContext(ctx, &courses, query, studentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{studentID},
		"result", len(courses),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return courses, nil
}

// CourseWriteRepository handles course write operations
type CourseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCourseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CourseWriteRepository {
	return &CourseWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new course and returns the created row.
// Returns ErrConflict when the title is already taken.
func (r *CourseWriteRepository) Save(ctx context.Context, title string) (*models.CourseDB, error) {
	query := `
		INSERT INTO courses (title, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		RETURNING id, title, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var course models.CourseDB
	err := sqlx.GetContext(ctx, executor, &course, query, title)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title},
		"result", course,
		"error", err,
	)

	if err != nil {
		return nil, mapConflict(err)
	}

	return &course, nil
}
