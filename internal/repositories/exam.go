package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/studytracker/internal/logger"
	"github.com/example/studytracker/internal/models"
)

// ExamReadRepository handles exam read operations
type ExamReadRepository struct {
	db *sqlx.DB
}

func NewExamReadRepository(db *sqlx.DB) *ExamReadRepository {
	return &ExamReadRepository{db: db}
}

// ListByStudentAndCourse returns the exams of one student in one course.
// Rows of other students are never returned, even for the same course.
func (r *ExamReadRepository) ListByStudentAndCourse(ctx context.Context, studentID, courseID int64) ([]models.ExamDB, error) {
	const query = `
		SELECT id, score, date, file_url, course_id, student_id, created_at, updated_at
		FROM exams
		WHERE student_id = $1 AND course_id = $2
		ORDER BY date, id
	`

	exams := []models.ExamDB{}
	err := r.db.SelectContext(ctx, &exams, query, studentID, courseID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{studentID, courseID},
		"result", len(exams),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return exams, nil
}

// ExamWriteRepository handles exam write operations
type ExamWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExamWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExamWriteRepository {
	return &ExamWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new exam bound to its student and course and returns the created row.
func (r *ExamWriteRepository) Save(ctx context.Context, exam models.ExamDB) (*models.ExamDB, error) {
	query := `
		INSERT INTO exams (score, date, file_url, course_id, student_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, score, date, file_url, course_id, student_id, created_at, updated_at
	`
	args := []any{exam.Score, exam.Date, exam.FileURL, exam.CourseID, exam.StudentID}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var created models.ExamDB
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
