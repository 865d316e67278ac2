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

// StudentReadRepository handles student read operations
type StudentReadRepository struct {
	db *sqlx.DB
}

func NewStudentReadRepository(db *sqlx.DB) *StudentReadRepository {
	return &StudentReadRepository{db: db}
}

// GetByUsername returns the student with the given username, or nil when absent.
func (r *StudentReadRepository) GetByUsername(ctx context.Context, username string) (*models.StudentDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM students
		WHERE username = $1
	`

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, username)

	// Log query and args in a single line; the row itself is not logged
	// because it carries the password hash.
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// GetByID returns the student with the given id, or nil when absent.
func (r *StudentReadRepository) GetByID(ctx context.Context, id int64) (*models.StudentDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// StudentWriteRepository handles student write operations
type StudentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewStudentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *StudentWriteRepository {
	return &StudentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new student and returns the created row.
// Returns ErrConflict when the username is already taken.
func (r *StudentWriteRepository) Save(ctx context.Context, username, passwordHash string) (*models.StudentDB, error) {
	query := `
		INSERT INTO students (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, username, password_hash, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var student models.StudentDB
	err := sqlx.GetContext(ctx, executor, &student, query, username, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		return nil, mapConflict(err)
	}

	return &student, nil
}
