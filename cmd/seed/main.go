// Command seed loads development fixtures: a few students, courses,
// exams and flashcards to click around with locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/example/studytracker/internal/passwords"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *c); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed data loaded")
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "studytracker"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	students := []struct {
		username string
		password string
	}{
		{"alice", "pw1"},
		{"bob", "hunter2"},
		{"carol", "letmein"},
	}

	studentIDs := make(map[string]int64, len(students))
	for _, s := range students {
		hash, err := passwords.Hash(s.password)
		if err != nil {
			return err
		}
		var id int64
		if err := tx.GetContext(ctx, &id, `
			INSERT INTO students (username, password_hash, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			ON CONFLICT (username) DO UPDATE SET updated_at = NOW()
			RETURNING id
		`, s.username, hash); err != nil {
			return err
		}
		studentIDs[s.username] = id
	}

	courses := []string{"Biology 101", "Calculus II", "World History"}
	courseIDs := make(map[string]int64, len(courses))
	for _, title := range courses {
		var id int64
		if err := tx.GetContext(ctx, &id, `
			INSERT INTO courses (title, created_at, updated_at)
			VALUES ($1, NOW(), NOW())
			ON CONFLICT (title) DO UPDATE SET updated_at = NOW()
			RETURNING id
		`, title); err != nil {
			return err
		}
		courseIDs[title] = id
	}

	exams := []struct {
		student string
		course  string
		score   int
		date    string
	}{
		{"alice", "Biology 101", 91, "2025-03-14"},
		{"alice", "Calculus II", 78, "2025-04-02"},
		{"bob", "Biology 101", 66, "2025-03-14"},
	}
	for _, e := range exams {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO exams (score, date, course_id, student_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`, e.score, e.date, courseIDs[e.course], studentIDs[e.student]); err != nil {
			return err
		}
	}

	flashcards := []struct {
		student string
		course  string
		front   string
		back    string
	}{
		{"alice", "Biology 101", "What is the powerhouse of the cell?", "The mitochondria"},
		{"alice", "World History", "Year the Berlin Wall fell?", "1989"},
		{"carol", "Calculus II", "d/dx sin(x)?", "cos(x)"},
	}
	for _, f := range flashcards {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO flashcards (front, back, course_id, student_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`, f.front, f.back, courseIDs[f.course], studentIDs[f.student]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
