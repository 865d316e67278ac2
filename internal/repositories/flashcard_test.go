package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/studytracker/internal/models"
)

func TestFlashcardRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewFlashcardWriteRepository(db, nil)
	readRepo := NewFlashcardReadRepository(db)

	alice, err := NewStudentWriteRepository(db, nil).Save(ctx, "alice", "$2a$10$hash")
	assert.NoError(t, err)
	bob, err := NewStudentWriteRepository(db, nil).Save(ctx, "bob", "$2a$10$hash")
	assert.NoError(t, err)
	biology, err := NewCourseWriteRepository(db, nil).Save(ctx, "Biology 101")
	assert.NoError(t, err)

	t.Run("Save returns the created row", func(t *testing.T) {
		created, err := writeRepo.Save(ctx, models.FlashcardDB{
			Front:     "What is the powerhouse of the cell?",
			Back:      "The mitochondria",
			CourseID:  biology.ID,
			StudentID: alice.ID,
		})
		assert.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "The mitochondria", created.Back)
		assert.Equal(t, alice.ID, created.StudentID)
	})

	t.Run("listing is scoped to one student and course", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, models.FlashcardDB{
			Front: "bob's front", Back: "bob's back",
			CourseID: biology.ID, StudentID: bob.ID,
		})
		assert.NoError(t, err)

		aliceCards, err := readRepo.ListByStudentAndCourse(ctx, alice.ID, biology.ID)
		assert.NoError(t, err)
		assert.Len(t, aliceCards, 1)
		assert.Equal(t, alice.ID, aliceCards[0].StudentID)

		bobCards, err := readRepo.ListByStudentAndCourse(ctx, bob.ID, biology.ID)
		assert.NoError(t, err)
		assert.Len(t, bobCards, 1)
		assert.Equal(t, "bob's front", bobCards[0].Front)
	})

	t.Run("no rows yields an empty slice", func(t *testing.T) {
		cards, err := readRepo.ListByStudentAndCourse(ctx, alice.ID, 99999)
		assert.NoError(t, err)
		assert.Empty(t, cards)
	})
}
