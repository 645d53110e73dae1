package repository

import (
	"testing"

	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/testutils"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategoryHasTasks(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	categoryID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "tasks" WHERE category_id = \$1 AND user_id = \$2`).
		WithArgs(categoryID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewGormCategoryRepository(db)
	hasTasks, err := repo.HasTasks(categoryID, userID)
	assert.NoError(t, err)
	assert.True(t, hasTasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDelete_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	categoryID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(categoryID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := NewGormCategoryRepository(db)
	err := repo.Delete(categoryID, userID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
