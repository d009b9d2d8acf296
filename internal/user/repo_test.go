package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db

	return mock, func() {
		database.DB = originalDB
		mockDB.Close()
	}
}

func TestExistsByUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		count    int64
		expected bool
	}{
		{name: "Username taken", username: "alice", count: 1, expected: true},
		{name: "Username free", username: "bob", count: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, teardown := setupMockDB(t)
			defer teardown()

			mock.ExpectQuery(`SELECT count`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			assert.Equal(t, tt.expected, ExistsByUsername(tt.username))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetByUsername(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mock, teardown := setupMockDB(t)
		defer teardown()

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow("user-1", "alice"))

		u, err := GetByUsername("alice")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock, teardown := setupMockDB(t)
		defer teardown()

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

		_, err := GetByUsername("ghost")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		mockRows       *sqlmock.Rows
		expectedResult bool
		expectedError  bool
	}{
		{
			name:           "User is admin",
			userID:         "admin-user-id",
			mockRows:       sqlmock.NewRows([]string{"is_admin"}).AddRow(true),
			expectedResult: true,
			expectedError:  false,
		},
		{
			name:           "User is not admin",
			userID:         "regular-user-id",
			mockRows:       sqlmock.NewRows([]string{"is_admin"}).AddRow(false),
			expectedResult: false,
			expectedError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, teardown := setupMockDB(t)
			defer teardown()

			mock.ExpectQuery(`SELECT`).WillReturnRows(tt.mockRows)

			result, err := IsAdmin(tt.userID)

			assert.Equal(t, tt.expectedResult, result)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
