package follow

import (
	"testing"
	"time"

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

func TestIsFollowing(t *testing.T) {
	tests := []struct {
		name           string
		followerID     string
		authorID       string
		mockRows       *sqlmock.Rows
		expectedResult bool
		expectedError  bool
	}{
		{
			name:       "User is following",
			followerID: "user1",
			authorID:   "user2",
			mockRows: sqlmock.NewRows([]string{"id", "created_at", "user_id", "author_id"}).
				AddRow("follow1", time.Now(), "user1", "user2"),
			expectedResult: true,
			expectedError:  false,
		},
		{
			name:           "User is not following",
			followerID:     "user1",
			authorID:       "user2",
			mockRows:       sqlmock.NewRows([]string{"id", "created_at", "user_id", "author_id"}),
			expectedResult: false,
			expectedError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, teardown := setupMockDB(t)
			defer teardown()

			mock.ExpectQuery(`SELECT`).WillReturnRows(tt.mockRows)

			result, err := IsFollowing(tt.followerID, tt.authorID)

			assert.Equal(t, tt.expectedResult, result)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
