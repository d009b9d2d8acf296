package follow

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newFollowContext(t *testing.T, target, username, requesterID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = gin.Params{{Key: "username", Value: username}}
	c.Set("user_id", requesterID)
	return c, w
}

func authorRow(id, username string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username"}).AddRow(id, username)
}

func TestFollowUserUnknownAuthor(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	c, w := newFollowContext(t, "/profile/ghost/follow", "ghost", "user-1")
	FollowUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowUserTwiceKeepsOneEdge(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(authorRow("author-1", "alice"))
	mock.ExpectQuery(`SELECT (.+) FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "author_id"}).
			AddRow("f1", "user-1", "author-1"))

	c, w := newFollowContext(t, "/profile/alice/follow", "alice", "user-1")
	FollowUser(c)

	// Redirects without creating a duplicate edge
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/alice", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowUserSelfIsNoOp(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(authorRow("user-1", "alice"))

	c, w := newFollowContext(t, "/profile/alice/follow", "alice", "user-1")
	FollowUser(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/alice", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnfollowUserWithoutEdgeIsNotFound(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(authorRow("author-1", "alice"))
	mock.ExpectQuery(`SELECT (.+) FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "author_id"}))

	c, w := newFollowContext(t, "/profile/alice/unfollow", "alice", "user-1")
	UnfollowUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnfollowUserDeletesEdge(t *testing.T) {
	mock, teardown := setupMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(authorRow("author-1", "alice"))
	mock.ExpectQuery(`SELECT (.+) FROM "follows"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "author_id"}).
			AddRow("f1", "user-1", "author-1"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "follows"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, w := newFollowContext(t, "/profile/alice/unfollow", "alice", "user-1")
	UnfollowUser(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/alice", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
