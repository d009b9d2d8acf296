package follow

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
	"github.com/marke1-web/hw05-final/internal/logs"
	"github.com/marke1-web/hw05-final/internal/user"
)

// FollowUser GET /profile/:username/follow
//
// Idempotent: following yourself or an author you already follow is a
// plain redirect, no duplicate edge is created.
func FollowUser(c *gin.Context) {
	route := c.FullPath()
	followerID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if author.ID != followerID {
		var existing Follow
		err := database.DB.
			Where("user_id = ? AND author_id = ?", followerID, author.ID).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			newFollow := Follow{
				ID:       uuid.New().String(),
				UserID:   followerID,
				AuthorID: author.ID,
			}
			if err := database.DB.Create(&newFollow).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "follow creation failed"})
				logs.LogJSON("ERROR", "Error adding follow", map[string]interface{}{
					"error":  err.Error(),
					"route":  route,
					"userID": followerID,
					"extra":  fmt.Sprintf("authorID : %s", author.ID),
				})
				return
			}
			logs.LogJSON("INFO", "Followed author", map[string]interface{}{
				"route":  route,
				"userID": followerID,
				"extra":  fmt.Sprintf("authorID : %s", author.ID),
			})
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// UnfollowUser GET /profile/:username/unfollow
func UnfollowUser(c *gin.Context) {
	route := c.FullPath()
	followerID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var edge Follow
	if err := database.DB.
		Where("user_id = ? AND author_id = ?", followerID, author.ID).
		First(&edge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "follow not found"})
		return
	}

	if err := database.DB.Delete(&edge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unfollow failed"})
		logs.LogJSON("ERROR", "Error removing follow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("authorID : %s", author.ID),
		})
		return
	}

	logs.LogJSON("INFO", "Unfollowed author", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("authorID : %s", author.ID),
	})
	c.Redirect(http.StatusFound, "/profile/"+username)
}
