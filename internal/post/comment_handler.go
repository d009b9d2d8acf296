package post

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marke1-web/hw05-final/internal/database"
)

// AddComment POST /posts/:post_id/comment
//
// Empty text simply does not create a comment; the client is sent back
// to the post detail either way.
func AddComment(c *gin.Context) {
	postID := c.Param("post_id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text != "" {
		comment := Comment{
			PostID:  p.ID,
			UserID:  userID,
			Text:    text,
			Created: time.Now(),
		}
		if err := database.DB.Create(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "comment creation failed"})
			return
		}
	}

	c.Redirect(http.StatusFound, "/posts/"+postID)
}

// DeleteComment GET /posts/:post_id/comment_delete
//
// The path parameter carries the comment id. A non-author is redirected
// with that same id, as the original URL scheme did.
func DeleteComment(c *gin.Context) {
	commentID := c.Param("post_id")
	userID := c.GetString("user_id")

	var comment Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	if Authorize(comment.UserID, userID) == Denied {
		c.Redirect(http.StatusFound, "/posts/"+commentID)
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comment deletion failed"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", comment.PostID))
}
