package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marke1-web/hw05-final/internal/database"
	"github.com/marke1-web/hw05-final/internal/follow"
	"github.com/marke1-web/hw05-final/internal/group"
	"github.com/marke1-web/hw05-final/internal/logs"
	"github.com/marke1-web/hw05-final/internal/post"
	"github.com/marke1-web/hw05-final/internal/user"
)

// Index GET /
func Index(c *gin.Context) {
	page, err := Paginate(database.DB.Model(&post.Post{}), c.Query("page"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post listing failed"})
		logs.LogJSON("ERROR", "Error during index listing", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      page.Posts,
		"pagination": page.Pagination,
	})
}

// GroupFeed GET /group/:slug
func GroupFeed(c *gin.Context) {
	slug := c.Param("slug")

	var g group.Group
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	page, err := Paginate(
		database.DB.Model(&post.Post{}).Where("group_id = ?", g.ID),
		c.Query("page"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group":      g,
		"posts":      page.Posts,
		"pagination": page.Pagination,
	})
}

// ProfileFeed GET /profile/:username
func ProfileFeed(c *gin.Context) {
	username := c.Param("username")
	requesterID := c.GetString("user_id")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	page, err := Paginate(
		database.DB.Model(&post.Post{}).Where("user_id = ?", author.ID),
		c.Query("page"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post listing failed"})
		return
	}

	// false for anonymous visitors and for the author's own profile
	following := false
	if requesterID != "" && requesterID != author.ID {
		following, err = follow.IsFollowing(requesterID, author.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "follow lookup failed"})
			return
		}
	}

	var followersCount int64
	if err := database.DB.Model(&follow.Follow{}).Where("author_id = ?", author.ID).Count(&followersCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "follower count failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":     author.Public(),
		"following":  following,
		"posts":      page.Posts,
		"pagination": page.Pagination,
		"stats": gin.H{
			"posts_count":     page.Total,
			"followers_count": followersCount,
		},
	})
}

// FollowingFeed GET /follow
//
// Following no one is not an error: the feed is one empty page.
func FollowingFeed(c *gin.Context) {
	requesterID := c.GetString("user_id")

	var follows []follow.Follow
	if err := database.DB.Where("user_id = ?", requesterID).Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "follow listing failed"})
		logs.LogJSON("ERROR", "Error listing followed authors", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": requesterID,
		})
		return
	}

	var authorIDs []string
	for _, f := range follows {
		authorIDs = append(authorIDs, f.AuthorID)
	}

	if len(authorIDs) == 0 {
		page := EmptyPage()
		c.JSON(http.StatusOK, gin.H{
			"posts":      page.Posts,
			"pagination": page.Pagination,
		})
		return
	}

	page, err := Paginate(
		database.DB.Model(&post.Post{}).Where("user_id IN ?", authorIDs),
		c.Query("page"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      page.Posts,
		"pagination": page.Pagination,
	})
}
