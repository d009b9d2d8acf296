package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marke1-web/hw05-final/internal/database"
)

// GetDashboardStats GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	startDateStr := c.Query("start_date")

	var startDate time.Time
	if startDateStr != "" {
		var err error
		startDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format"})
			return
		}
	} else {
		startDate = time.Now().AddDate(0, 0, -30)
	}

	var totalUsers, totalPosts, totalComments, totalGroups, totalFollows int64
	var recentPosts int64

	database.DB.Table("users").Count(&totalUsers)
	database.DB.Table("posts").Count(&totalPosts)
	database.DB.Table("comments").Count(&totalComments)
	database.DB.Table("groups").Count(&totalGroups)
	database.DB.Table("follows").Count(&totalFollows)
	database.DB.Table("posts").Where("pub_date >= ?", startDate).Count(&recentPosts)

	c.JSON(http.StatusOK, gin.H{
		"users":        totalUsers,
		"posts":        totalPosts,
		"comments":     totalComments,
		"groups":       totalGroups,
		"follows":      totalFollows,
		"recent_posts": recentPosts,
		"since":        startDate.Format("2006-01-02"),
	})
}
