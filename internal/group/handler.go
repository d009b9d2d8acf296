package group

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
	"github.com/marke1-web/hw05-final/internal/logs"
)

// ListGroups GET /api/groups
func ListGroups(c *gin.Context) {
	var groups []Group
	if err := database.DB.Order("title").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "group listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup POST /api/admin/groups
func CreateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if input.Title == "" || input.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and slug are required"})
		return
	}

	var count int64
	if err := database.DB.Model(&Group{}).Where("slug = ?", input.Slug).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already taken"})
		return
	}

	newGroup := Group{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}

	if err := database.DB.Create(&newGroup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "group creation failed"})
		logs.LogJSON("ERROR", "Group creation failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "group created",
		"group":   newGroup,
	})
}

// DeleteGroup DELETE /api/admin/groups/:slug
//
// Posts keep living without their group: the association is cleared
// before the group row goes away.
func DeleteGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	slug := c.Param("slug")

	var g Group
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE posts SET group_id = NULL WHERE group_id = ?", g.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&g).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "group deletion failed"})
		logs.LogJSON("ERROR", "Group deletion failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"slug":   slug,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}
