package user

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
	"github.com/marke1-web/hw05-final/internal/logs"
	"github.com/marke1-web/hw05-final/internal/storage"
)

// GetMe GET /api/me
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	response := u.Public()
	response["email"] = u.Email
	response["created_at"] = u.CreatedAt
	if u.IsAdmin {
		response["is_admin"] = true
	}

	c.JSON(http.StatusOK, gin.H{"user": response})
}

// UpdateMe PATCH /api/me
func UpdateMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if firstname := c.PostForm("firstname"); firstname != "" {
		u.Firstname = firstname
	}
	if lastname := c.PostForm("lastname"); lastname != "" {
		u.Lastname = lastname
	}
	if bio := c.PostForm("bio"); bio != "" {
		u.Bio = bio
	}

	// Avatar replacement
	file, header, err := c.Request.FormFile("avatar")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		validExtensions := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".heic": true}
		if !validExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"avatar": "unsupported image type"}})
			return
		}

		filename := fmt.Sprintf("user_%s%s", userID, ext)
		contentType := header.Header.Get("Content-Type")

		if u.AvatarURL != "" {
			if key := storage.KeyFromURL(u.AvatarURL); key != "" {
				_ = storage.DeleteFromS3(key)
			}
		}

		url, err := storage.UploadToS3(file, filename, contentType, "avatars")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar upload failed", "details": err.Error()})
			return
		}
		u.AvatarURL = url
	}

	if err := database.DB.Save(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": u.Public()})
}

// DeleteMe DELETE /api/me
//
// The store has no declarative cascades, so the account's comments,
// posts, comments on those posts and follow edges in both directions
// are removed explicitly in one transaction.
func DeleteMe(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	// Collect image keys before the rows disappear
	var imageURLs []string
	database.DB.Table("posts").Where("user_id = ? AND image_url <> ''", userID).Pluck("image_url", &imageURLs)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE user_id = ?)", userID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM comments WHERE user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM posts WHERE user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM follows WHERE user_id = ? OR author_id = ?", userID, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account deletion failed"})
		logs.LogJSON("ERROR", "Account deletion failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	for _, imageURL := range imageURLs {
		if key := storage.KeyFromURL(imageURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
	}
	if u.AvatarURL != "" {
		if key := storage.KeyFromURL(u.AvatarURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	logs.LogJSON("INFO", "Account deleted", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}
