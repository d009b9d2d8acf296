package post

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marke1-web/hw05-final/internal/database"
	"github.com/marke1-web/hw05-final/internal/group"
	"github.com/marke1-web/hw05-final/internal/storage"
	"github.com/marke1-web/hw05-final/internal/user"
)

var validImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".webp": true, ".heic": true,
}

// resolveGroup maps the optional "group" form field to a group id.
// An empty field means no group.
func resolveGroup(raw string) (*uint, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}
	var g group.Group
	if err := database.DB.First(&g, "id = ?", id).Error; err != nil {
		return nil, false
	}
	gid := g.ID
	return &gid, true
}

// CreatePost POST /create
func CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	text := strings.TrimSpace(c.PostForm("text"))
	fieldErrors := gin.H{}
	if text == "" {
		fieldErrors["text"] = "this field is required"
	}

	groupID, ok := resolveGroup(c.PostForm("group"))
	if !ok {
		fieldErrors["group"] = "unknown group"
	}

	// Optional image
	file, header, fileErr := c.Request.FormFile("image")
	var ext string
	if fileErr == nil {
		defer file.Close()
		ext = strings.ToLower(filepath.Ext(header.Filename))
		if !validImageExtensions[ext] {
			fieldErrors["image"] = "unsupported image type"
		}
	}

	// Validation failure redisplays the form with field errors and
	// creates nothing
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	var imageURL string
	if fileErr == nil {
		filename := fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
		contentType := header.Header.Get("Content-Type")

		url, err := storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed", "details": err.Error()})
			return
		}
		imageURL = url
	}

	newPost := Post{
		Text:     text,
		PubDate:  time.Now(),
		UserID:   userID,
		GroupID:  groupID,
		ImageURL: imageURL,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		// The DB insert failed after the upload, drop the orphan file
		if imageURL != "" {
			if key := storage.KeyFromURL(imageURL); key != "" {
				_ = storage.DeleteFromS3(key)
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post creation failed"})
		return
	}

	var u user.User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "author lookup failed"})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+u.Username)
}

// GetPostDetail GET /posts/:post_id
func GetPostDetail(c *gin.Context) {
	postID := c.Param("post_id")

	var p Post
	if err := database.DB.Preload("User").First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	// All comments, oldest first
	var comments []Comment
	if err := database.DB.Where("post_id = ?", p.ID).Order("created ASC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comment lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     p,
		"comments": comments,
		"form":     gin.H{"text": ""},
	})
}

// EditPost POST /posts/:post_id/edit
func EditPost(c *gin.Context) {
	postID := c.Param("post_id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if Authorize(p.UserID, userID) == Denied {
		c.Redirect(http.StatusFound, "/posts/"+postID)
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	fieldErrors := gin.H{}
	if text == "" {
		fieldErrors["text"] = "this field is required"
	}

	groupID, ok := resolveGroup(c.PostForm("group"))
	if !ok {
		fieldErrors["group"] = "unknown group"
	}

	file, header, fileErr := c.Request.FormFile("image")
	var ext string
	if fileErr == nil {
		defer file.Close()
		ext = strings.ToLower(filepath.Ext(header.Filename))
		if !validImageExtensions[ext] {
			fieldErrors["image"] = "unsupported image type"
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	imageURL := p.ImageURL
	if fileErr == nil {
		filename := fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
		contentType := header.Header.Get("Content-Type")

		url, err := storage.UploadToS3(file, filename, contentType, "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed", "details": err.Error()})
			return
		}
		if p.ImageURL != "" {
			if key := storage.KeyFromURL(p.ImageURL); key != "" {
				_ = storage.DeleteFromS3(key)
			}
		}
		imageURL = url
	}

	// pub_date is immutable, only the editable columns are written
	updates := map[string]interface{}{
		"text":      text,
		"group_id":  groupID,
		"image_url": imageURL,
	}
	if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post update failed"})
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+postID)
}

// DeletePost GET /posts/:post_id/delete
func DeletePost(c *gin.Context) {
	postID := c.Param("post_id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if Authorize(p.UserID, userID) == Denied {
		c.Redirect(http.StatusFound, "/posts/"+postID)
		return
	}

	// Comments go with their post; the store has no declarative
	// cascade, the transaction keeps the pair atomic
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "post deletion failed"})
		return
	}

	if p.ImageURL != "" {
		if key := storage.KeyFromURL(p.ImageURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
	}

	c.Redirect(http.StatusFound, "/")
}
