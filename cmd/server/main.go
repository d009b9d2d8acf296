package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/marke1-web/hw05-final/internal/admin"
	"github.com/marke1-web/hw05-final/internal/auth"
	"github.com/marke1-web/hw05-final/internal/config"
	"github.com/marke1-web/hw05-final/internal/database"
	"github.com/marke1-web/hw05-final/internal/feed"
	"github.com/marke1-web/hw05-final/internal/follow"
	"github.com/marke1-web/hw05-final/internal/group"
	"github.com/marke1-web/hw05-final/internal/middleware"
	"github.com/marke1-web/hw05-final/internal/post"
	"github.com/marke1-web/hw05-final/internal/storage"
	"github.com/marke1-web/hw05-final/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Init()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL missing")
	}

	database.Connect(cfg.DatabaseURL)
	database.Migrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&post.Comment{},
		&follow.Follow{},
	)

	if err := storage.Init(cfg); err != nil {
		log.Fatalf("S3 init failed: %v", err)
	}

	r := gin.Default()

	// Accounts
	r.POST("/auth/signup", auth.Signup)
	r.POST("/auth/login", auth.Login)
	r.GET("/auth/login", auth.LoginPage)

	// Public listings; optional auth lets the profile page say whether
	// the visitor already follows the author
	public := r.Group("/", middleware.OptionalAuthMiddleware())
	public.GET("/", feed.Index)
	public.GET("/group/:slug", feed.GroupFeed)
	public.GET("/profile/:username", feed.ProfileFeed)
	public.GET("/posts/:post_id", post.GetPostDetail)
	public.GET("/api/groups", group.ListGroups)

	// Everything below requires a logged-in user
	authed := r.Group("/", middleware.AuthMiddleware())
	authed.POST("/create", post.CreatePost)
	authed.POST("/posts/:post_id/edit", post.EditPost)
	authed.GET("/posts/:post_id/delete", post.DeletePost)
	authed.POST("/posts/:post_id/comment", post.AddComment)
	authed.GET("/posts/:post_id/comment_delete", post.DeleteComment)
	authed.GET("/follow", feed.FollowingFeed)
	authed.GET("/profile/:username/follow", follow.FollowUser)
	authed.GET("/profile/:username/unfollow", follow.UnfollowUser)

	me := r.Group("/api/me", middleware.AuthMiddleware())
	me.GET("", user.GetMe)
	me.PATCH("", user.UpdateMe)
	me.DELETE("", user.DeleteMe)

	adminRoutes := r.Group("/api/admin", middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
	adminRoutes.GET("/stats", admin.GetDashboardStats)
	adminRoutes.POST("/groups", group.CreateGroup)
	adminRoutes.DELETE("/groups/:slug", group.DeleteGroup)

	if err := r.Run(cfg.ServerAddr); err != nil {
		return
	}
}
