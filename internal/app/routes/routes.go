// Package routes wires controllers to the HTTP route table
package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eduverse/eduverse/internal/app/controllers"
	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/middleware"
)

// Controllers bundles every controller the router needs
type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Course   *controllers.CourseController
	Post     *controllers.PostController
	Comment  *controllers.CommentController
	Reaction *controllers.ReactionController
	Chat     *controllers.ChatController
	Message  *controllers.MessageController
	File     *controllers.FileController
	Report   *controllers.ReportController
	Metrics  *controllers.MetricsController
}

// SetupRouter configures all application routes under /api/v1
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	users := v1.Group("/users")
	{
		users.POST("/register", c.Auth.Register)
		users.POST("/login", c.Auth.Login)
		users.POST("/forgot-password", c.Auth.ForgotPassword)
		users.POST("/reset-password", c.Auth.ResetPassword)

		users.GET("/:id", c.User.GetByID)
		users.GET("/:id/posts", c.User.GetUserPosts)
		users.GET("/:id/courses", c.User.GetUserCourses)
		users.GET("/:id/stats", c.User.GetUserStats)
	}

	// Public reads that personalize their response for signed-in callers.
	optional := v1.Group("")
	optional.Use(authMiddleware.JWTAuthOptional())
	{
		optional.GET("/posts", c.Post.List)
		optional.GET("/posts/:id", c.Post.GetDetail)
		optional.GET("/comments", c.Comment.ListByPost)
		optional.GET("/reactions", c.Reaction.Summary)
	}

	v1.GET("/courses", c.Course.List)
	v1.GET("/courses/:id", c.Course.GetByID)
	v1.GET("/files/:id", c.File.Download)
	v1.GET("/metrics/health", c.Metrics.Health)

	// --- Authenticated routes ---
	authed := v1.Group("")
	authed.Use(authMiddleware.JWTAuth())
	{
		usersAuthed := authed.Group("/users")
		{
			usersAuthed.GET("/me", c.User.GetMe)
			usersAuthed.PUT("/profile", c.User.UpdateProfile)
			usersAuthed.PUT("/:id", c.User.UpdateByID)
			usersAuthed.GET("/search", c.User.Search)

			reports := usersAuthed.Group("")
			reports.Use(middleware.RoleRequired(models.RoleInstructor, models.RoleAdmin))
			{
				reports.GET("/report", c.Report.TopContributors)
				reports.GET("/report2", c.Report.CourseEngagement)
				reports.GET("/report3", c.Report.ReactionDistribution)
				reports.GET("/report4", c.Report.CoursePerformance)
			}
		}

		courses := authed.Group("/courses")
		{
			courses.GET("/enrolled", c.Course.ListEnrolled)
			courses.POST("/:id/enroll", c.Course.Enroll)
			courses.POST("/:id/unenroll", c.Course.Unenroll)
			courses.PUT("/:id", c.Course.Update)
			courses.DELETE("/:id", c.Course.Delete)

			coursesInstructor := courses.Group("")
			coursesInstructor.Use(middleware.RoleRequired(models.RoleInstructor, models.RoleAdmin))
			{
				coursesInstructor.POST("", c.Course.Create)
			}
		}

		posts := authed.Group("/posts")
		{
			posts.POST("", c.Post.Create)
			posts.PUT("/:id", c.Post.Update)
			posts.DELETE("/:id", c.Post.Delete)
		}

		comments := authed.Group("/comments")
		{
			comments.POST("", c.Comment.Create)
			comments.DELETE("/:id", c.Comment.Delete)
		}

		reactions := authed.Group("/reactions")
		{
			reactions.POST("", c.Reaction.Upsert)
			reactions.DELETE("/:postId", c.Reaction.Delete)
		}

		chats := authed.Group("/chats")
		{
			chats.GET("", c.Chat.List)
			chats.GET("/:id", c.Chat.GetByID)
			chats.POST("", c.Chat.Create)
		}

		messages := authed.Group("/messages")
		{
			messages.GET("", c.Message.ListByChat)
			messages.POST("", c.Message.Create)
			messages.DELETE("/:id", c.Message.Delete)
		}

		files := authed.Group("/files")
		{
			files.POST("", c.File.Upload)
			files.GET("/course/:courseId", c.File.ListByCourse)
			files.DELETE("/:id", c.File.Delete)
		}

		authed.GET("/metrics", c.Metrics.Get)
		authed.DELETE("/metrics", c.Metrics.Reset)
	}
}
