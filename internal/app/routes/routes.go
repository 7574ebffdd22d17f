// Package routes wires controllers to URL paths.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/controllers"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	rosterController *controllers.RosterController,
	networkController *controllers.NetworkController,
	jobController *controllers.JobController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authAuthed := authenticated.Group("/auth")
		{
			authAuthed.PUT("/change-password", authController.ChangePassword)
			authAuthed.PUT("/profile", authController.UpdateProfile)

			// Roster reads allow the college and its staff; the
			// service enforces the scope.
			authAuthed.GET("/students/:collegeId", rosterController.ListStudents)
			authAuthed.GET("/team/:collegeId", rosterController.ListTeam)

			// Roster mutations are college-only.
			collegeOnly := authAuthed.Group("")
			collegeOnly.Use(authMiddleware.RoleRequired(models.RoleCollege))
			{
				collegeOnly.POST("/add-student", rosterController.AddStudent)
				collegeOnly.POST("/add-students-bulk", rosterController.AddStudentsBulk)
				collegeOnly.DELETE("/student/:id", rosterController.DeleteStudent)
				collegeOnly.POST("/add-staff", rosterController.AddStaff)
			}
		}

		network := authenticated.Group("/network")
		{
			network.POST("/connect", networkController.Connect)
			network.GET("/requests/:userId", networkController.GetNetwork)
			network.PUT("/respond", networkController.Respond)
			network.GET("/search-colleges", networkController.SearchColleges)
			network.GET("/search-companies", networkController.SearchCompanies)
		}

		jobs := authenticated.Group("/jobs")
		{
			companyOnly := jobs.Group("")
			companyOnly.Use(authMiddleware.RoleRequired(models.RoleCompany))
			{
				companyOnly.POST("/create", jobController.Create)
			}

			jobs.GET("/company/:companyId", jobController.ListCompanyJobs)
			jobs.GET("/feed/:collegeId", jobController.Feed)
			jobs.GET("/:id", jobController.Get)
		}

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.PUT("/read", notificationController.MarkAllRead)
		}
	}
}
