package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/controllers"
	"github.com/schoolsafe/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	userController *controllers.UserController,
	schoolController *controllers.SchoolController,
	scheduleController *controllers.ScheduleController,
	materialController *controllers.MaterialController,
	travelTimeController *controllers.TravelTimeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/signup", authController.Signup)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/find-id", authController.FindID)
		auth.POST("/reset-password", authController.ResetPassword)
		auth.POST("/reset-password/confirm", authController.ConfirmResetPassword)
		auth.POST("/change-password", authController.ChangePassword)
	}

	// Admin bootstrap, guarded by the setup key header rather than a session
	v1.POST("/setup-admin", adminController.SetupAdmin)

	// --- Authenticated Routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// User routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMe)
			users.PUT("/me/address", userController.UpdateAddress)

			// Account administration requires an admin role
			usersAdmin := users.Group("")
			usersAdmin.Use(authMiddleware.AdminRequired())
			{
				usersAdmin.GET("", userController.ListUsers)
				usersAdmin.PATCH("/:id/activate", userController.ActivateUser)
			}
		}

		// School registry; reads are open, writes are administrative
		schools := authenticated.Group("/schools")
		{
			schools.GET("", schoolController.ListSchools)
			schools.GET("/:id", schoolController.GetSchool)

			schoolsAdmin := schools.Group("")
			schoolsAdmin.Use(authMiddleware.AdminRequired())
			{
				schoolsAdmin.POST("", schoolController.CreateSchool)
				schoolsAdmin.PUT("/:id", schoolController.UpdateSchool)
				schoolsAdmin.PUT("/:id/address", schoolController.UpdateSchoolAddress)
				schoolsAdmin.DELETE("/:id", schoolController.DeleteSchool)
			}
		}

		// Visit schedules
		schedules := authenticated.Group("/schedules")
		{
			schedules.GET("", scheduleController.ListSchedules)
			schedules.GET("/:id", scheduleController.GetSchedule)
			schedules.POST("", scheduleController.CreateSchedule)
			schedules.PUT("/:id", scheduleController.UpdateSchedule)
			schedules.DELETE("/:id", scheduleController.DeleteSchedule)
		}

		// Educational materials
		materials := authenticated.Group("/materials")
		{
			materials.GET("", materialController.ListMaterials)
			materials.GET("/:id", materialController.GetMaterial)
			materials.POST("", materialController.CreateMaterial)
			materials.PUT("/:id", materialController.UpdateMaterial)
			materials.DELETE("/:id", materialController.DeleteMaterial)
		}

		// Travel times
		travelTime := authenticated.Group("/travel-time")
		{
			travelTime.POST("/save", travelTimeController.SaveTravelTime)
			travelTime.GET("/:scheduleId", travelTimeController.GetTravelTime)
		}
	}
}
