package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/session"
	"github.com/SAP-F-2025/sims-service/internal/utils"
)

type HandlerManager struct {
	authHandler      *AuthHandler
	userHandler      *UserHandler
	studentHandler   *StudentHandler
	facultyHandler   *FacultyHandler
	courseHandler    *CourseHandler
	classHandler     *ClassHandler
	timetableHandler *TimetableHandler
	dashboardHandler *DashboardHandler
	exportHandler    *ExportHandler
	authMiddleware   *SessionAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	sessionStore *session.Store,
	cookieName string,
	cookieTTL time.Duration,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:      NewAuthHandler(serviceManager.User(), sessionStore, cookieName, cookieTTL, logger),
		userHandler:      NewUserHandler(serviceManager.User(), logger),
		studentHandler:   NewStudentHandler(serviceManager.Student(), logger),
		facultyHandler:   NewFacultyHandler(serviceManager.Faculty(), logger),
		courseHandler:    NewCourseHandler(serviceManager.Course(), logger),
		classHandler:     NewClassHandler(serviceManager.Class(), logger),
		timetableHandler: NewTimetableHandler(serviceManager.Timetable(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), logger),
		exportHandler:    NewExportHandler(serviceManager.Export(), logger),
		authMiddleware:   NewSessionAuthMiddleware(sessionStore, cookieName),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Login is the only unauthenticated API route.
	router.POST("/api/v1/auth/login", hm.authHandler.Login)

	requireRole := hm.authMiddleware.RequireRoleMiddleware

	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.AuthMiddleware())
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/logout", hm.authHandler.Logout)
			auth.GET("/me", hm.authHandler.Me)
		}

		// Account management - Admins only
		users := v1.Group("/users")
		{
			users.POST("", requireRole(models.RoleAdmin), hm.userHandler.CreateUser)
			users.GET("/:id", requireRole(models.RoleAdmin), hm.userHandler.GetUser)
		}

		// Student records - writes are Admin only, reads are scoped in
		// the service layer
		students := v1.Group("/students")
		{
			students.GET("", requireRole(models.RoleAdmin, models.RoleFaculty), hm.studentHandler.ListStudents)
			students.GET("/:id", hm.studentHandler.GetStudent)
			students.GET("/:id/enrollments", hm.studentHandler.GetStudentEnrollments)
			students.POST("", requireRole(models.RoleAdmin), hm.studentHandler.CreateStudent)
			students.PUT("/:id", requireRole(models.RoleAdmin), hm.studentHandler.UpdateStudent)
			students.DELETE("/:id", requireRole(models.RoleAdmin), hm.studentHandler.DeleteStudent)
		}

		// Faculty records - writes are Admin only
		faculty := v1.Group("/faculty")
		{
			faculty.GET("", hm.facultyHandler.ListFaculty)
			faculty.GET("/:id", hm.facultyHandler.GetFaculty)
			faculty.POST("", requireRole(models.RoleAdmin), hm.facultyHandler.CreateFaculty)
			faculty.PUT("/:id", requireRole(models.RoleAdmin), hm.facultyHandler.UpdateFaculty)
			faculty.DELETE("/:id", requireRole(models.RoleAdmin), hm.facultyHandler.DeleteFaculty)
		}

		// Course catalog - writes are Admin only
		courses := v1.Group("/courses")
		{
			courses.GET("", hm.courseHandler.ListCourses)
			courses.GET("/:id", hm.courseHandler.GetCourse)
			courses.POST("", requireRole(models.RoleAdmin), hm.courseHandler.CreateCourse)
			courses.PUT("/:id", requireRole(models.RoleAdmin), hm.courseHandler.UpdateCourse)
			courses.DELETE("/:id", requireRole(models.RoleAdmin), hm.courseHandler.DeleteCourse)
		}

		// Classes - faculty can create and edit, only admins delete
		classes := v1.Group("/classes")
		{
			classes.GET("", hm.classHandler.ListClasses)
			classes.GET("/:id", hm.classHandler.GetClass)
			classes.POST("", requireRole(models.RoleAdmin, models.RoleFaculty), hm.classHandler.CreateClass)
			classes.PUT("/:id", requireRole(models.RoleAdmin, models.RoleFaculty), hm.classHandler.UpdateClass)
			classes.DELETE("/:id", requireRole(models.RoleAdmin), hm.classHandler.DeleteClass)

			// Enrollment management
			classes.GET("/:id/enrollments", hm.classHandler.GetRoster)
			classes.POST("/:id/enrollments", requireRole(models.RoleAdmin, models.RoleFaculty), hm.classHandler.EnrollStudent)
		}

		enrollments := v1.Group("/enrollments")
		{
			enrollments.DELETE("/:enrollment_id", requireRole(models.RoleAdmin), hm.classHandler.RemoveEnrollment)
			enrollments.PUT("/:enrollment_id/status", requireRole(models.RoleAdmin, models.RoleFaculty), hm.classHandler.UpdateEnrollmentStatus)
		}

		// Schedules and the weekly grid
		schedules := v1.Group("/schedules")
		{
			schedules.GET("", hm.timetableHandler.ListSchedules)
			schedules.GET("/:id", hm.timetableHandler.GetSchedule)
			schedules.POST("", requireRole(models.RoleAdmin, models.RoleFaculty), hm.timetableHandler.CreateSchedule)
			schedules.PUT("/:id", requireRole(models.RoleAdmin, models.RoleFaculty), hm.timetableHandler.UpdateSchedule)
			schedules.DELETE("/:id", requireRole(models.RoleAdmin, models.RoleFaculty), hm.timetableHandler.DeleteSchedule)
		}

		v1.GET("/timetable", hm.timetableHandler.GetTimetable)

		// Dashboard - Admins only
		v1.GET("/dashboard/stats", requireRole(models.RoleAdmin), hm.dashboardHandler.GetDashboardStats)

		// Spreadsheet exports
		exports := v1.Group("/exports")
		{
			exports.GET("/students", requireRole(models.RoleAdmin, models.RoleFaculty), hm.exportHandler.ExportStudents)
			exports.GET("/classes/:id/roster", requireRole(models.RoleAdmin, models.RoleFaculty), hm.exportHandler.ExportRoster)
			exports.GET("/timetable", hm.exportHandler.ExportTimetable)
		}
	}
}
