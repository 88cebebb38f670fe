package routes

import (
	"time"

	"campus-connect/internal/adapters/http/handlers"
	"campus-connect/internal/adapters/http/middleware"
	"campus-connect/internal/adapters/persistence/repositories"
	"campus-connect/internal/config"
	"campus-connect/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup wires repositories, services, handlers and route groups
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, uploader services.Uploader) {
	// repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	syllabusRepo := repositories.NewSyllabusRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	masterRepo := repositories.NewMasterRepository(db)

	// services
	authService := services.NewAuthService(userRepo, profileRepo, uploader, cfg)
	dashboardService := services.NewDashboardService(db)

	// handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	userHandler := handlers.NewUserHandler(authService)
	clubHandler := handlers.NewClubHandler(clubRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	syllabusHandler := handlers.NewSyllabusHandler(syllabusRepo, uploader)
	roomHandler := handlers.NewRoomHandler(roomRepo)
	studentHandler := handlers.NewStudentHandler(studentRepo)
	masterHandler := handlers.NewMasterHandler(masterRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	auth := middleware.AuthMiddleware(cfg)
	publicCache := middleware.PublicListCache(60 * time.Second)

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// accounts & approval queue
	user := app.Group("/user")
	user.Post("/signup", middleware.AuthRateLimiter(), userHandler.Signup)
	user.Post("/login", middleware.AuthRateLimiter(), userHandler.Login)
	user.Get("/profile", auth, middleware.NoCacheHeaders(), userHandler.Profile)
	user.Get("/pending-approvals", auth, middleware.AdminOnly(), userHandler.PendingApprovals)
	user.Post("/approve/:userId", auth, middleware.AdminOnly(), userHandler.Approve)
	user.Delete("/reject/:userId", auth, middleware.AdminOnly(), userHandler.Reject)

	// course catalog
	course := app.Group("/course")
	course.Get("/all", publicCache, masterHandler.ListCourses)
	course.Post("/create", auth, middleware.AdminOnly(), masterHandler.CreateCourse)
	course.Put("/update/:id", auth, middleware.AdminOnly(), masterHandler.UpdateCourse)
	course.Delete("/delete/:id", auth, middleware.AdminOnly(), masterHandler.DeleteCourse)

	// students & exam registrations
	student := app.Group("/student", auth)
	student.Get("/approved-students", middleware.AdminOrSeatingManager(), studentHandler.ListApproved)
	student.Get("/registered-exams", middleware.StudentOnly(), studentHandler.ListRegisteredExams)
	student.Post("/register-exam", middleware.StudentOnly(), studentHandler.RegisterExam)

	// fee records
	fee := app.Group("/fee", auth)
	fee.Get("/my", middleware.StudentOnly(), middleware.NoCacheHeaders(), masterHandler.MyFees)
	fee.Post("/create", middleware.AdminOnly(), masterHandler.CreateFee)
	fee.Put("/update/:id", middleware.AdminOnly(), masterHandler.UpdateFee)
	fee.Delete("/delete/:id", middleware.AdminOnly(), masterHandler.DeleteFee)

	// clubs
	club := app.Group("/club")
	club.Get("/all", publicCache, clubHandler.List)
	club.Post("/create", auth, clubHandler.Create)
	club.Get("/pending", auth, middleware.AdminOnly(), clubHandler.ListPending)
	club.Post("/approve/:id", auth, middleware.AdminOnly(), clubHandler.Approve)
	club.Delete("/reject/:id", auth, middleware.AdminOnly(), clubHandler.Delete)

	// calendar
	event := app.Group("/event")
	event.Get("/all", publicCache, eventHandler.List)
	event.Get("/type/:type", publicCache, eventHandler.ListByType)
	event.Post("/create", auth, middleware.AdminOrClubCoordinator(), eventHandler.Create)
	event.Put("/update/:id", auth, middleware.AdminOrClubCoordinator(), eventHandler.Update)
	event.Delete("/delete/:id", auth, middleware.AdminOrClubCoordinator(), eventHandler.Delete)

	// syllabi
	syllabus := app.Group("/syllabus")
	syllabus.Get("/all", publicCache, syllabusHandler.List)
	syllabus.Post("/upload", auth, middleware.AdminOnly(), syllabusHandler.Upload)
	syllabus.Put("/update-mindmap/:id", auth, middleware.AdminOnly(), syllabusHandler.UpdateMindMap)
	syllabus.Post("/add-attachment/:id", auth, middleware.AdminOnly(), syllabusHandler.AddAttachment)
	syllabus.Delete("/delete-attachment/:id/:attachmentId", auth, middleware.AdminOnly(), syllabusHandler.DeleteAttachment)
	syllabus.Delete("/delete/:id", auth, middleware.AdminOnly(), syllabusHandler.Delete)
	syllabus.Get("/:id", publicCache, syllabusHandler.Get)

	// exam rooms
	rooms := app.Group("/rooms", auth)
	rooms.Get("/all", roomHandler.List)
	rooms.Get("/seating-rooms", roomHandler.List)
	rooms.Post("/add", middleware.AdminOnly(), roomHandler.Create)
	rooms.Put("/update/:id", middleware.AdminOnly(), roomHandler.Update)
	rooms.Post("/seating-rooms", middleware.SeatingManagerOnly(), roomHandler.Create)
	rooms.Put("/seating-rooms/:id", middleware.SeatingManagerOnly(), roomHandler.Update)

	// admin overview
	dashboard := app.Group("/dashboard", auth)
	dashboard.Get("/", middleware.AdminOnly(), dashboardHandler.Admin)

	// catch-all
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "bad router request",
		})
	})
}
