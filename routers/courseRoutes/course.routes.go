package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course catalog, enrollment and progress
// tracking routes
func SetupCourseRoutes(app *fiber.App) {
	course := app.Group("/course")

	// Catalog
	course.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	course.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	course.Get("/:course_id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	course.Put("/:course_id", middleware.JWTMiddleware, validators.CourseID(), validators.CourseUpdate(), controllers.UpdateCourse)
	course.Post("/:course_id/publish", middleware.JWTMiddleware, validators.CourseID(), controllers.PublishCourse)
	course.Delete("/:course_id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Enrollment
	course.Post("/:course_id/enroll", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.EnrollInCourse)
	app.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)

	// Progress tracking
	course.Get("/:course_id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)
	course.Post("/:course_id/lesson/:lesson_id/complete", middleware.JWTMiddleware, validators.CourseID(), validators.LessonID(), validators.LessonCompletion(), controllers.CompleteLesson)
	course.Post("/:course_id/lesson/:lesson_id/watch", middleware.JWTMiddleware, validators.CourseID(), validators.LessonID(), validators.WatchProgress(), controllers.RecordWatchProgress)

	// Achievements
	app.Get("/achievement/:achievement_id", middleware.JWTMiddleware, controllers.GetAchievementDetails)
}
