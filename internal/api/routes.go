package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("", handler.CreateUser)
	users.Get("", handler.ListUsers)
	users.Get("/:userID", handler.GetUser)
	users.Delete("/:userID", handler.DeleteUser)

	goals := users.Group("/:userID/goals")
	goals.Post("", handler.CreateFitnessGoal)
	goals.Get("", handler.ListFitnessGoals)
	goals.Patch("/:goalID", handler.UpdateFitnessGoal)
	goals.Delete("/:goalID", handler.DeleteFitnessGoal)

	workouts := users.Group("/:userID/workouts")
	workouts.Post("", handler.CreateWorkout)
	workouts.Get("", handler.ListWorkouts)
	workouts.Patch("/:workoutID", handler.UpdateWorkout)
	workouts.Delete("/:workoutID", handler.DeleteWorkout)

	nutrition := users.Group("/:userID/nutrition-logs")
	nutrition.Post("", handler.CreateNutritionLog)
	nutrition.Get("", handler.ListNutritionLogs)
	nutrition.Patch("/:entryID", handler.UpdateNutritionLog)
	nutrition.Delete("/:entryID", handler.DeleteNutritionLog)

	sleep := users.Group("/:userID/sleep-records")
	sleep.Post("", handler.CreateSleepRecord)
	sleep.Get("", handler.ListSleepRecords)
	sleep.Patch("/:recordID", handler.UpdateSleepRecord)
	sleep.Delete("/:recordID", handler.DeleteSleepRecord)

	moods := users.Group("/:userID/mood-logs")
	moods.Post("", handler.CreateMoodLog)
	moods.Get("", handler.ListMoodLogs)
	moods.Patch("/:entryID", handler.UpdateMoodLog)
	moods.Delete("/:entryID", handler.DeleteMoodLog)

	analytics := users.Group("/:userID/analytics")
	analytics.Get("/sleep/average", handler.AverageSleepDuration)
	analytics.Get("/sleep/quality", handler.SleepQualityOverview)
	analytics.Get("/nutrition/daily", handler.DailyNutritionSummary)
	analytics.Get("/nutrition/range", handler.NutritionSummaryRange)
	analytics.Get("/workouts/monthly", handler.MonthlyWorkoutSummary)
	analytics.Get("/workouts/history", handler.WorkoutHistory)
	analytics.Get("/mood/trend", handler.MoodTrend)
	analytics.Get("/goals/progress", handler.GoalProgressReport)
}
