package main

import (
	"log"
	"os"
	"time"

	"quality-gate-be/internal/model"
	"quality-gate-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Seeds a small demo team with a channel's worth of tasks in various
// review states, so the board renders something useful on first run.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo review data")

	now := time.Now()
	channelId := uuid.New()

	admin := model.User{Id: uuid.New(), FullName: "Dana Admin", Role: "ADMIN", Position: "Operations"}
	seniorEditor := model.User{Id: uuid.New(), FullName: "Sam Reviewer", Role: "MEMBER", Position: "Senior Editor"}
	editor := model.User{Id: uuid.New(), FullName: "Eli Editor", Role: "MEMBER", Position: "Editor"}
	scripter := model.User{Id: uuid.New(), FullName: "Rio Writer", Role: "MEMBER", Position: "Scriptwriter"}

	color.Yellow("\n1. Users")
	for _, u := range []model.User{admin, seniorEditor, editor, scripter} {
		if err := db.Create(&u).Error; err != nil {
			color.Red("Failed to create user %s: %v", u.FullName, err)
			os.Exit(1)
		}
		color.Green("  created %s (%s)", u.FullName, u.Position)
	}

	color.Yellow("\n2. Tasks and review sessions")

	type seedTask struct {
		title       string
		difficulty  string
		hours       float64
		caution     bool
		importance  string
		scheduledAt time.Time
		status      string
		round       int
		feedback    *string
	}

	feedback := "Audio levels are off in the second half, please rebalance."
	seeds := []seedTask{
		{title: "Channel trailer recut", difficulty: "HARD", hours: 6, caution: true, importance: "HIGH",
			scheduledAt: now.AddDate(0, 0, -2), status: "PENDING", round: 1},
		{title: "Weekly recap episode", difficulty: "MEDIUM", hours: 3, importance: "MEDIUM",
			scheduledAt: now, status: "PENDING", round: 1},
		{title: "Shorts batch #14", difficulty: "EASY", hours: 1,
			scheduledAt: now.AddDate(0, 0, 3), status: "PENDING", round: 1},
		{title: "Sponsor integration cut", difficulty: "MEDIUM", hours: 2, importance: "HIGH",
			scheduledAt: now.AddDate(0, 0, -1), status: "REVISE", round: 2, feedback: &feedback},
		{title: "Podcast episode 42", difficulty: "MEDIUM", hours: 4,
			scheduledAt: now, status: "PASSED", round: 1},
	}

	for _, s := range seeds {
		task := model.Task{
			Id:             uuid.New(),
			Title:          s.title,
			ChannelId:      channelId,
			Difficulty:     s.difficulty,
			EstimatedHours: s.hours,
			Caution:        s.caution,
			Importance:     s.importance,
			Assets:         datatypes.NewJSONSlice([]string{"https://drive.example.com/" + uuid.NewString()}),
			AssigneeIds:    datatypes.NewJSONSlice([]string{scripter.Id.String()}),
			IdeaOwnerIds:   datatypes.NewJSONSlice([]string{seniorEditor.Id.String()}),
			EditorIds:      datatypes.NewJSONSlice([]string{editor.Id.String()}),
			WorkflowStatus: "IN_REVIEW",
		}
		if s.status == "PASSED" {
			task.WorkflowStatus = "COMPLETED"
		}
		if s.status == "REVISE" {
			task.WorkflowStatus = "IN_PROGRESS"
		}
		if err := db.Create(&task).Error; err != nil {
			color.Red("Failed to create task %q: %v", s.title, err)
			os.Exit(1)
		}

		session := model.ReviewSession{
			Id:          uuid.New(),
			TaskId:      task.Id,
			Round:       s.round,
			ScheduledAt: s.scheduledAt,
			Status:      s.status,
			Feedback:    s.feedback,
		}
		if s.status != "PENDING" {
			session.ReviewerId = &seniorEditor.Id
		}
		if s.status == "PASSED" {
			xp := 300
			session.AwardedXP = &xp
		}
		if err := db.Create(&session).Error; err != nil {
			color.Red("Failed to create session for %q: %v", s.title, err)
			os.Exit(1)
		}
		color.Green("  created %q [%s, round %d]", s.title, s.status, s.round)
	}

	color.Cyan("\nDone.")
}
