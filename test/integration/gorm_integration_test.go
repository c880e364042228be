package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/repository/specification"
	"quality-gate-be/internal/repository/unitofwork"
	"quality-gate-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TaskRepository())
	assert.NotNil(t, uow.ReviewSessionRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Review Session Repository", func(t *testing.T) {
		count, err := uow.ReviewSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ReviewSession count: %d", count)
	})

	t.Run("Transactional Pass Write", func(t *testing.T) {
		ctx := context.Background()

		// A task with one pending round, written outside the transaction.
		task := &entity.Task{
			Id:             uuid.New(),
			Title:          "Integration test cut " + uuid.NewString(),
			ChannelId:      uuid.New(),
			Difficulty:     entity.TaskDifficultyMedium,
			EstimatedHours: 2,
			EditorIds:      []uuid.UUID{uuid.New()},
			WorkflowStatus: entity.TaskWorkflowInReview,
			CreatedAt:      time.Now(),
		}
		err := uow.TaskRepository().Create(ctx, task)
		assert.NoError(t, err)

		session := &entity.ReviewSession{
			Id:           uuid.New(),
			TaskId:       task.Id,
			Round:        1,
			ScheduledAt:  time.Now(),
			Status:       entity.ReviewStatusPending,
			TaskSnapshot: task,
			CreatedAt:    time.Now(),
		}
		err = uow.ReviewSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		// Decision write: session status and task workflow in one tx.
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		xp := 240
		session.Status = entity.ReviewStatusPassed
		session.AwardedXP = &xp
		err = uow.ReviewSessionRepository().Update(ctx, session)
		assert.NoError(t, err)

		err = uow.TaskRepository().UpdateWorkflowStatus(ctx, task.Id, entity.TaskWorkflowCompleted)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Read back through a fresh unit of work.
		fresh := uowFactory.NewUnitOfWork(ctx)
		got, err := fresh.ReviewSessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, entity.ReviewStatusPassed, got.Status)
			if assert.NotNil(t, got.AwardedXP) {
				assert.Equal(t, 240, *got.AwardedXP)
			}
			// Snapshot survives the round trip through jsonb.
			if assert.NotNil(t, got.TaskSnapshot) {
				assert.Equal(t, task.Title, got.TaskSnapshot.Title)
			}
		}

		gotTask, err := fresh.TaskRepository().FindOne(ctx, specification.ByID{ID: task.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, gotTask) {
			assert.Equal(t, entity.TaskWorkflowCompleted, gotTask.WorkflowStatus)
		}

		t.Log("Successfully passed a review round in a transaction")
	})
}
