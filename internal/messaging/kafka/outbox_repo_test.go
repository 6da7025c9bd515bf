package kafka_test

import (
	"context"
	"testing"

	"school-admin/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll_run",
		AggregateID:   uuid.New().String(),
		EventType:     "payroll.run.generated",
		Topic:         "school.payroll.run.generated.v1",
		Payload:       []byte(`{"payroll_run_id":"x"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	noID := validEvent()
	noID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noID))

	noTopic := validEvent()
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	noPayload := validEvent()
	noPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(noPayload))

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(gormDB)

	bad := validEvent()
	bad.Topic = ""
	err = repo.Create(context.Background(), bad)

	assert.Error(t, err)
	// The invalid event never reaches the database.
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
