package mongodb

import (
	"context"
	"fmt"
	"time"

	entity "bibtrade/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	DatabaseName = "bibtrade"

	CollectionStatus        = "history_status"
	CollectionNotifications = "notifications"
)

// LogRepository records status-history and notification documents. Writes are
// best effort: services log failures and carry on.
type LogRepository interface {
	SaveHistoryStatus(doc *entity.HistoryStatus) error
	SaveNotification(doc *entity.Notification) error
}

type logRepository struct {
	status        *mongo.Collection
	notifications *mongo.Collection
}

func NewLogRepository(client *mongo.Client) LogRepository {
	db := client.Database(DatabaseName)
	return &logRepository{
		status:        db.Collection(CollectionStatus),
		notifications: db.Collection(CollectionNotifications),
	}
}

func (r *logRepository) SaveHistoryStatus(doc *entity.HistoryStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.status.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert history status: %w", err)
	}
	return nil
}

func (r *logRepository) SaveNotification(doc *entity.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.notifications.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
