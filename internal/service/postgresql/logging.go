package service

import (
	"log"
	"time"

	entity "bibtrade/internal/domain"
	mongorepo "bibtrade/internal/repository/mongodb"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification and status-history writes are best effort: a Mongo outage must
// never fail the Postgres mutation that triggered them.

func saveNotification(logRepo mongorepo.LogRepository, userID uuid.UUID, title, message, notiType string, relatedID uuid.UUID) {
	noti := &entity.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID.String(),
		Title:     title,
		Message:   message,
		Type:      notiType,
		RelatedID: relatedID.String(),
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := logRepo.SaveNotification(noti); err != nil {
		log.Printf("Warning: failed to save notification for user %s: %v", userID.String(), err)
	}
}

func saveHistory(logRepo mongorepo.LogRepository, relatedID uuid.UUID, relatedType, oldStatus, newStatus string, changedBy uuid.UUID) {
	history := &entity.HistoryStatus{
		ID:          primitive.NewObjectID(),
		RelatedID:   relatedID.String(),
		RelatedType: relatedType,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   changedBy.String(),
		Timestamp:   time.Now(),
	}
	if err := logRepo.SaveHistoryStatus(history); err != nil {
		log.Printf("Warning: failed to save history status for %s %s: %v", relatedType, relatedID.String(), err)
	}
}
