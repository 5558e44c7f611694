package logger

import (
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PGOrphanOrderLogger persists gateway orders that got no local row so they
// can be reconciled by hand later.
type PGOrphanOrderLogger struct {
	db *gorm.DB
}

func NewPGOrphanOrderLogger(db *gorm.DB) *PGOrphanOrderLogger {
	return &PGOrphanOrderLogger{db: db}
}

func (l *PGOrphanOrderLogger) LogOrphanOrder(orphan *domain.OrphanOrder) error {
	record := models.OrphanOrderModel{
		ID:             orphan.ID,
		GatewayOrderID: orphan.GatewayOrderID,
		Receipt:        orphan.Receipt,
		Email:          orphan.Email,
		TotalAmount:    orphan.TotalAmount,
		Currency:       orphan.Currency,
		ErrorMessage:   orphan.ErrorMessage,
		CreatedAt:      orphan.CreatedAt,
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	return l.db.Create(&record).Error
}
