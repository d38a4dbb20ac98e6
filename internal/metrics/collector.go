package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessMetricsCollector periodically refreshes gauges from the database
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
}

// NewBusinessMetricsCollector creates a collector
func NewBusinessMetricsCollector(db *gorm.DB, m *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: m,
		logger:  logger,
	}
}

// Start runs the collector loop until the context is cancelled
func (c *BusinessMetricsCollector) Start(ctx context.Context) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	c.collect()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Business metrics collector stopped")
			return
		case <-ticker.C:
			c.collect()
		}
	}
}

func (c *BusinessMetricsCollector) collect() {
	var folderCount int64
	if err := c.db.Table("folders").Where("deleted_at IS NULL").Count(&folderCount).Error; err != nil {
		c.logger.Warn("Failed to count folders", zap.Error(err))
	} else {
		c.metrics.SetFoldersTotal(float64(folderCount))
	}

	var boardCount int64
	if err := c.db.Table("boards").Where("deleted_at IS NULL").Count(&boardCount).Error; err != nil {
		c.logger.Warn("Failed to count boards", zap.Error(err))
	} else {
		c.metrics.SetBoardsTotal(float64(boardCount))
	}

	var pendingCount int64
	if err := c.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM folder_collaborations WHERE status = 'pending' AND deleted_at IS NULL) +
			(SELECT COUNT(*) FROM board_collaborations WHERE status = 'pending' AND deleted_at IS NULL)
	`).Scan(&pendingCount).Error; err != nil {
		c.logger.Warn("Failed to count pending invitations", zap.Error(err))
	} else {
		c.metrics.SetPendingInvitationsTotal(float64(pendingCount))
	}
}
