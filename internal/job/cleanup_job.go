package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/repository"
)

// cleanupSchedule runs the job once a day at 03:00.
const cleanupSchedule = "0 3 * * *"

// CleanupJob declines invitations that have sat pending past the
// configured expiry window.
type CleanupJob struct {
	folderCollabRepo repository.FolderCollaborationRepository
	boardCollabRepo  repository.BoardCollaborationRepository
	pendingExpiry    time.Duration
	logger           *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	folderCollabRepo repository.FolderCollaborationRepository,
	boardCollabRepo repository.BoardCollaborationRepository,
	pendingExpiry time.Duration,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		folderCollabRepo: folderCollabRepo,
		boardCollabRepo:  boardCollabRepo,
		pendingExpiry:    pendingExpiry,
		logger:           logger,
	}
}

// Schedule registers the job on a cron runner and starts it. The
// returned cron can be stopped during shutdown.
func (j *CleanupJob) Schedule() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddJob(cleanupSchedule, j); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// Run executes one cleanup pass. It implements cron.Job.
func (j *CleanupJob) Run() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.pendingExpiry)

	j.logger.Info("Starting invitation cleanup",
		zap.Time("cutoff", cutoff),
	)

	declined := j.declineExpiredFolderInvitations(ctx, cutoff)
	declined += j.declineExpiredBoardInvitations(ctx, cutoff)

	j.logger.Info("Invitation cleanup completed",
		zap.Int("declined", declined),
	)
}

func (j *CleanupJob) declineExpiredFolderInvitations(ctx context.Context, cutoff time.Time) int {
	collabs, err := j.folderCollabRepo.FindPendingOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to list expired folder invitations", zap.Error(err))
		return 0
	}

	count := 0
	for _, collab := range collabs {
		if !collab.Status.CanTransitionTo(domain.CollaborationDeclined) {
			continue
		}
		collab.Status = domain.CollaborationDeclined
		if err := j.folderCollabRepo.Update(ctx, collab); err != nil {
			j.logger.Error("Failed to decline expired folder invitation",
				zap.String("collaboration_id", collab.ID.String()),
				zap.Error(err),
			)
			continue
		}
		count++
	}
	return count
}

func (j *CleanupJob) declineExpiredBoardInvitations(ctx context.Context, cutoff time.Time) int {
	collabs, err := j.boardCollabRepo.FindPendingOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to list expired board invitations", zap.Error(err))
		return 0
	}

	count := 0
	now := time.Now()
	for _, collab := range collabs {
		if !collab.Status.CanTransitionTo(domain.CollaborationDeclined) {
			continue
		}
		collab.Status = domain.CollaborationDeclined
		collab.RespondedAt = &now
		if err := j.boardCollabRepo.Update(ctx, collab); err != nil {
			j.logger.Error("Failed to decline expired board invitation",
				zap.String("collaboration_id", collab.ID.String()),
				zap.Error(err),
			)
			continue
		}
		count++
	}
	return count
}
