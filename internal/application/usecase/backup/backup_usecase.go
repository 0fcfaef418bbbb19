package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/application/usecase/content"
	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/skill"
	"github.com/zthechelon/portfolio/pkg/logger"
)

const (
	Folder     = "backups/content"
	filePrefix = "content-"
)

// Snapshot is the uploaded document.
type Snapshot struct {
	TakenAt     time.Time                `json:"taken_at"`
	Profile     *profile.Profile         `json:"profile"`
	Experiences []*experience.Experience `json:"experiences"`
	Education   []*education.Education   `json:"education"`
	Projects    []*project.Project       `json:"projects"`
	Skills      []*skill.Skill           `json:"skills"`
}

type BackupUseCase struct {
	content  *content.ContentUseCase
	uploader service.Uploader
	// retain is how many snapshots to keep; 0 keeps all.
	retain int
	logger logger.Logger
	now    func() time.Time
}

func NewBackupUseCase(content *content.ContentUseCase, uploader service.Uploader, retain int, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		content:  content,
		uploader: uploader,
		retain:   retain,
		logger:   log,
		now:      time.Now,
	}
}

type BackupOutput struct {
	URL      string
	PublicID string
	Pruned   int
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting content backup...")

	snap, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode content snapshot failed: %w", err)
	}

	filename := fmt.Sprintf("%s%s.json", filePrefix, snap.TakenAt.Format("2006-01-02_15-04-05"))
	publicID := fmt.Sprintf("%s/%s", Folder, filename)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(body), Folder, filename)
	if err != nil {
		return nil, fmt.Errorf("upload content snapshot failed: %w", err)
	}

	uc.logger.Info("Content backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
		zap.Int("bytes", len(body)),
	)
	out := &BackupOutput{URL: uploadURL, PublicID: publicID}
	if uc.retain > 0 {
		out.Pruned = uc.prune(ctx, publicID)
	}
	return out, nil
}

// prune deletes all but the newest uc.retain snapshots. The snapshot just
// uploaded is never deleted. Failures are logged; the backup itself already
// succeeded.
func (uc *BackupUseCase) prune(ctx context.Context, current string) int {
	objects, err := uc.uploader.List(ctx, Folder+"/"+filePrefix)
	if err != nil {
		uc.logger.Error("Failed to list content backups for pruning", err)
		return 0
	}

	// current first regardless of the remote clock, then newest first
	sort.SliceStable(objects, func(i, j int) bool {
		if (objects[i].PublicID == current) != (objects[j].PublicID == current) {
			return objects[i].PublicID == current
		}
		if !objects[i].CreatedAt.Equal(objects[j].CreatedAt) {
			return objects[i].CreatedAt.After(objects[j].CreatedAt)
		}
		return objects[i].PublicID > objects[j].PublicID
	})

	pruned := 0
	for i, obj := range objects {
		if i < uc.retain || obj.PublicID == current {
			continue
		}
		if err := uc.uploader.Delete(ctx, obj.PublicID); err != nil {
			uc.logger.Error("Failed to delete old content backup", err, zap.String("public_id", obj.PublicID))
			continue
		}
		pruned++
	}

	if pruned > 0 {
		uc.logger.Info("Pruned old content backups", zap.Int("deleted", pruned), zap.Int("retain", uc.retain))
	}
	return pruned
}

func (uc *BackupUseCase) snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{TakenAt: uc.now().UTC()}

	profileOut, err := uc.content.ExecuteGetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("read profile failed: %w", err)
	}
	snap.Profile = profileOut.Profile

	if snap.Experiences, err = uc.content.ExecuteListExperiences(ctx); err != nil {
		return nil, fmt.Errorf("read experiences failed: %w", err)
	}
	if snap.Education, err = uc.content.ExecuteListEducation(ctx); err != nil {
		return nil, fmt.Errorf("read education failed: %w", err)
	}
	if snap.Projects, err = uc.content.ExecuteListProjects(ctx); err != nil {
		return nil, fmt.Errorf("read projects failed: %w", err)
	}
	if snap.Skills, err = uc.content.ExecuteListSkills(ctx); err != nil {
		return nil, fmt.Errorf("read skills failed: %w", err)
	}
	return snap, nil
}
