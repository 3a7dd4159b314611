package repositories

import (
	"time"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"gorm.io/gorm"
)

// anonViewerID stands in for "no viewer" in the derived-flag subqueries: it
// is a valid uuid that never matches a row, so the flags collapse to false.
const anonViewerID = "00000000-0000-0000-0000-000000000000"

func orAnon(viewerID string) string {
	if viewerID == "" {
		return anonViewerID
	}
	return viewerID
}

// videoRow is the flat scan target for video summary joins.
type videoRow struct {
	ID            string
	Title         string
	Description   string
	Thumbnail     string
	Duration      int64
	Views         int64
	CreatedAt     time.Time
	OwnerID       string
	OwnerUsername string
	OwnerAvatar   string
}

const videoRowSelect = `videos.id, videos.title, videos.description, videos.thumbnail,
	videos.duration, videos.views, videos.created_at,
	users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar`

func toVideoSummaries(rows []videoRow) []dto.VideoSummary {
	summaries := make([]dto.VideoSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dto.VideoSummary{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Thumbnail:   row.Thumbnail,
			Duration:    row.Duration,
			Views:       row.Views,
			CreatedAt:   row.CreatedAt,
			Owner: dto.OwnerSummary{
				ID:       row.OwnerID,
				Username: row.OwnerUsername,
				Avatar:   row.OwnerAvatar,
			},
		})
	}
	return summaries
}

// feedSortColumns whitelists caller-supplied sort keys.
var feedSortColumns = map[string]string{
	"createdAt": "videos.created_at",
	"views":     "videos.views",
	"duration":  "videos.duration",
	"title":     "videos.title",
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entities.Video) error {
	return r.db.Create(video).Error
}

func (r *videoRepository) GetByID(id string) (*entities.Video, error) {
	var video entities.Video
	if err := r.db.Take(&video, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Save(video *entities.Video) error {
	return r.db.Save(video).Error
}

// Delete cascades over everything referencing the video inside one
// transaction, so reads are consistent the moment the call returns. Media
// assets are not touched here; their destruction goes through the cleanup
// queue.
func (r *videoRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id IN (?)",
			constants.TargetComment,
			tx.Model(&entities.Comment{}).Select("id").Where("video_id = ?", id),
		).Delete(&entities.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_kind = ? AND target_id = ?",
			constants.TargetVideo, id).Delete(&entities.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entities.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&entities.WatchHistoryEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Video{}).Error
	})
}

func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&entities.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *videoRepository) Feed(params dto.FeedParams) ([]dto.VideoSummary, int64, error) {
	base := func() *gorm.DB {
		q := r.db.Table("videos").Where("videos.is_published = ?", true)
		if params.Query != "" {
			like := "%" + params.Query + "%"
			q = q.Where("videos.title ILIKE ? OR videos.description ILIKE ?", like, like)
		}
		if params.OwnerID != "" {
			q = q.Where("videos.owner_id = ?", params.OwnerID)
		}
		return q
	}

	// Total count is a separate aggregate over the same filters.
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "videos.created_at DESC"
	if col, ok := feedSortColumns[params.SortBy]; ok {
		order = col + " ASC"
		if params.SortDesc {
			order = col + " DESC"
		}
	}

	var rows []videoRow
	err := base().
		Select(videoRowSelect).
		Joins("JOIN users ON users.id = videos.owner_id").
		Order(order).
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return toVideoSummaries(rows), total, nil
}

func (r *videoRepository) Detail(id, viewerID string) (*dto.VideoDetail, error) {
	viewer := orAnon(viewerID)

	var row struct {
		videoRow
		VideoFile        string
		IsPublished      bool
		LikesCount       int64
		IsLiked          bool
		SubscribersCount int64
		IsSubscribed     bool
	}
	err := r.db.Table("videos").
		Select(videoRowSelect+`,
			videos.video_file, videos.is_published,
			(SELECT COUNT(*) FROM likes WHERE likes.target_kind = ? AND likes.target_id = videos.id) AS likes_count,
			EXISTS(SELECT 1 FROM likes WHERE likes.target_kind = ? AND likes.target_id = videos.id AND likes.liked_by_id = ?) AS is_liked,
			(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.channel_id = videos.owner_id) AS subscribers_count,
			EXISTS(SELECT 1 FROM subscriptions WHERE subscriptions.channel_id = videos.owner_id AND subscriptions.subscriber_id = ?) AS is_subscribed`,
			constants.TargetVideo, constants.TargetVideo, viewer, viewer).
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("videos.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}

	summaries := toVideoSummaries([]videoRow{row.videoRow})
	return &dto.VideoDetail{
		VideoSummary:     summaries[0],
		VideoFile:        row.VideoFile,
		IsPublished:      row.IsPublished,
		LikesCount:       row.LikesCount,
		IsLiked:          row.IsLiked,
		SubscribersCount: row.SubscribersCount,
		IsSubscribed:     row.IsSubscribed,
	}, nil
}
