package repositories

import (
	"time"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"gorm.io/gorm"
)

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) repositories.PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entities.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *playlistRepository) GetByID(id string) (*entities.Playlist, error) {
	var playlist entities.Playlist
	if err := r.db.Take(&playlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) Save(playlist *entities.Playlist) error {
	return r.db.Save(playlist).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&entities.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Playlist{}).Error
	})
}

// AddVideo appends at the end of the playlist. The unique (playlist, video)
// pair makes re-adding a no-op.
func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	return r.db.Exec(`
		INSERT INTO playlist_videos (playlist_id, video_id, position, created_at)
		SELECT ?, ?, COALESCE(MAX(position), 0) + 1, NOW()
		FROM playlist_videos WHERE playlist_id = ?
		ON CONFLICT ON CONSTRAINT idx_playlist_video DO NOTHING`,
		playlistID, videoID, playlistID).Error
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) error {
	return r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&entities.PlaylistVideo{}).Error
}

func (r *playlistRepository) Detail(playlistID string) (*dto.PlaylistDetail, error) {
	var head struct {
		ID            string
		Name          string
		Description   string
		CreatedAt     time.Time
		OwnerID       string
		OwnerUsername string
		OwnerAvatar   string
	}
	err := r.db.Table("playlists").
		Select(`playlists.id, playlists.name, playlists.description, playlists.created_at,
			users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar`).
		Joins("JOIN users ON users.id = playlists.owner_id").
		Where("playlists.id = ?", playlistID).
		Take(&head).Error
	if err != nil {
		return nil, err
	}

	var rows []struct {
		videoRow
		LikesCount int64
	}
	err = r.db.Table("playlist_videos").
		Select(videoRowSelect+`,
			(SELECT COUNT(*) FROM likes WHERE likes.target_kind = ? AND likes.target_id = videos.id) AS likes_count`,
			constants.TargetVideo).
		Joins("JOIN videos ON videos.id = playlist_videos.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("playlist_videos.playlist_id = ? AND videos.is_published = ?", playlistID, true).
		Order("playlist_videos.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	detail := &dto.PlaylistDetail{
		ID:          head.ID,
		Name:        head.Name,
		Description: head.Description,
		CreatedAt:   head.CreatedAt,
		Owner: dto.OwnerSummary{
			ID:       head.OwnerID,
			Username: head.OwnerUsername,
			Avatar:   head.OwnerAvatar,
		},
		Videos: make([]dto.PlaylistVideoView, 0, len(rows)),
	}
	for _, row := range rows {
		summaries := toVideoSummaries([]videoRow{row.videoRow})
		detail.Videos = append(detail.Videos, dto.PlaylistVideoView{
			VideoSummary: summaries[0],
			LikesCount:   row.LikesCount,
		})
		detail.TotalViews += row.Views
	}
	detail.TotalVideos = int64(len(detail.Videos))
	return detail, nil
}

func (r *playlistRepository) ListByOwner(ownerID string) ([]dto.PlaylistDetail, error) {
	var rows []struct {
		ID            string
		Name          string
		Description   string
		CreatedAt     time.Time
		OwnerID       string
		OwnerUsername string
		OwnerAvatar   string
		TotalVideos   int64
		TotalViews    int64
	}
	err := r.db.Table("playlists").
		Select(`playlists.id, playlists.name, playlists.description, playlists.created_at,
			users.id AS owner_id, users.username AS owner_username, users.avatar AS owner_avatar,
			(SELECT COUNT(*) FROM playlist_videos pv
				JOIN videos v ON v.id = pv.video_id AND v.is_published
				WHERE pv.playlist_id = playlists.id) AS total_videos,
			COALESCE((SELECT SUM(v.views) FROM playlist_videos pv
				JOIN videos v ON v.id = pv.video_id AND v.is_published
				WHERE pv.playlist_id = playlists.id), 0) AS total_views`).
		Joins("JOIN users ON users.id = playlists.owner_id").
		Where("playlists.owner_id = ?", ownerID).
		Order("playlists.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]dto.PlaylistDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, dto.PlaylistDetail{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			Owner: dto.OwnerSummary{
				ID:       row.OwnerID,
				Username: row.OwnerUsername,
				Avatar:   row.OwnerAvatar,
			},
			TotalVideos: row.TotalVideos,
			TotalViews:  row.TotalViews,
		})
	}
	return details, nil
}

func (r *playlistRepository) RemoveDanglingRefs() (int64, error) {
	res := r.db.Exec(`
		DELETE FROM playlist_videos
		WHERE video_id NOT IN (SELECT id FROM videos)`)
	return res.RowsAffected, res.Error
}
