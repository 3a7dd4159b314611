package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"videotube/internal/domain/dto"
	"videotube/internal/domain/entities"
	"videotube/internal/domain/repositories"
	"videotube/pkg/constants"

	"gorm.io/gorm"
)

// MemoryStore is an in-memory implementation of every repository contract.
// It mirrors the SQL repositories' semantics (published filters, toggle
// uniqueness, cascades, derived flags) and backs the usecase tests.
type MemoryStore struct {
	mu sync.RWMutex

	users          map[string]*entities.User
	videos         map[string]*entities.Video
	comments       map[string]*entities.Comment
	likes          map[string]*entities.Like
	subscriptions  map[string]*entities.Subscription
	playlists      map[string]*entities.Playlist
	playlistVideos []*entities.PlaylistVideo
	tweets         map[string]*entities.Tweet
	history        []*entities.WatchHistoryEntry

	base time.Time
	seq  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]*entities.User),
		videos:        make(map[string]*entities.Video),
		comments:      make(map[string]*entities.Comment),
		likes:         make(map[string]*entities.Like),
		subscriptions: make(map[string]*entities.Subscription),
		playlists:     make(map[string]*entities.Playlist),
		tweets:        make(map[string]*entities.Tweet),
		base:          time.Now(),
	}
}

// now hands out strictly increasing timestamps so newest-first ordering is
// deterministic even within one test.
func (s *MemoryStore) now() time.Time {
	s.seq++
	return s.base.Add(time.Duration(s.seq) * time.Microsecond)
}

func (s *MemoryStore) Users() repositories.UserRepository { return &memoryUsers{s} }
func (s *MemoryStore) Videos() repositories.VideoRepository { return &memoryVideos{s} }
func (s *MemoryStore) Comments() repositories.CommentRepository { return &memoryComments{s} }
func (s *MemoryStore) Likes() repositories.LikeRepository { return &memoryLikes{s} }
func (s *MemoryStore) Subscriptions() repositories.SubscriptionRepository {
	return &memorySubscriptions{s}
}
func (s *MemoryStore) Playlists() repositories.PlaylistRepository { return &memoryPlaylists{s} }
func (s *MemoryStore) Tweets() repositories.TweetRepository { return &memoryTweets{s} }

func (s *MemoryStore) ownerSummary(userID string) dto.OwnerSummary {
	if user, ok := s.users[userID]; ok {
		return dto.OwnerSummary{ID: user.ID, Username: user.Username, Avatar: user.Avatar}
	}
	return dto.OwnerSummary{ID: userID}
}

func (s *MemoryStore) videoSummary(v *entities.Video) dto.VideoSummary {
	return dto.VideoSummary{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Thumbnail:   v.Thumbnail,
		Duration:    v.Duration,
		Views:       v.Views,
		CreatedAt:   v.CreatedAt,
		Owner:       s.ownerSummary(v.OwnerID),
	}
}

func (s *MemoryStore) likesCount(kind, targetID string) int64 {
	var n int64
	for _, like := range s.likes {
		if like.TargetKind == kind && like.TargetID == targetID {
			n++
		}
	}
	return n
}

func (s *MemoryStore) isLiked(kind, targetID, viewerID string) bool {
	if viewerID == "" {
		return false
	}
	for _, like := range s.likes {
		if like.TargetKind == kind && like.TargetID == targetID && like.LikedByID == viewerID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) subscribersCount(channelID string) int64 {
	var n int64
	for _, sub := range s.subscriptions {
		if sub.ChannelID == channelID {
			n++
		}
	}
	return n
}

func (s *MemoryStore) isSubscribed(channelID, viewerID string) bool {
	if viewerID == "" {
		return false
	}
	for _, sub := range s.subscriptions {
		if sub.ChannelID == channelID && sub.SubscriberID == viewerID {
			return true
		}
	}
	return false
}

// --- users ---

type memoryUsers struct{ s *MemoryStore }

func (r *memoryUsers) Create(user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.s.now()
	}
	clone := *user
	r.s.users[user.ID] = &clone
	return nil
}

func (r *memoryUsers) GetByID(id string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *memoryUsers) GetByUsernameOrEmail(username, email string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if (username != "" && user.Username == username) || (email != "" && user.Email == email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUsers) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	_, err := r.GetByUsernameOrEmail(username, email)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *memoryUsers) UpdateRefreshToken(userID, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user, ok := r.s.users[userID]; ok {
		user.RefreshToken = token
	}
	return nil
}

func (r *memoryUsers) TouchWatchHistory(userID, videoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, entry := range r.s.history {
		if entry.UserID == userID && entry.VideoID == videoID {
			entry.WatchedAt = r.s.now()
			return nil
		}
	}
	r.s.history = append(r.s.history, &entities.WatchHistoryEntry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: r.s.now(),
	})

	// Cap per-user history at the retention limit.
	var mine []*entities.WatchHistoryEntry
	for _, entry := range r.s.history {
		if entry.UserID == userID {
			mine = append(mine, entry)
		}
	}
	if len(mine) <= constants.WatchHistoryLimit {
		return nil
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].WatchedAt.After(mine[j].WatchedAt) })
	evict := make(map[*entities.WatchHistoryEntry]bool)
	for _, entry := range mine[constants.WatchHistoryLimit:] {
		evict[entry] = true
	}
	kept := r.s.history[:0]
	for _, entry := range r.s.history {
		if !evict[entry] {
			kept = append(kept, entry)
		}
	}
	r.s.history = kept
	return nil
}

func (r *memoryUsers) WatchHistory(userID string) ([]dto.VideoSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var mine []*entities.WatchHistoryEntry
	for _, entry := range r.s.history {
		if entry.UserID == userID {
			mine = append(mine, entry)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].WatchedAt.After(mine[j].WatchedAt) })

	summaries := make([]dto.VideoSummary, 0, len(mine))
	for _, entry := range mine {
		video, ok := r.s.videos[entry.VideoID]
		if !ok {
			continue
		}
		if !video.IsPublished && video.OwnerID != userID {
			continue
		}
		summaries = append(summaries, r.s.videoSummary(video))
	}
	return summaries, nil
}

// --- videos ---

type memoryVideos struct{ s *MemoryStore }

func (r *memoryVideos) Create(video *entities.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if video.CreatedAt.IsZero() {
		video.CreatedAt = r.s.now()
	}
	clone := *video
	r.s.videos[video.ID] = &clone
	return nil
}

func (r *memoryVideos) GetByID(id string) (*entities.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	video, ok := r.s.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *video
	return &clone, nil
}

func (r *memoryVideos) Save(video *entities.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.videos[video.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *video
	r.s.videos[video.ID] = &clone
	return nil
}

func (r *memoryVideos) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for likeID, like := range r.s.likes {
		if like.TargetKind == constants.TargetVideo && like.TargetID == id {
			delete(r.s.likes, likeID)
			continue
		}
		if like.TargetKind == constants.TargetComment {
			if comment, ok := r.s.comments[like.TargetID]; ok && comment.VideoID == id {
				delete(r.s.likes, likeID)
			}
		}
	}
	for commentID, comment := range r.s.comments {
		if comment.VideoID == id {
			delete(r.s.comments, commentID)
		}
	}
	kept := r.s.playlistVideos[:0]
	for _, ref := range r.s.playlistVideos {
		if ref.VideoID != id {
			kept = append(kept, ref)
		}
	}
	r.s.playlistVideos = kept

	keptHistory := r.s.history[:0]
	for _, entry := range r.s.history {
		if entry.VideoID != id {
			keptHistory = append(keptHistory, entry)
		}
	}
	r.s.history = keptHistory

	delete(r.s.videos, id)
	return nil
}

func (r *memoryVideos) IncrementViews(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if video, ok := r.s.videos[id]; ok {
		video.Views++
	}
	return nil
}

func (r *memoryVideos) Feed(params dto.FeedParams) ([]dto.VideoSummary, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*entities.Video
	query := strings.ToLower(params.Query)
	for _, video := range r.s.videos {
		if !video.IsPublished {
			continue
		}
		if params.OwnerID != "" && video.OwnerID != params.OwnerID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(video.Title), query) &&
			!strings.Contains(strings.ToLower(video.Description), query) {
			continue
		}
		matched = append(matched, video)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch params.SortBy {
		case "views":
			if params.SortDesc {
				return a.Views > b.Views
			}
			return a.Views < b.Views
		case "duration":
			if params.SortDesc {
				return a.Duration > b.Duration
			}
			return a.Duration < b.Duration
		case "title":
			if params.SortDesc {
				return a.Title > b.Title
			}
			return a.Title < b.Title
		case "createdAt":
			if params.SortDesc {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]dto.VideoSummary, 0, end-start)
	for _, video := range matched[start:end] {
		page = append(page, r.s.videoSummary(video))
	}
	return page, total, nil
}

func (r *memoryVideos) Detail(id, viewerID string) (*dto.VideoDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	video, ok := r.s.videos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &dto.VideoDetail{
		VideoSummary:     r.s.videoSummary(video),
		VideoFile:        video.VideoFile,
		IsPublished:      video.IsPublished,
		LikesCount:       r.s.likesCount(constants.TargetVideo, id),
		IsLiked:          r.s.isLiked(constants.TargetVideo, id, viewerID),
		SubscribersCount: r.s.subscribersCount(video.OwnerID),
		IsSubscribed:     r.s.isSubscribed(video.OwnerID, viewerID),
	}, nil
}

// --- comments ---

type memoryComments struct{ s *MemoryStore }

func (r *memoryComments) Create(comment *entities.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = r.s.now()
	}
	clone := *comment
	r.s.comments[comment.ID] = &clone
	return nil
}

func (r *memoryComments) GetByID(id string) (*entities.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	comment, ok := r.s.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *comment
	return &clone, nil
}

func (r *memoryComments) Save(comment *entities.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *comment
	r.s.comments[comment.ID] = &clone
	return nil
}

func (r *memoryComments) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for likeID, like := range r.s.likes {
		if like.TargetKind == constants.TargetComment && like.TargetID == id {
			delete(r.s.likes, likeID)
		}
	}
	delete(r.s.comments, id)
	return nil
}

func (r *memoryComments) ListByVideo(videoID, viewerID string, page, limit int) ([]dto.CommentView, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*entities.Comment
	for _, comment := range r.s.comments {
		if comment.VideoID == videoID {
			matched = append(matched, comment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	views := make([]dto.CommentView, 0, end-start)
	for _, comment := range matched[start:end] {
		views = append(views, dto.CommentView{
			ID:         comment.ID,
			Content:    comment.Content,
			CreatedAt:  comment.CreatedAt,
			Owner:      r.s.ownerSummary(comment.OwnerID),
			LikesCount: r.s.likesCount(constants.TargetComment, comment.ID),
			IsLiked:    r.s.isLiked(constants.TargetComment, comment.ID, viewerID),
		})
	}
	return views, total, nil
}

// --- likes ---

type memoryLikes struct{ s *MemoryStore }

func (r *memoryLikes) Toggle(userID, targetKind, targetID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for likeID, like := range r.s.likes {
		if like.LikedByID == userID && like.TargetKind == targetKind && like.TargetID == targetID {
			delete(r.s.likes, likeID)
			return false, nil
		}
	}
	id := targetKind + ":" + targetID + ":" + userID
	r.s.likes[id] = &entities.Like{
		ID:         id,
		LikedByID:  userID,
		TargetKind: targetKind,
		TargetID:   targetID,
		CreatedAt:  r.s.now(),
	}
	return true, nil
}

func (r *memoryLikes) LikedVideos(userID string) ([]dto.VideoSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var mine []*entities.Like
	for _, like := range r.s.likes {
		if like.LikedByID == userID && like.TargetKind == constants.TargetVideo {
			mine = append(mine, like)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })

	summaries := make([]dto.VideoSummary, 0, len(mine))
	for _, like := range mine {
		if video, ok := r.s.videos[like.TargetID]; ok && video.IsPublished {
			summaries = append(summaries, r.s.videoSummary(video))
		}
	}
	return summaries, nil
}

// --- subscriptions ---

type memorySubscriptions struct{ s *MemoryStore }

func (r *memorySubscriptions) Toggle(subscriberID, channelID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for subID, sub := range r.s.subscriptions {
		if sub.SubscriberID == subscriberID && sub.ChannelID == channelID {
			delete(r.s.subscriptions, subID)
			return false, nil
		}
	}
	id := subscriberID + ":" + channelID
	r.s.subscriptions[id] = &entities.Subscription{
		ID:           id,
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    r.s.now(),
	}
	return true, nil
}

func (r *memorySubscriptions) Subscribers(channelID string) ([]dto.SubscriberView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var edges []*entities.Subscription
	for _, sub := range r.s.subscriptions {
		if sub.ChannelID == channelID {
			edges = append(edges, sub)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].CreatedAt.After(edges[j].CreatedAt) })

	views := make([]dto.SubscriberView, 0, len(edges))
	for _, edge := range edges {
		user, ok := r.s.users[edge.SubscriberID]
		if !ok {
			continue
		}
		views = append(views, dto.SubscriberView{
			ID:               user.ID,
			Username:         user.Username,
			Avatar:           user.Avatar,
			FullName:         user.FullName,
			SubscribersCount: r.s.subscribersCount(user.ID),
			SubscribedBack:   r.s.isSubscribed(user.ID, channelID),
		})
	}
	return views, nil
}

func (r *memorySubscriptions) SubscribedChannels(subscriberID string) ([]dto.ChannelView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var edges []*entities.Subscription
	for _, sub := range r.s.subscriptions {
		if sub.SubscriberID == subscriberID {
			edges = append(edges, sub)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].CreatedAt.After(edges[j].CreatedAt) })

	views := make([]dto.ChannelView, 0, len(edges))
	for _, edge := range edges {
		user, ok := r.s.users[edge.ChannelID]
		if !ok {
			continue
		}
		view := dto.ChannelView{
			ID:       user.ID,
			Username: user.Username,
			Avatar:   user.Avatar,
			FullName: user.FullName,
		}
		var latest *entities.Video
		for _, video := range r.s.videos {
			if video.OwnerID != user.ID || !video.IsPublished {
				continue
			}
			view.TotalVideos++
			if latest == nil || video.CreatedAt.After(latest.CreatedAt) {
				latest = video
			}
		}
		if latest != nil {
			summary := r.s.videoSummary(latest)
			view.LatestVideo = &summary
		}
		views = append(views, view)
	}
	return views, nil
}

// --- playlists ---

type memoryPlaylists struct{ s *MemoryStore }

func (r *memoryPlaylists) Create(playlist *entities.Playlist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = r.s.now()
	}
	clone := *playlist
	r.s.playlists[playlist.ID] = &clone
	return nil
}

func (r *memoryPlaylists) GetByID(id string) (*entities.Playlist, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	playlist, ok := r.s.playlists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *playlist
	return &clone, nil
}

func (r *memoryPlaylists) Save(playlist *entities.Playlist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.playlists[playlist.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *playlist
	r.s.playlists[playlist.ID] = &clone
	return nil
}

func (r *memoryPlaylists) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.playlistVideos[:0]
	for _, ref := range r.s.playlistVideos {
		if ref.PlaylistID != id {
			kept = append(kept, ref)
		}
	}
	r.s.playlistVideos = kept
	delete(r.s.playlists, id)
	return nil
}

func (r *memoryPlaylists) AddVideo(playlistID, videoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	maxPos := 0
	for _, ref := range r.s.playlistVideos {
		if ref.PlaylistID == playlistID {
			if ref.VideoID == videoID {
				return nil
			}
			if ref.Position > maxPos {
				maxPos = ref.Position
			}
		}
	}
	r.s.playlistVideos = append(r.s.playlistVideos, &entities.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   maxPos + 1,
		CreatedAt:  r.s.now(),
	})
	return nil
}

func (r *memoryPlaylists) RemoveVideo(playlistID, videoID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.playlistVideos[:0]
	for _, ref := range r.s.playlistVideos {
		if ref.PlaylistID != playlistID || ref.VideoID != videoID {
			kept = append(kept, ref)
		}
	}
	r.s.playlistVideos = kept
	return nil
}

func (r *memoryPlaylists) Detail(playlistID string) (*dto.PlaylistDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	playlist, ok := r.s.playlists[playlistID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	var refs []*entities.PlaylistVideo
	for _, ref := range r.s.playlistVideos {
		if ref.PlaylistID == playlistID {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Position < refs[j].Position })

	detail := &dto.PlaylistDetail{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		Owner:       r.s.ownerSummary(playlist.OwnerID),
		Videos:      make([]dto.PlaylistVideoView, 0, len(refs)),
		CreatedAt:   playlist.CreatedAt,
	}
	for _, ref := range refs {
		video, ok := r.s.videos[ref.VideoID]
		if !ok || !video.IsPublished {
			continue
		}
		detail.Videos = append(detail.Videos, dto.PlaylistVideoView{
			VideoSummary: r.s.videoSummary(video),
			LikesCount:   r.s.likesCount(constants.TargetVideo, video.ID),
		})
		detail.TotalViews += video.Views
	}
	detail.TotalVideos = int64(len(detail.Videos))
	return detail, nil
}

func (r *memoryPlaylists) ListByOwner(ownerID string) ([]dto.PlaylistDetail, error) {
	r.s.mu.RLock()
	ids := make([]string, 0)
	var mine []*entities.Playlist
	for _, playlist := range r.s.playlists {
		if playlist.OwnerID == ownerID {
			mine = append(mine, playlist)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })
	for _, playlist := range mine {
		ids = append(ids, playlist.ID)
	}
	r.s.mu.RUnlock()

	details := make([]dto.PlaylistDetail, 0, len(ids))
	for _, id := range ids {
		detail, err := r.Detail(id)
		if err != nil {
			return nil, err
		}
		detail.Videos = nil
		details = append(details, *detail)
	}
	return details, nil
}

func (r *memoryPlaylists) RemoveDanglingRefs() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var removed int64
	kept := r.s.playlistVideos[:0]
	for _, ref := range r.s.playlistVideos {
		if _, ok := r.s.videos[ref.VideoID]; ok {
			kept = append(kept, ref)
		} else {
			removed++
		}
	}
	r.s.playlistVideos = kept
	return removed, nil
}

// --- tweets ---

type memoryTweets struct{ s *MemoryStore }

func (r *memoryTweets) Create(tweet *entities.Tweet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tweet.CreatedAt.IsZero() {
		tweet.CreatedAt = r.s.now()
	}
	clone := *tweet
	r.s.tweets[tweet.ID] = &clone
	return nil
}

func (r *memoryTweets) GetByID(id string) (*entities.Tweet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	tweet, ok := r.s.tweets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *tweet
	return &clone, nil
}

func (r *memoryTweets) Save(tweet *entities.Tweet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.tweets[tweet.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *tweet
	r.s.tweets[tweet.ID] = &clone
	return nil
}

func (r *memoryTweets) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for likeID, like := range r.s.likes {
		if like.TargetKind == constants.TargetTweet && like.TargetID == id {
			delete(r.s.likes, likeID)
		}
	}
	delete(r.s.tweets, id)
	return nil
}

func (r *memoryTweets) ListByOwner(ownerID, viewerID string) ([]dto.TweetView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var mine []*entities.Tweet
	for _, tweet := range r.s.tweets {
		if tweet.OwnerID == ownerID {
			mine = append(mine, tweet)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })

	views := make([]dto.TweetView, 0, len(mine))
	for _, tweet := range mine {
		views = append(views, dto.TweetView{
			ID:         tweet.ID,
			Content:    tweet.Content,
			CreatedAt:  tweet.CreatedAt,
			Owner:      r.s.ownerSummary(tweet.OwnerID),
			LikesCount: r.s.likesCount(constants.TargetTweet, tweet.ID),
			IsLiked:    r.s.isLiked(constants.TargetTweet, tweet.ID, viewerID),
		})
	}
	return views, nil
}
