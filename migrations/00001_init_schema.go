package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(Up, Down)
}

func Up(tx *sql.Tx) error {
	createUsersTable := `
	CREATE TABLE users (
		id UUID PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		full_name VARCHAR(255),
		password VARCHAR(255) NOT NULL,
		avatar VARCHAR(500),
		cover_image VARCHAR(500),
		refresh_token VARCHAR(500),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.Exec(createUsersTable); err != nil {
		return fmt.Errorf("could not create users table: %w", err)
	}

	createVideosTable := `
	CREATE TABLE videos (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL,
		video_file VARCHAR(500) NOT NULL,
		thumbnail VARCHAR(500) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		duration BIGINT NOT NULL DEFAULT 0,
		views BIGINT NOT NULL DEFAULT 0,
		is_published BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX idx_videos_owner ON videos (owner_id);
	CREATE INDEX idx_videos_published_created ON videos (is_published, created_at DESC);
	`
	if _, err := tx.Exec(createVideosTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}

	createCommentsTable := `
	CREATE TABLE comments (
		id UUID PRIMARY KEY,
		content TEXT NOT NULL,
		video_id UUID NOT NULL,
		owner_id UUID NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX idx_comments_video ON comments (video_id, created_at DESC);
	CREATE INDEX idx_comments_owner ON comments (owner_id);
	`
	if _, err := tx.Exec(createCommentsTable); err != nil {
		return fmt.Errorf("could not create comments table: %w", err)
	}

	// The unique index is what makes like toggling race-safe: a racing
	// double-create degrades to one edge via ON CONFLICT DO NOTHING.
	createLikesTable := `
	CREATE TABLE likes (
		id UUID PRIMARY KEY,
		liked_by_id UUID NOT NULL,
		target_kind VARCHAR(16) NOT NULL,
		target_id UUID NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CONSTRAINT idx_like_target UNIQUE (liked_by_id, target_kind, target_id)
	);
	CREATE INDEX idx_likes_target ON likes (target_kind, target_id);
	`
	if _, err := tx.Exec(createLikesTable); err != nil {
		return fmt.Errorf("could not create likes table: %w", err)
	}

	createSubscriptionsTable := `
	CREATE TABLE subscriptions (
		id UUID PRIMARY KEY,
		subscriber_id UUID NOT NULL,
		channel_id UUID NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CONSTRAINT idx_sub_edge UNIQUE (subscriber_id, channel_id)
	);
	CREATE INDEX idx_subscriptions_channel ON subscriptions (channel_id);
	`
	if _, err := tx.Exec(createSubscriptionsTable); err != nil {
		return fmt.Errorf("could not create subscriptions table: %w", err)
	}

	createPlaylistsTables := `
	CREATE TABLE playlists (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		owner_id UUID NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX idx_playlists_owner ON playlists (owner_id);

	CREATE TABLE playlist_videos (
		id SERIAL PRIMARY KEY,
		playlist_id UUID NOT NULL,
		video_id UUID NOT NULL,
		position INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CONSTRAINT idx_playlist_video UNIQUE (playlist_id, video_id)
	);
	CREATE INDEX idx_playlist_videos_video ON playlist_videos (video_id);
	`
	if _, err := tx.Exec(createPlaylistsTables); err != nil {
		return fmt.Errorf("could not create playlist tables: %w", err)
	}

	createTweetsTable := `
	CREATE TABLE tweets (
		id UUID PRIMARY KEY,
		content TEXT NOT NULL,
		owner_id UUID NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX idx_tweets_owner ON tweets (owner_id, created_at DESC);
	`
	if _, err := tx.Exec(createTweetsTable); err != nil {
		return fmt.Errorf("could not create tweets table: %w", err)
	}

	createWatchHistoryTable := `
	CREATE TABLE watch_history (
		id SERIAL PRIMARY KEY,
		user_id UUID NOT NULL,
		video_id UUID NOT NULL,
		watched_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CONSTRAINT idx_history_user_video UNIQUE (user_id, video_id)
	);
	CREATE INDEX idx_watch_history_user ON watch_history (user_id, watched_at DESC);
	`
	if _, err := tx.Exec(createWatchHistoryTable); err != nil {
		return fmt.Errorf("could not create watch_history table: %w", err)
	}

	return nil
}

func Down(tx *sql.Tx) error {
	dropTables := []string{
		"watch_history", "tweets", "playlist_videos", "playlists",
		"subscriptions", "likes", "comments", "videos", "users",
	}
	for _, table := range dropTables {
		if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return fmt.Errorf("could not drop table %s: %w", table, err)
		}
	}
	return nil
}

