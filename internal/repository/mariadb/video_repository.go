package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/reelkit/reels-ms-go/internal/db"
	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s by creator %q...", video.ID, video.CreatorID)

	// seq and created_at are assigned by the store
	const query = `
      INSERT INTO videos
        (id, creator_id, video_url, thumbnail_url, description, aspect_ratio, duration)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.CreatorID, video.VideoURL,
		video.ThumbnailURL, video.Description,
		video.AspectRatio, video.Duration,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Video, error) {
	log.Printf("fetching video #%s from the database...", ID)

	const query = `
      SELECT id, seq, creator_id, video_url, thumbnail_url, description, aspect_ratio, duration, created_at
      FROM videos
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var video model.Video
	if err := row.Scan(
		&video.ID, &video.Seq, &video.CreatorID, &video.VideoURL,
		&video.ThumbnailURL, &video.Description,
		&video.AspectRatio, &video.Duration, &video.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &video, nil
}

// ListNewest returns up to filter.Limit records ordered by
// (created_at DESC, seq DESC). With a cursor, only rows strictly older than
// the cursor position are returned; the seq tie-break keeps paging stable
// when several records share a timestamp.
func (r *VideoRepository) ListNewest(ctx context.Context, filter port.ListVideosFilter) ([]model.Video, error) {
	log.Printf("listing up to %d newest videos from the database...", filter.Limit)

	query := `
      SELECT id, seq, creator_id, video_url, thumbnail_url, description, aspect_ratio, duration, created_at
      FROM videos
    `
	var args []any
	switch {
	case filter.Cursor != nil && filter.CursorSeq != nil:
		query += ` WHERE created_at < ? OR (created_at = ? AND seq < ?)`
		args = append(args, *filter.Cursor, *filter.Cursor, *filter.CursorSeq)
	case filter.Cursor != nil:
		query += ` WHERE created_at < ?`
		args = append(args, *filter.Cursor)
	}
	query += ` ORDER BY created_at DESC, seq DESC LIMIT ?`
	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	videos := make([]model.Video, 0, filter.Limit)
	for rows.Next() {
		var video model.Video
		if err := rows.Scan(
			&video.ID, &video.Seq, &video.CreatorID, &video.VideoURL,
			&video.ThumbnailURL, &video.Description,
			&video.AspectRatio, &video.Duration, &video.CreatedAt,
		); err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *VideoRepository) ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM videos WHERE video_url = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, videoURL).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
