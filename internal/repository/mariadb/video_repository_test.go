package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/reelkit/reels-ms-go/internal/db"
	"github.com/reelkit/reels-ms-go/internal/model"
	"github.com/reelkit/reels-ms-go/internal/port"
)

var videoColumns = []string{"id", "seq", "creator_id", "video_url", "thumbnail_url", "description", "aspect_ratio", "duration", "created_at"}

func TestVideoRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mockID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	desc := "first clip"
	ratio := model.AspectRatioPortrait
	duration := 17
	v := &model.Video{
		ID:          mockID,
		CreatorID:   "user-1",
		VideoURL:    "https://cdn.example.com/videos/123_abc.mp4",
		Description: &desc,
		AspectRatio: &ratio,
		Duration:    &duration,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO videos
        (id, creator_id, video_url, thumbnail_url, description, aspect_ratio, duration)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `)).
		WithArgs(
			v.ID,
			v.CreatorID,
			v.VideoURL,
			v.ThumbnailURL,
			v.Description,
			v.AspectRatio,
			v.Duration,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), v); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestVideoRepository_Create_ExecError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos`)).
		WillReturnError(errors.New("exec failed"))

	v := &model.Video{
		ID:        db.NewUUID(),
		CreatorID: "user-1",
		VideoURL:  "https://cdn.example.com/videos/123_abc.mp4",
	}
	if err := repo.Create(context.Background(), v); err == nil {
		t.Error("Create() expected error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestVideoRepository_GetByID_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mockID := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(videoColumns).
		AddRow(mockID, int64(42), "user-1", "https://cdn.example.com/videos/123_abc.mp4", nil, nil, model.AspectRatioPortrait, 17, created)

	mock.ExpectQuery(regexp.QuoteMeta(`
      SELECT id, seq, creator_id, video_url, thumbnail_url, description, aspect_ratio, duration, created_at
      FROM videos
      WHERE id = ?
    `)).
		WithArgs(mockID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), mockID)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if got.ID != mockID {
		t.Errorf("ID = %v; want %v", got.ID, mockID)
	}
	if got.Seq != 42 {
		t.Errorf("Seq = %d; want 42", got.Seq)
	}
	if got.AspectRatio == nil || *got.AspectRatio != model.AspectRatioPortrait {
		t.Errorf("AspectRatio = %v; want %q", got.AspectRatio, model.AspectRatioPortrait)
	}
	if got.ThumbnailURL != nil {
		t.Errorf("ThumbnailURL = %v; want nil", got.ThumbnailURL)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v; want %v", got.CreatedAt, created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mockID := db.NewUUID()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, seq, creator_id`)).
		WithArgs(mockID).
		WillReturnRows(sqlmock.NewRows(videoColumns))

	if _, err := repo.GetByID(context.Background(), mockID); err == nil {
		t.Error("GetByID() expected error for missing row, got nil")
	}
}

func TestVideoRepository_ListNewest_NoCursor(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(videoColumns).
		AddRow(db.NewUUID(), int64(42), "user-1", "https://cdn.example.com/a.mp4", nil, nil, nil, nil, created).
		AddRow(db.NewUUID(), int64(41), "user-2", "https://cdn.example.com/b.mp4", nil, nil, nil, nil, created.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, seq DESC LIMIT ?`)).
		WithArgs(10).
		WillReturnRows(rows)

	got, err := repo.ListNewest(context.Background(), port.ListVideosFilter{Limit: 10})
	if err != nil {
		t.Fatalf("ListNewest() returned unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(got))
	}
	if got[0].Seq != 42 || got[1].Seq != 41 {
		t.Errorf("unexpected ordering: %d, %d", got[0].Seq, got[1].Seq)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestVideoRepository_ListNewest_CursorOnly(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	cursor := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE created_at < ? ORDER BY created_at DESC, seq DESC LIMIT ?`)).
		WithArgs(cursor, 5).
		WillReturnRows(sqlmock.NewRows(videoColumns))

	got, err := repo.ListNewest(context.Background(), port.ListVideosFilter{Limit: 5, Cursor: &cursor})
	if err != nil {
		t.Fatalf("ListNewest() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty page, got %d rows", len(got))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestVideoRepository_ListNewest_CursorWithSeqTieBreak(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	cursor := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seq := int64(42)

	// same-timestamp rows with a lower seq are still returned
	rows := sqlmock.NewRows(videoColumns).
		AddRow(db.NewUUID(), int64(41), "user-1", "https://cdn.example.com/a.mp4", nil, nil, nil, nil, cursor)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE created_at < ? OR (created_at = ? AND seq < ?) ORDER BY created_at DESC, seq DESC LIMIT ?`)).
		WithArgs(cursor, cursor, seq, 10).
		WillReturnRows(rows)

	got, err := repo.ListNewest(context.Background(), port.ListVideosFilter{Limit: 10, Cursor: &cursor, CursorSeq: &seq})
	if err != nil {
		t.Fatalf("ListNewest() returned unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Seq != 41 {
		t.Errorf("unexpected page %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestVideoRepository_ListNewest_QueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM videos`)).
		WillReturnError(errors.New("query failed"))

	if _, err := repo.ListNewest(context.Background(), port.ListVideosFilter{Limit: 10}); err == nil {
		t.Error("ListNewest() expected error, got nil")
	}
}

func TestVideoRepository_ExistsByVideoURL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewVideoRepository(sqlDB)

	url := "https://cdn.example.com/videos/123_abc.mp4"
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM videos WHERE video_url = ?)`)).
		WithArgs(url).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByVideoURL(context.Background(), url)
	if err != nil {
		t.Fatalf("ExistsByVideoURL() returned unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists = true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
