package model

import (
	"time"

	"github.com/reelkit/reels-ms-go/internal/db"
)

// AspectRatioPortrait is the only aspect ratio tag this system ever produces:
// the feed is a vertical, full-viewport scroll list.
const AspectRatioPortrait = "9:16"

// Video is one uploaded clip. Records are append-only: they are created once
// by the upload pipeline after a successful storage transfer, and never
// updated or deleted afterwards.
type Video struct {
	ID           db.UUID   `json:"id"`
	Seq          int64     `json:"seq"`
	CreatorID    string    `json:"creator_id"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Description  *string   `json:"description"`
	AspectRatio  *string   `json:"aspect_ratio"`
	Duration     *int      `json:"duration"`
	CreatedAt    time.Time `json:"created_at"`
}
