package models

import (
	"fmt"
	"strings"
	"time"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type Media struct {
	ID            string
	Type          MediaType
	FileAvailable bool
	CreatorID     string
	EventID       string
	Src           string
}

// MediaSrc returns the playable location of a media file on the backend:
// the high resolution JPEG for images and the HLS playlist for videos.
func MediaSrc(baseURL string, typ MediaType, id string) string {
	base := strings.TrimRight(baseURL, "/")
	if typ == MediaVideo {
		return fmt.Sprintf("%s/media/%s/%s/index.m3u8", base, typ, id)
	}
	return fmt.Sprintf("%s/media/%s/%s/high.jpg", base, typ, id)
}

type Message struct {
	ID        string
	EventID   string
	UserID    string
	Text      string
	Timestamp time.Time
}
