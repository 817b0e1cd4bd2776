package models

import "time"

// Video is a workout video saved to a user's library. VideoID is the
// YouTube id; Duration is in seconds.
type Video struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	VideoID    string    `json:"video_id"`
	Title      string    `json:"title"`
	Channel    string    `json:"channel"`
	ChannelID  string    `json:"channel_id"`
	Duration   int64     `json:"duration"`
	ViewCount  int64     `json:"view_count"`
	LikeCount  int64     `json:"like_count"`
	Categories []string  `json:"categories"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

// WatchURL is the canonical page for the video.
func (v *Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.VideoID
}
