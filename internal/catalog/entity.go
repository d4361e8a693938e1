package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which entity type a generator call produces.
type Kind int

const (
	KindVideo Kind = iota
	KindShort
	KindComment
	KindChannel
)

// String returns the lowercase kind name, which is also the ID prefix.
func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindShort:
		return "short"
	case KindComment:
		return "comment"
	case KindChannel:
		return "channel"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= KindVideo && k <= KindChannel
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video", "videos":
		return KindVideo, nil
	case "short", "shorts":
		return KindShort, nil
	case "comment", "comments":
		return KindComment, nil
	case "channel", "channels":
		return KindChannel, nil
	}
	return 0, fmt.Errorf("unknown kind %q: %w", s, ErrInvalidArgument)
}

// EntityID builds the identifier for the entity at an absolute index.
// The same (kind, index) always yields the same identifier.
func EntityID(kind Kind, index int) string {
	return kind.String() + "-" + strconv.Itoa(index)
}

// ParseVideoID extracts the absolute index from a "video-N" identifier.
func ParseVideoID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, KindVideo.String()+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Entity is one generated record.
type Entity interface {
	EntityID() string
	EntityKind() Kind
}

// Video is a full-length catalog video.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ChannelName   string    `json:"channel_name"`
	ChannelAvatar string    `json:"channel_avatar"`
	Thumbnail     string    `json:"thumbnail"`
	Views         int64     `json:"views"`
	Uploaded      time.Time `json:"uploaded"`
	Duration      int       `json:"duration"` // whole seconds
	Live          bool      `json:"live"`
	Verified      bool      `json:"verified"`
}

func (v Video) EntityID() string { return v.ID }
func (v Video) EntityKind() Kind { return KindVideo }

// Short is a vertical video of 10 to 60 seconds.
type Short struct {
	Video
	IsShort bool `json:"is_short"`
}

func (s Short) EntityID() string { return s.ID }
func (s Short) EntityKind() Kind { return KindShort }

// Comment is a viewer comment on a video.
type Comment struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Avatar  string    `json:"avatar"`
	Text    string    `json:"text"`
	Likes   int       `json:"likes"`
	Posted  time.Time `json:"posted"`
	TimeAgo string    `json:"time_ago"`
	Replies int       `json:"replies"`
}

func (c Comment) EntityID() string { return c.ID }
func (c Comment) EntityKind() Kind { return KindComment }

// Channel is a subscribed channel.
type Channel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Verified      bool   `json:"verified"`
	HasNewContent bool   `json:"has_new_content"`
}

func (c Channel) EntityID() string { return c.ID }
func (c Channel) EntityKind() Kind { return KindChannel }
