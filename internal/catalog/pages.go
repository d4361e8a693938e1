package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	watchLookupWindow   = 100
	recommendationCount = 20
	recommendationStart = 200
	watchCommentCount   = 50

	subscriptionVideoCount = 24
)

// WatchPage is everything the watch view shows for one video.
type WatchPage struct {
	Video           Video
	Recommendations []Video
	Comments        []Comment
}

// WatchPage resolves videoID and assembles its recommendations and comment
// thread concurrently. IDs that don't parse, or that fall outside the first
// 100 videos, resolve to video-0.
func (g *Generator) WatchPage(ctx context.Context, videoID string) (WatchPage, error) {
	idx, ok := ParseVideoID(videoID)
	if !ok || idx >= watchLookupWindow {
		idx = 0
	}

	var page WatchPage
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		page.Video = g.Video(idx)
		return ctx.Err()
	})
	eg.Go(func() error {
		recs, err := g.Videos(recommendationCount, recommendationStart)
		if err != nil {
			return err
		}
		page.Recommendations = recs
		return ctx.Err()
	})
	eg.Go(func() error {
		comments, err := g.Derive(EntityID(KindVideo, idx)).Comments(watchCommentCount, 0)
		if err != nil {
			return err
		}
		page.Comments = comments
		return ctx.Err()
	})

	if err := eg.Wait(); err != nil {
		return WatchPage{}, err
	}
	return page, nil
}

// SubscriptionsPage is the subscribed-channel strip plus the latest uploads.
type SubscriptionsPage struct {
	Channels []Channel
	Videos   []Video
}

// Subscriptions returns one channel per catalog name and 24 videos.
func (g *Generator) Subscriptions() SubscriptionsPage {
	channels, _ := g.Channels(len(ChannelNames), 0)
	videos, _ := g.Videos(subscriptionVideoCount, 0)
	return SubscriptionsPage{Channels: channels, Videos: videos}
}
