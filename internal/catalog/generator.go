// Package catalog synthesizes the videos, shorts, comments and channels that
// stand in for a real video backend.
//
// # Determinism
//
// A Generator owns a seed and a clock. Every entity draws its fields from a
// private gofakeit.Faker seeded from (seed, kind, absolute index), so there
// is no shared random state and the same request always yields the same
// identifiers. Field values are stable for a given seed and clock reading;
// construct a Generator with a fresh seed to re-randomize.
//
// # Thread Safety
//
// Generator is immutable after construction and safe for concurrent use.
package catalog

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/abelbrown/tubeview/internal/format"
)

// ErrInvalidArgument is returned for negative counts or offsets and unknown kinds.
var ErrInvalidArgument = errors.New("catalog: invalid argument")

const (
	avatarPool     = 70
	shortSeedBase  = 10000
	uploadWindow   = 365 * 24 * time.Hour
	liveChance     = 5  // percent
	replyChance    = 30 // percent
	newContentRate = 40 // percent
)

// Source produces pages of entities. The feed controller depends only on
// this, so a real backend can be substituted for the Generator.
type Source interface {
	Generate(kind Kind, count, offset int) ([]Entity, error)
}

// Config configures a Generator.
type Config struct {
	Seed int64
	Now  func() time.Time // defaults to time.Now
}

// Generator synthesizes catalog entities.
type Generator struct {
	seed int64
	now  func() time.Time
}

// NewGenerator creates a Generator. A zero Seed is a valid seed.
func NewGenerator(cfg Config) *Generator {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Generator{seed: cfg.Seed, now: cfg.Now}
}

// Seed returns the generator's seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Derive returns a child generator whose entities are independent of the
// parent's. Comment threads are derived per video ID.
func (g *Generator) Derive(key string) *Generator {
	h := fnv.New64a()
	h.Write([]byte(key))
	return &Generator{seed: int64(mix(uint64(g.seed) ^ h.Sum64())), now: g.now}
}

// Generate returns count entities of kind starting at absolute index offset.
func (g *Generator) Generate(kind Kind, count, offset int) ([]Entity, error) {
	if err := checkRange(count, offset); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("generate %s: %w", kind, ErrInvalidArgument)
	}

	now := g.now()
	out := make([]Entity, count)
	for i := range out {
		idx := offset + i
		switch kind {
		case KindVideo:
			out[i] = g.video(idx, now)
		case KindShort:
			out[i] = g.short(idx, now)
		case KindComment:
			out[i] = g.comment(idx, now)
		case KindChannel:
			out[i] = g.channel(idx)
		}
	}
	return out, nil
}

// Videos is Generate(KindVideo, ...) with a concrete result type.
func (g *Generator) Videos(count, offset int) ([]Video, error) {
	if err := checkRange(count, offset); err != nil {
		return nil, err
	}
	now := g.now()
	out := make([]Video, count)
	for i := range out {
		out[i] = g.video(offset+i, now)
	}
	return out, nil
}

// Shorts is Generate(KindShort, ...) with a concrete result type.
func (g *Generator) Shorts(count, offset int) ([]Short, error) {
	if err := checkRange(count, offset); err != nil {
		return nil, err
	}
	now := g.now()
	out := make([]Short, count)
	for i := range out {
		out[i] = g.short(offset+i, now)
	}
	return out, nil
}

// Comments is Generate(KindComment, ...) with a concrete result type.
func (g *Generator) Comments(count, offset int) ([]Comment, error) {
	if err := checkRange(count, offset); err != nil {
		return nil, err
	}
	now := g.now()
	out := make([]Comment, count)
	for i := range out {
		out[i] = g.comment(offset+i, now)
	}
	return out, nil
}

// Channels is Generate(KindChannel, ...) with a concrete result type.
func (g *Generator) Channels(count, offset int) ([]Channel, error) {
	if err := checkRange(count, offset); err != nil {
		return nil, err
	}
	out := make([]Channel, count)
	for i := range out {
		out[i] = g.channel(offset + i)
	}
	return out, nil
}

// Video returns the single video at an absolute index.
// Negative indexes are treated as 0.
func (g *Generator) Video(index int) Video {
	if index < 0 {
		index = 0
	}
	return g.video(index, g.now())
}

func checkRange(count, offset int) error {
	if count < 0 || offset < 0 {
		return fmt.Errorf("count=%d offset=%d: %w", count, offset, ErrInvalidArgument)
	}
	return nil
}

func (g *Generator) faker(kind Kind, index int) *gofakeit.Faker {
	x := uint64(g.seed) ^ (uint64(kind)+1)*0x9E3779B97F4A7C15 ^ uint64(index)*0xD1B54A32D192ED03
	seed := int64(mix(x))
	if seed == 0 {
		// gofakeit treats 0 as "seed from crypto/rand"
		seed = 1
	}
	return gofakeit.New(seed)
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

func (g *Generator) video(index int, now time.Time) Video {
	return buildVideo(g.faker(KindVideo, index), index, now)
}

func buildVideo(f *gofakeit.Faker, index int, now time.Time) Video {
	title := f.RandomString(TitleTemplates) + " " + f.RandomString(VideoTopics)
	return Video{
		ID:            EntityID(KindVideo, index),
		Title:         title,
		ChannelName:   f.RandomString(ChannelNames),
		ChannelAvatar: avatarURL(index),
		Thumbnail:     fmt.Sprintf("https://picsum.photos/seed/%d/640/360", index),
		Views:         views(f),
		Uploaded:      f.DateRange(now.Add(-uploadWindow), now),
		Duration:      f.Number(60, 3600),
		Live:          f.Number(1, 100) <= liveChance,
		Verified:      f.Bool(),
	}
}

// views draws from four tiers weighted 20/30/30/20, uniform within each.
func views(f *gofakeit.Faker) int64 {
	r := f.Float64Range(0, 1)
	switch {
	case r >= 0.8:
		return int64(f.Number(1_000_000, 9_999_999))
	case r >= 0.5:
		return int64(f.Number(100_000, 999_999))
	case r >= 0.2:
		return int64(f.Number(10_000, 99_999))
	default:
		return int64(f.Number(1_000, 9_999))
	}
}

func (g *Generator) short(index int, now time.Time) Short {
	f := g.faker(KindShort, index)
	v := buildVideo(f, index, now)
	v.ID = EntityID(KindShort, index)
	v.Duration = f.Number(10, 60)
	v.Thumbnail = fmt.Sprintf("https://picsum.photos/seed/%d/360/640", shortSeedBase+index)
	return Short{Video: v, IsShort: true}
}

func (g *Generator) comment(index int, now time.Time) Comment {
	f := g.faker(KindComment, index)
	c := Comment{
		ID:     EntityID(KindComment, index),
		Author: f.RandomString(commenters),
		Avatar: avatarURL(index),
		Text:   f.RandomString(commentTexts),
		Likes:  f.Number(0, 9999),
		Posted: f.DateRange(now.Add(-uploadWindow), now),
	}
	if f.Number(1, 100) <= replyChance {
		c.Replies = f.Number(0, 49)
	}
	c.TimeAgo = relative(c.Posted, now)
	return c
}

func (g *Generator) channel(index int) Channel {
	f := g.faker(KindChannel, index)
	name := ChannelNames[index%len(ChannelNames)]
	if lap := index / len(ChannelNames); lap > 0 {
		name = fmt.Sprintf("%s #%d", name, lap+1)
	}
	return Channel{
		ID:            EntityID(KindChannel, index),
		Name:          name,
		Avatar:        avatarURL(index),
		Verified:      f.Bool(),
		HasNewContent: f.Number(1, 100) <= newContentRate,
	}
}

// relative is never handed a future instant; Posted is drawn up to now.
func relative(past, now time.Time) string {
	s, err := format.RelativeTime(past, now)
	if err != nil {
		return ""
	}
	return s
}

func avatarURL(index int) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", index%avatarPool+1)
}
