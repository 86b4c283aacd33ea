package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// collection is an id-keyed set of records that remembers insertion order,
// so that listings with equal sort keys stay reproducible.
type collection[T any] struct {
	items map[string]T
	seq   map[string]uint64
	next  uint64
}

func newCollection[T any]() collection[T] {
	return collection[T]{
		items: make(map[string]T),
		seq:   make(map[string]uint64),
	}
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.seq[id] = c.next
		c.next++
	}
	c.items[id] = v
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	delete(c.seq, id)
	return true
}

// values returns every record in insertion order.
func (c *collection[T]) values() []T {
	ids := make([]string, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return c.seq[ids[i]] < c.seq[ids[j]] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}

// Memory is a [Store] backed by in-process maps. It is constructed once per
// process (or per test) and shared by reference; a mutex keeps each operation
// atomic with respect to concurrent request handlers. Expensive external work
// such as password hashing or CAPTCHA verification must happen before calling
// into it.
type Memory struct {
	mu       sync.RWMutex
	admins   collection[Admin]
	contacts collection[Contact]
	tracks   collection[MusicTrack]
	videos   collection[YoutubeVideo]
	images   collection[GalleryImage]
	events   collection[Event]

	now func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		admins:   newCollection[Admin](),
		contacts: newCollection[Contact](),
		tracks:   newCollection[MusicTrack](),
		videos:   newCollection[YoutubeVideo](),
		images:   newCollection[GalleryImage](),
		events:   newCollection[Event](),
		now:      time.Now,
	}
}

// GetAdminByUsername satisfies the [Admins] interface.
func (m *Memory) GetAdminByUsername(_ context.Context, username string) (Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, admin := range m.admins.items {
		if admin.Username == username {
			return admin, nil
		}
	}
	return Admin{}, ErrNotFound
}

// CreateAdmin satisfies the [Admins] interface.
func (m *Memory) CreateAdmin(_ context.Context, username, passwordHash string) (Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, admin := range m.admins.items {
		if admin.Username == username {
			return Admin{}, ErrAlreadyExists
		}
	}
	admin := Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    m.now(),
	}
	m.admins.put(admin.ID, admin)
	return admin, nil
}

// CreateContact satisfies the [Contacts] interface.
func (m *Memory) CreateContact(_ context.Context, in ContactInput) (Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	contact := Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: m.now(),
	}
	m.contacts.put(contact.ID, contact)
	return contact, nil
}

// ListContacts satisfies the [Contacts] interface.
func (m *Memory) ListContacts(_ context.Context) ([]Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contacts := m.contacts.values()
	// newest first; reversing before the stable sort keeps later insertions
	// ahead when timestamps collide
	for i, j := 0, len(contacts)-1; i < j; i, j = i+1, j-1 {
		contacts[i], contacts[j] = contacts[j], contacts[i]
	}
	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})
	return contacts, nil
}

// CreateTrack satisfies the [Tracks] interface.
func (m *Memory) CreateTrack(_ context.Context, in TrackInput) (MusicTrack, error) {
	now := m.now()
	track := MusicTrack{
		ID:        uuid.NewString(),
		Artist:    DefaultArtist,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyTrack(&track, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tracks.put(track.ID, track)
	return track, nil
}

// UpdateTrack satisfies the [Tracks] interface.
func (m *Memory) UpdateTrack(_ context.Context, id string, in TrackInput) (MusicTrack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	track, ok := m.tracks.get(id)
	if !ok {
		return MusicTrack{}, ErrNotFound
	}
	applyTrack(&track, in)
	track.UpdatedAt = m.now()
	m.tracks.put(id, track)
	return track, nil
}

// DeleteTrack satisfies the [Tracks] interface.
func (m *Memory) DeleteTrack(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracks.delete(id), nil
}

// ListPublicTracks satisfies the [Tracks] interface.
func (m *Memory) ListPublicTracks(_ context.Context) ([]MusicTrack, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tracks := activeOnly(m.tracks.values(), func(t MusicTrack) bool { return t.IsActive })
	sort.SliceStable(tracks, func(i, j int) bool { return tracks[i].SortOrder < tracks[j].SortOrder })
	return tracks, nil
}

// ListTracks satisfies the [Tracks] interface.
func (m *Memory) ListTracks(_ context.Context) ([]MusicTrack, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tracks.values(), nil
}

// CreateVideo satisfies the [Videos] interface.
func (m *Memory) CreateVideo(_ context.Context, in VideoInput) (YoutubeVideo, error) {
	now := m.now()
	video := YoutubeVideo{
		ID:        uuid.NewString(),
		Category:  DefaultVideoCategory,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyVideo(&video, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos.put(video.ID, video)
	return video, nil
}

// UpdateVideo satisfies the [Videos] interface.
func (m *Memory) UpdateVideo(_ context.Context, id string, in VideoInput) (YoutubeVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	video, ok := m.videos.get(id)
	if !ok {
		return YoutubeVideo{}, ErrNotFound
	}
	applyVideo(&video, in)
	video.UpdatedAt = m.now()
	m.videos.put(id, video)
	return video, nil
}

// DeleteVideo satisfies the [Videos] interface.
func (m *Memory) DeleteVideo(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.videos.delete(id), nil
}

// ListPublicVideos satisfies the [Videos] interface.
func (m *Memory) ListPublicVideos(_ context.Context) ([]YoutubeVideo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	videos := activeOnly(m.videos.values(), func(v YoutubeVideo) bool { return v.IsActive })
	sort.SliceStable(videos, func(i, j int) bool { return videos[i].SortOrder < videos[j].SortOrder })
	return videos, nil
}

// ListVideos satisfies the [Videos] interface.
func (m *Memory) ListVideos(_ context.Context) ([]YoutubeVideo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.videos.values(), nil
}

// CreateImage satisfies the [Images] interface.
func (m *Memory) CreateImage(_ context.Context, in ImageInput) (GalleryImage, error) {
	now := m.now()
	image := GalleryImage{
		ID:        uuid.NewString(),
		Category:  DefaultImageCategory,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyImage(&image, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.images.put(image.ID, image)
	return image, nil
}

// UpdateImage satisfies the [Images] interface.
func (m *Memory) UpdateImage(_ context.Context, id string, in ImageInput) (GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	image, ok := m.images.get(id)
	if !ok {
		return GalleryImage{}, ErrNotFound
	}
	applyImage(&image, in)
	image.UpdatedAt = m.now()
	m.images.put(id, image)
	return image, nil
}

// DeleteImage satisfies the [Images] interface.
func (m *Memory) DeleteImage(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.images.delete(id), nil
}

// ListPublicImages satisfies the [Images] interface.
func (m *Memory) ListPublicImages(_ context.Context) ([]GalleryImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	images := activeOnly(m.images.values(), func(i GalleryImage) bool { return i.IsActive })
	sort.SliceStable(images, func(i, j int) bool { return images[i].SortOrder < images[j].SortOrder })
	return images, nil
}

// ListImages satisfies the [Images] interface.
func (m *Memory) ListImages(_ context.Context) ([]GalleryImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.images.values(), nil
}

// CreateEvent satisfies the [Events] interface.
func (m *Memory) CreateEvent(_ context.Context, in EventInput) (Event, error) {
	now := m.now()
	event := Event{
		ID:        uuid.NewString(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyEvent(&event, in)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events.put(event.ID, event)
	return event, nil
}

// UpdateEvent satisfies the [Events] interface.
func (m *Memory) UpdateEvent(_ context.Context, id string, in EventInput) (Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events.get(id)
	if !ok {
		return Event{}, ErrNotFound
	}
	applyEvent(&event, in)
	event.UpdatedAt = m.now()
	m.events.put(id, event)
	return event, nil
}

// DeleteEvent satisfies the [Events] interface.
func (m *Memory) DeleteEvent(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events.delete(id), nil
}

// ListPublicEvents satisfies the [Events] interface.
func (m *Memory) ListPublicEvents(_ context.Context) ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	events := activeOnly(m.events.values(), func(e Event) bool { return e.IsActive })
	sort.SliceStable(events, func(i, j int) bool { return events[i].EventDate.Before(events[j].EventDate) })
	return events, nil
}

// ListEvents satisfies the [Events] interface.
func (m *Memory) ListEvents(_ context.Context) ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.events.values(), nil
}

func activeOnly[T any](in []T, active func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if active(v) {
			out = append(out, v)
		}
	}
	return out
}

func applyTrack(track *MusicTrack, in TrackInput) {
	if in.Title != nil {
		track.Title = *in.Title
	}
	if in.Artist != nil {
		track.Artist = *in.Artist
	}
	if in.Language != nil {
		track.Language = *in.Language
	}
	if in.SpotifyID != nil {
		track.SpotifyID = in.SpotifyID
	}
	if in.YoutubeID != nil {
		track.YoutubeID = in.YoutubeID
	}
	if in.Description != nil {
		track.Description = in.Description
	}
	if in.Duration != nil {
		track.Duration = in.Duration
	}
	if in.ReleaseDate != nil {
		track.ReleaseDate = in.ReleaseDate
	}
	if in.IsActive != nil {
		track.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		track.SortOrder = *in.SortOrder
	}
}

func applyVideo(video *YoutubeVideo, in VideoInput) {
	if in.Title != nil {
		video.Title = *in.Title
	}
	if in.YoutubeID != nil {
		video.YoutubeID = *in.YoutubeID
	}
	if in.Description != nil {
		video.Description = in.Description
	}
	if in.Thumbnail != nil {
		video.Thumbnail = in.Thumbnail
	}
	if in.Category != nil {
		video.Category = *in.Category
	}
	if in.IsActive != nil {
		video.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		video.SortOrder = *in.SortOrder
	}
}

func applyImage(image *GalleryImage, in ImageInput) {
	if in.Title != nil {
		image.Title = *in.Title
	}
	if in.ImageURL != nil {
		image.ImageURL = *in.ImageURL
	}
	if in.Alt != nil {
		image.Alt = *in.Alt
	}
	if in.Category != nil {
		image.Category = *in.Category
	}
	if in.IsActive != nil {
		image.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		image.SortOrder = *in.SortOrder
	}
}

func applyEvent(event *Event, in EventInput) {
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = in.Description
	}
	if in.Venue != nil {
		event.Venue = *in.Venue
	}
	if in.Address != nil {
		event.Address = *in.Address
	}
	if in.EventDate != nil {
		event.EventDate = *in.EventDate
	}
	if in.TicketURL != nil {
		event.TicketURL = in.TicketURL
	}
	if in.Price != nil {
		event.Price = in.Price
	}
	if in.IsActive != nil {
		event.IsActive = *in.IsActive
	}
}

var _ Store = (*Memory)(nil)
