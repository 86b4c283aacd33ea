// Package storage provides the state management for site content, contact
// messages, and admin accounts.
package storage

import (
	"context"
)

const (
	// ErrNotFound is returned when a record cannot be found.
	ErrNotFound Error = "not found"
	// ErrAlreadyExists is returned if a unique record already exists.
	ErrAlreadyExists Error = "already exists"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Admins are the methods on a storage implementation responsible for
// accessing and creating admin accounts. Admin accounts are never deleted.
type Admins interface {
	// GetAdminByUsername returns the admin with the given username. An
	// [ErrNotFound] is returned if the username does not exist. Matching is
	// exact and case-sensitive.
	GetAdminByUsername(ctx context.Context, username string) (Admin, error)
	// CreateAdmin creates a new admin account with the given username and
	// password hash. An [ErrAlreadyExists] is returned if the username is
	// already taken.
	CreateAdmin(ctx context.Context, username, passwordHash string) (Admin, error)
}

// Contacts are the methods responsible for contact messages. Messages are
// immutable after creation.
type Contacts interface {
	// CreateContact stores a new contact message.
	CreateContact(ctx context.Context, in ContactInput) (Contact, error)
	// ListContacts returns every contact message, newest first.
	ListContacts(ctx context.Context) ([]Contact, error)
}

// Tracks are the methods responsible for music tracks.
type Tracks interface {
	CreateTrack(ctx context.Context, in TrackInput) (MusicTrack, error)
	// UpdateTrack merges the non-nil fields of in over the existing record
	// and refreshes its update time. An [ErrNotFound] is returned if the id
	// is unknown; no other record is touched.
	UpdateTrack(ctx context.Context, id string, in TrackInput) (MusicTrack, error)
	// DeleteTrack reports whether a record existed and was removed. Deleting
	// an unknown id returns false, not an error.
	DeleteTrack(ctx context.Context, id string) (bool, error)
	// ListPublicTracks returns active tracks ordered by sort order, ties
	// preserving creation order.
	ListPublicTracks(ctx context.Context) ([]MusicTrack, error)
	// ListTracks returns every track, including inactive ones, in creation
	// order.
	ListTracks(ctx context.Context) ([]MusicTrack, error)
}

// Videos are the methods responsible for YouTube videos.
type Videos interface {
	CreateVideo(ctx context.Context, in VideoInput) (YoutubeVideo, error)
	UpdateVideo(ctx context.Context, id string, in VideoInput) (YoutubeVideo, error)
	DeleteVideo(ctx context.Context, id string) (bool, error)
	ListPublicVideos(ctx context.Context) ([]YoutubeVideo, error)
	ListVideos(ctx context.Context) ([]YoutubeVideo, error)
}

// Images are the methods responsible for gallery images.
type Images interface {
	CreateImage(ctx context.Context, in ImageInput) (GalleryImage, error)
	UpdateImage(ctx context.Context, id string, in ImageInput) (GalleryImage, error)
	DeleteImage(ctx context.Context, id string) (bool, error)
	ListPublicImages(ctx context.Context) ([]GalleryImage, error)
	ListImages(ctx context.Context) ([]GalleryImage, error)
}

// Events are the methods responsible for events.
type Events interface {
	CreateEvent(ctx context.Context, in EventInput) (Event, error)
	UpdateEvent(ctx context.Context, id string, in EventInput) (Event, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)
	// ListPublicEvents returns active events in ascending event-date order,
	// regardless of insertion order.
	ListPublicEvents(ctx context.Context) ([]Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
}

// Store is the combination interface over every collection the backend owns.
type Store interface {
	Admins
	Contacts
	Tracks
	Videos
	Images
	Events
}
