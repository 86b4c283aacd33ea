package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMemoryAdmins(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	admin, err := store.CreateAdmin(t.Context(), "prabhat", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, "prabhat", admin.Username)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := store.CreateAdmin(t.Context(), "prabhat", "otherhash")
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		found, err := store.GetAdminByUsername(t.Context(), "prabhat")
		require.NoError(t, err)
		assert.Equal(t, admin.ID, found.ID)

		_, err = store.GetAdminByUsername(t.Context(), "Prabhat")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryTracks(t *testing.T) {
	t.Parallel()

	t.Run("create fills defaults", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		track, err := store.CreateTrack(t.Context(), TrackInput{
			Title:    ptr("Saiyaan"),
			Language: ptr("Hindi"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, track.ID)
		assert.Equal(t, DefaultArtist, track.Artist)
		assert.True(t, track.IsActive)
		assert.Zero(t, track.SortOrder)
		assert.False(t, track.UpdatedAt.Before(track.CreatedAt))
	})

	t.Run("update merges provided fields only", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		track, err := store.CreateTrack(t.Context(), TrackInput{
			Title:     ptr("Saiyaan"),
			Language:  ptr("Hindi"),
			SpotifyID: ptr("5KawL"),
		})
		require.NoError(t, err)

		updated, err := store.UpdateTrack(t.Context(), track.ID, TrackInput{
			Title: ptr("Saiyaan (Remix)"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Saiyaan (Remix)", updated.Title)
		assert.Equal(t, "Hindi", updated.Language)
		require.NotNil(t, updated.SpotifyID)
		assert.Equal(t, "5KawL", *updated.SpotifyID)
		assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
	})

	t.Run("update unknown id mutates nothing", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		track, err := store.CreateTrack(t.Context(), TrackInput{Title: ptr("Keep")})
		require.NoError(t, err)

		_, err = store.UpdateTrack(t.Context(), "missing", TrackInput{Title: ptr("Nope")})
		require.ErrorIs(t, err, ErrNotFound)

		all, err := store.ListTracks(t.Context())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, track.Title, all[0].Title)
	})

	t.Run("delete is an idempotent observation", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		track, err := store.CreateTrack(t.Context(), TrackInput{Title: ptr("Gone")})
		require.NoError(t, err)

		deleted, err := store.DeleteTrack(t.Context(), track.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteTrack(t.Context(), track.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("public listing hides inactive tracks", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		_, err := store.CreateTrack(t.Context(), TrackInput{Title: ptr("Visible")})
		require.NoError(t, err)
		hidden, err := store.CreateTrack(t.Context(), TrackInput{
			Title:    ptr("Hidden"),
			IsActive: ptr(false),
		})
		require.NoError(t, err)

		public, err := store.ListPublicTracks(t.Context())
		require.NoError(t, err)
		require.Len(t, public, 1)
		assert.Equal(t, "Visible", public[0].Title)

		all, err := store.ListTracks(t.Context())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, hidden.ID, all[1].ID)
	})

	t.Run("equal sort order preserves creation order", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		for _, title := range []string{"first", "second", "third"} {
			_, err := store.CreateTrack(t.Context(), TrackInput{Title: ptr(title)})
			require.NoError(t, err)
		}

		public, err := store.ListPublicTracks(t.Context())
		require.NoError(t, err)
		require.Len(t, public, 3)
		assert.Equal(t, "first", public[0].Title)
		assert.Equal(t, "second", public[1].Title)
		assert.Equal(t, "third", public[2].Title)
	})

	t.Run("sort order ranks before creation order", func(t *testing.T) {
		t.Parallel()
		store := NewMemory()

		_, err := store.CreateTrack(t.Context(), TrackInput{Title: ptr("later"), SortOrder: ptr(2)})
		require.NoError(t, err)
		_, err = store.CreateTrack(t.Context(), TrackInput{Title: ptr("sooner"), SortOrder: ptr(1)})
		require.NoError(t, err)

		public, err := store.ListPublicTracks(t.Context())
		require.NoError(t, err)
		require.Len(t, public, 2)
		assert.Equal(t, "sooner", public[0].Title)
		assert.Equal(t, "later", public[1].Title)
	})
}

func TestMemoryEvents(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	dates := []time.Time{
		time.Date(2025, time.March, 1, 20, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 15, 20, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 10, 20, 0, 0, 0, time.UTC),
	}
	for i, date := range dates {
		_, err := store.CreateEvent(t.Context(), EventInput{
			Title:     ptr([]string{"march", "january", "february"}[i]),
			Venue:     ptr("Town Hall"),
			Address:   ptr("Main St 1"),
			EventDate: ptr(date),
		})
		require.NoError(t, err)
	}

	public, err := store.ListPublicEvents(t.Context())
	require.NoError(t, err)
	require.Len(t, public, 3)
	assert.Equal(t, "january", public[0].Title)
	assert.Equal(t, "february", public[1].Title)
	assert.Equal(t, "march", public[2].Title)
}

func TestMemoryContacts(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	// fixed clock so the newest-first ordering is deterministic
	current := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}

	for _, name := range []string{"oldest", "middle", "newest"} {
		_, err := store.CreateContact(t.Context(), ContactInput{
			Name:    name,
			Email:   name + "@example.com",
			Message: "hello",
		})
		require.NoError(t, err)
	}

	contacts, err := store.ListContacts(t.Context())
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "newest", contacts[0].Name)
	assert.Equal(t, "middle", contacts[1].Name)
	assert.Equal(t, "oldest", contacts[2].Name)
}

func TestMemoryImagesAndVideos(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	video, err := store.CreateVideo(t.Context(), VideoInput{
		Title:     ptr("Live Set"),
		YoutubeID: ptr("dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultVideoCategory, video.Category)

	image, err := store.CreateImage(t.Context(), ImageInput{
		Title:    ptr("On Stage"),
		ImageURL: ptr("https://cdn.example.com/stage.jpg"),
		Alt:      ptr("artist on stage"),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultImageCategory, image.Category)

	updated, err := store.UpdateImage(t.Context(), image.ID, ImageInput{Category: ptr("Studio")})
	require.NoError(t, err)
	assert.Equal(t, "Studio", updated.Category)

	_, err = store.UpdateVideo(t.Context(), "missing", VideoInput{Title: ptr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}
