package storage

import "time"

// Default field values applied when a create input leaves them unset.
const (
	DefaultArtist        = "Prabhat Yadav"
	DefaultVideoCategory = "Music"
	DefaultImageCategory = "Performance"
)

// Admin is the privileged account able to mutate site content. The password
// hash never leaves the server.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Contact is a message submitted through the public contact form. Contacts
// are immutable after creation.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput is the storable part of a contact submission. The CAPTCHA
// token is verified and stripped before this reaches storage.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MusicTrack is a published song with streaming references.
type MusicTrack struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	Language    string     `json:"language"`
	SpotifyID   *string    `json:"spotifyId"`
	YoutubeID   *string    `json:"youtubeId"`
	Description *string    `json:"description"`
	Duration    *int       `json:"duration"`
	ReleaseDate *time.Time `json:"releaseDate"`
	IsActive    bool       `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TrackInput carries the writable fields of a music track. Nil fields are
// defaulted on create and left untouched on update.
type TrackInput struct {
	Title       *string    `json:"title"`
	Artist      *string    `json:"artist"`
	Language    *string    `json:"language"`
	SpotifyID   *string    `json:"spotifyId"`
	YoutubeID   *string    `json:"youtubeId"`
	Description *string    `json:"description"`
	Duration    *int       `json:"duration"`
	ReleaseDate *time.Time `json:"releaseDate"`
	IsActive    *bool      `json:"isActive"`
	SortOrder   *int       `json:"sortOrder"`
}

// YoutubeVideo is an embeddable YouTube video.
type YoutubeVideo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	YoutubeID   string    `json:"youtubeId"`
	Description *string   `json:"description"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VideoInput carries the writable fields of a YouTube video.
type VideoInput struct {
	Title       *string `json:"title"`
	YoutubeID   *string `json:"youtubeId"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}

// GalleryImage is a photo shown in the gallery.
type GalleryImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Alt       string    `json:"alt"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"isActive"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ImageInput carries the writable fields of a gallery image.
type ImageInput struct {
	Title     *string `json:"title"`
	ImageURL  *string `json:"imageUrl"`
	Alt       *string `json:"alt"`
	Category  *string `json:"category"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

// Event is a concert or appearance.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Venue       string    `json:"venue"`
	Address     string    `json:"address"`
	EventDate   time.Time `json:"eventDate"`
	TicketURL   *string   `json:"ticketUrl"`
	Price       *string   `json:"price"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventInput carries the writable fields of an event.
type EventInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Venue       *string    `json:"venue"`
	Address     *string    `json:"address"`
	EventDate   *time.Time `json:"eventDate"`
	TicketURL   *string    `json:"ticketUrl"`
	Price       *string    `json:"price"`
	IsActive    *bool      `json:"isActive"`
}
