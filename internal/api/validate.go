package api

import (
	"net/mail"
	"strings"

	"github.com/prabhatmusic/riyaaz/internal/storage"
)

// require records an error for a missing or blank field. On partial updates
// a nil field means "leave untouched" and passes; a provided-but-blank field
// never does.
func require(errs map[string]string, field string, value *string, partial bool, msg string) {
	if value == nil {
		if !partial {
			errs[field] = msg
		}
		return
	}
	if strings.TrimSpace(*value) == "" {
		errs[field] = msg
	}
}

func validateContact(in contactRequest) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(in.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

func validateLogin(in loginRequest) map[string]string {
	errs := make(map[string]string)
	if in.Username == "" {
		errs["username"] = "Username is required"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

func validateTrack(in storage.TrackInput, partial bool) map[string]string {
	errs := make(map[string]string)
	require(errs, "title", in.Title, partial, "Title is required")
	require(errs, "language", in.Language, partial, "Language is required")
	require(errs, "spotifyId", in.SpotifyID, partial, "Spotify ID is required")
	return errs
}

func validateVideo(in storage.VideoInput, partial bool) map[string]string {
	errs := make(map[string]string)
	require(errs, "title", in.Title, partial, "Title is required")
	require(errs, "youtubeId", in.YoutubeID, partial, "YouTube ID is required")
	return errs
}

func validateImage(in storage.ImageInput, partial bool) map[string]string {
	errs := make(map[string]string)
	require(errs, "title", in.Title, partial, "Title is required")
	require(errs, "imageUrl", in.ImageURL, partial, "Image URL is required")
	require(errs, "alt", in.Alt, partial, "Alt text is required")
	return errs
}

func validateEvent(in storage.EventInput, partial bool) map[string]string {
	errs := make(map[string]string)
	require(errs, "title", in.Title, partial, "Title is required")
	require(errs, "venue", in.Venue, partial, "Venue is required")
	require(errs, "address", in.Address, partial, "Address is required")
	if (in.EventDate == nil && !partial) || (in.EventDate != nil && in.EventDate.IsZero()) {
		errs["eventDate"] = "Event date is required"
	}
	return errs
}
