package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prabhatmusic/riyaaz/internal/captcha"
	"github.com/prabhatmusic/riyaaz/internal/sec"
	"github.com/prabhatmusic/riyaaz/internal/storage"
)

type handler struct {
	store    storage.Store
	tokens   *sec.Tokens
	verifier captcha.Verifier
}

func (h handler) register(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/contact", h.createContact)
	api.GET("/music-tracks", h.listPublicTracks)
	api.GET("/youtube-videos", h.listPublicVideos)
	api.GET("/gallery-images", h.listPublicImages)
	api.GET("/events", h.listPublicEvents)
	api.POST("/admin/login", h.login)

	// every admin route below passes through the token middleware; login
	// above intentionally does not
	admin := api.Group("/admin", sec.RequireAdmin(h.tokens))
	admin.GET("/contacts", h.listContacts)

	admin.GET("/music-tracks", h.listTracks)
	admin.POST("/music-tracks", h.createTrack)
	admin.PUT("/music-tracks/:id", h.updateTrack)
	admin.DELETE("/music-tracks/:id", h.deleteTrack)

	admin.GET("/youtube-videos", h.listVideos)
	admin.POST("/youtube-videos", h.createVideo)
	admin.PUT("/youtube-videos/:id", h.updateVideo)
	admin.DELETE("/youtube-videos/:id", h.deleteVideo)

	admin.GET("/gallery-images", h.listImages)
	admin.POST("/gallery-images", h.createImage)
	admin.PUT("/gallery-images/:id", h.updateImage)
	admin.DELETE("/gallery-images/:id", h.deleteImage)

	admin.GET("/events", h.listEvents)
	admin.POST("/events", h.createEvent)
	admin.PUT("/events/:id", h.updateEvent)
	admin.DELETE("/events/:id", h.deleteEvent)
}

type contactRequest struct {
	storage.ContactInput
	CaptchaToken string `json:"captchaToken"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// invalidData responds with 400 and field-level validation detail.
func invalidData(c echo.Context, message string, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"message": message,
		"errors":  fields,
	})
}

func deleted(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": message,
	})
}

func (h handler) createContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	if errs := validateContact(req); len(errs) > 0 {
		return invalidData(c, "Invalid form data", errs)
	}

	// the CAPTCHA call happens before, never inside, the store mutation
	if err := h.verifier.Verify(c.Request().Context(), req.CaptchaToken); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reCAPTCHA verification failed. Please try again.")
	}

	contact, err := h.store.CreateContact(c.Request().Context(), req.ContactInput)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message. Please try again.")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully!",
		"contact": contact,
	})
}

func (h handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid login data")
	}
	if errs := validateLogin(req); len(errs) > 0 {
		return invalidData(c, "Invalid login data", errs)
	}

	// unknown username and wrong password answer identically so usernames
	// cannot be enumerated
	admin, err := h.store.GetAdminByUsername(c.Request().Context(), req.Username)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}
	if !sec.VerifyPassword(req.Password, admin.PasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.tokens.Issue(admin)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"admin": map[string]string{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

func (h handler) listContacts(c echo.Context) error {
	contacts, err := h.store.ListContacts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch contacts")
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h handler) listPublicTracks(c echo.Context) error {
	tracks, err := h.store.ListPublicTracks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch music tracks")
	}
	return c.JSON(http.StatusOK, tracks)
}

func (h handler) listTracks(c echo.Context) error {
	tracks, err := h.store.ListTracks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch music tracks")
	}
	return c.JSON(http.StatusOK, tracks)
}

func (h handler) createTrack(c echo.Context) error {
	var in storage.TrackInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid track data")
	}
	if errs := validateTrack(in, false); len(errs) > 0 {
		return invalidData(c, "Invalid track data", errs)
	}
	track, err := h.store.CreateTrack(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create music track")
	}
	return c.JSON(http.StatusOK, track)
}

func (h handler) updateTrack(c echo.Context) error {
	var in storage.TrackInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid track data")
	}
	if errs := validateTrack(in, true); len(errs) > 0 {
		return invalidData(c, "Invalid track data", errs)
	}
	track, err := h.store.UpdateTrack(c.Request().Context(), c.Param("id"), in)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Music track not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update music track")
	}
	return c.JSON(http.StatusOK, track)
}

func (h handler) deleteTrack(c echo.Context) error {
	ok, err := h.store.DeleteTrack(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete music track")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Music track not found")
	}
	return deleted(c, "Music track deleted")
}

func (h handler) listPublicVideos(c echo.Context) error {
	videos, err := h.store.ListPublicVideos(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch YouTube videos")
	}
	return c.JSON(http.StatusOK, videos)
}

func (h handler) listVideos(c echo.Context) error {
	videos, err := h.store.ListVideos(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch YouTube videos")
	}
	return c.JSON(http.StatusOK, videos)
}

func (h handler) createVideo(c echo.Context) error {
	var in storage.VideoInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video data")
	}
	if errs := validateVideo(in, false); len(errs) > 0 {
		return invalidData(c, "Invalid video data", errs)
	}
	video, err := h.store.CreateVideo(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create YouTube video")
	}
	return c.JSON(http.StatusOK, video)
}

func (h handler) updateVideo(c echo.Context) error {
	var in storage.VideoInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video data")
	}
	if errs := validateVideo(in, true); len(errs) > 0 {
		return invalidData(c, "Invalid video data", errs)
	}
	video, err := h.store.UpdateVideo(c.Request().Context(), c.Param("id"), in)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "YouTube video not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update YouTube video")
	}
	return c.JSON(http.StatusOK, video)
}

func (h handler) deleteVideo(c echo.Context) error {
	ok, err := h.store.DeleteVideo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete YouTube video")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "YouTube video not found")
	}
	return deleted(c, "YouTube video deleted")
}

func (h handler) listPublicImages(c echo.Context) error {
	images, err := h.store.ListPublicImages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch gallery images")
	}
	return c.JSON(http.StatusOK, images)
}

func (h handler) listImages(c echo.Context) error {
	images, err := h.store.ListImages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch gallery images")
	}
	return c.JSON(http.StatusOK, images)
}

func (h handler) createImage(c echo.Context) error {
	var in storage.ImageInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image data")
	}
	if errs := validateImage(in, false); len(errs) > 0 {
		return invalidData(c, "Invalid image data", errs)
	}
	image, err := h.store.CreateImage(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create gallery image")
	}
	return c.JSON(http.StatusOK, image)
}

func (h handler) updateImage(c echo.Context) error {
	var in storage.ImageInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image data")
	}
	if errs := validateImage(in, true); len(errs) > 0 {
		return invalidData(c, "Invalid image data", errs)
	}
	image, err := h.store.UpdateImage(c.Request().Context(), c.Param("id"), in)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Gallery image not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update gallery image")
	}
	return c.JSON(http.StatusOK, image)
}

func (h handler) deleteImage(c echo.Context) error {
	ok, err := h.store.DeleteImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete gallery image")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Gallery image not found")
	}
	return deleted(c, "Gallery image deleted")
}

func (h handler) listPublicEvents(c echo.Context) error {
	events, err := h.store.ListPublicEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch events")
	}
	return c.JSON(http.StatusOK, events)
}

func (h handler) listEvents(c echo.Context) error {
	events, err := h.store.ListEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch events")
	}
	return c.JSON(http.StatusOK, events)
}

func (h handler) createEvent(c echo.Context) error {
	var in storage.EventInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event data")
	}
	if errs := validateEvent(in, false); len(errs) > 0 {
		return invalidData(c, "Invalid event data", errs)
	}
	event, err := h.store.CreateEvent(c.Request().Context(), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create event")
	}
	return c.JSON(http.StatusOK, event)
}

func (h handler) updateEvent(c echo.Context) error {
	var in storage.EventInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event data")
	}
	if errs := validateEvent(in, true); len(errs) > 0 {
		return invalidData(c, "Invalid event data", errs)
	}
	event, err := h.store.UpdateEvent(c.Request().Context(), c.Param("id"), in)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update event")
	}
	return c.JSON(http.StatusOK, event)
}

func (h handler) deleteEvent(c echo.Context) error {
	ok, err := h.store.DeleteEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete event")
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	return deleted(c, "Event deleted")
}
