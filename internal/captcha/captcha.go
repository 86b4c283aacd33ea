// Package captcha verifies contact-form challenge tokens against the Google
// reCAPTCHA siteverify service.
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prabhatmusic/riyaaz/internal/config"
)

const (
	verifyURL = "https://www.google.com/recaptcha/api/siteverify"

	// verifyTimeout bounds the external call; a timeout counts as a failed
	// verification.
	verifyTimeout = 10 * time.Second
)

// ErrVerificationFailed is returned when the service does not confirm the
// token, the call fails, or verification is unconfigured in production.
var ErrVerificationFailed = errors.New("captcha verification failed")

// Verifier confirms that a client-supplied challenge token is
// human-originated.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// Google is a [Verifier] backed by the reCAPTCHA siteverify endpoint.
//
// When no secret is configured the verifier fails closed in production and
// bypasses verification with a warning otherwise.
type Google struct {
	secret     string
	production bool
	logger     *slog.Logger
	client     *http.Client
	endpoint   string
}

// NewGoogle creates a verifier from the process configuration.
func NewGoogle(cfg config.Config, logger *slog.Logger) *Google {
	return &Google{
		secret:     cfg.RecaptchaSecret,
		production: cfg.Production(),
		logger:     logger,
		client:     &http.Client{Timeout: verifyTimeout},
		endpoint:   verifyURL,
	}
}

// Verify satisfies the [Verifier] interface.
func (g *Google) Verify(ctx context.Context, token string) error {
	if g.secret == "" {
		if !g.production {
			g.logger.WarnContext(ctx, "RECAPTCHA_SECRET_KEY is not configured, bypassing verification")
			return nil
		}
		g.logger.ErrorContext(ctx, "RECAPTCHA_SECRET_KEY is not configured")
		return ErrVerificationFailed
	}

	form := url.Values{
		"secret":   {g.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ErrVerificationFailed
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WarnContext(ctx, "captcha verification request failed", slog.Any("error", err))
		return ErrVerificationFailed
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		g.logger.WarnContext(ctx, "captcha verification response malformed", slog.Any("error", err))
		return ErrVerificationFailed
	}
	if !result.Success {
		return ErrVerificationFailed
	}
	return nil
}
