// Package captcha provides captcha verification backends.
package captcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campustrace/config"
	domainerrors "campustrace/internal/domain/errors"
	"campustrace/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// turnstileVerifier implements CaptchaService against the Cloudflare
// Turnstile siteverify endpoint. The same wire format works for reCAPTCHA
// with a different verify URL.
type turnstileVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopVerifier accepts every token. Used when captcha is not configured.
type noopVerifier struct{}

func (noopVerifier) Verify(context.Context, string, string) error {
	return nil
}

// NewCaptchaService creates a CaptchaService based on configuration.
func NewCaptchaService(cfg *config.Config, logger *slog.Logger) service.CaptchaService {
	if cfg.Captcha == nil || cfg.Captcha.Secret == "" {
		logger.Info("Captcha not configured, verification disabled")

		return noopVerifier{}
	}

	verifyURL := cfg.Captcha.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}

	return &turnstileVerifier{
		secret:    cfg.Captcha.Secret,
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// verifyResponse is the siteverify response body.
type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a captcha token. remoteIP may be empty.
func (v *turnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return domainerrors.ErrCaptchaFailed.WrapMessage("missing captcha token")
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "captcha verify request failed")
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.Wrap(err, "failed to decode captcha verify response")
	}

	if !result.Success {
		v.logger.Warn("Captcha verification rejected", slog.Any("error_codes", result.ErrorCodes))

		return domainerrors.ErrCaptchaFailed.WrapMessage("captcha rejected")
	}

	return nil
}
