package service

import "context"

// CaptchaService defines the interface for verifying captcha challenge tokens
// submitted with abuse-prone requests such as sign-up.
type CaptchaService interface {
	// Verify checks a captcha token. remoteIP may be empty.
	Verify(ctx context.Context, token, remoteIP string) error
}
