package entity

import (
	"time"

	"github.com/google/uuid"
)

// University represents a tenant campus on the platform.
type University struct {
	// ID is the unique identifier of the university.
	ID uuid.UUID `json:"id"`
	// Name is the display name of the university.
	Name string `json:"name"`
	// EmailDomain is the email domain students register with, e.g.
	// "stu.example.edu". Sign-ups are matched to a tenant through it.
	EmailDomain string `json:"email_domain"`
	// AutoApprovePosts skips moderator review for new item posts.
	AutoApprovePosts bool `json:"auto_approve_posts"`
	// NoticeBanner is an announcement shown to all members, empty when off.
	NoticeBanner string `json:"notice_banner,omitempty"`
	// CreatedAt is when the university was registered.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the university was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
