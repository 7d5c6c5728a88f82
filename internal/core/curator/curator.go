// Package curator manages the people who recommend books.
package curator

import (
	"strings"
	"time"

	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/validate"
	"github.com/taibuivan/backlist/pkg/pointer"
	"github.com/taibuivan/backlist/pkg/slug"
)

// Curator is a recommending person. Only visible curators are listed publicly.
type Curator struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         *string    `json:"slug"`
	Bio          *string    `json:"bio"`
	AvatarURL    *string    `json:"avatar_url"`
	Focus        *string    `json:"focus"`
	WebsiteURL   *string    `json:"website_url"`
	InstagramURL *string    `json:"instagram_url"`
	PodcastURL   *string    `json:"podcast_url"`
	Visible      bool       `json:"visible"`
	DisplayOrder *int       `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at"`
}

func (c *Curator) EntityID() string { return c.ID }
func (c *Curator) FlagValue() bool  { return c.Visible }

// Payload is the editable field set of a curator.
type Payload struct {
	Name         string  `json:"name" yaml:"name"`
	Slug         *string `json:"slug" yaml:"slug"`
	Bio          *string `json:"bio" yaml:"bio"`
	AvatarURL    *string `json:"avatar_url" yaml:"avatar_url"`
	Focus        *string `json:"focus" yaml:"focus"`
	WebsiteURL   *string `json:"website_url" yaml:"website_url"`
	InstagramURL *string `json:"instagram_url" yaml:"instagram_url"`
	PodcastURL   *string `json:"podcast_url" yaml:"podcast_url"`
	Visible      *bool   `json:"visible" yaml:"visible"`
}

func (p Payload) RequiredValue() string { return p.Name }
func (p Payload) FlagInput() *bool      { return p.Visible }

func (p Payload) Normalize() Payload {
	p.Name = strings.TrimSpace(p.Name)
	p.Slug = slug.Optional(p.Slug)
	p.Bio = pointer.NonBlank(p.Bio)
	p.AvatarURL = pointer.NonBlank(p.AvatarURL)
	p.Focus = pointer.NonBlank(p.Focus)
	p.WebsiteURL = pointer.NonBlank(p.WebsiteURL)
	p.InstagramURL = pointer.NonBlank(p.InstagramURL)
	p.PodcastURL = pointer.NonBlank(p.PodcastURL)
	return p
}

func (p Payload) Validate(validator *validate.Validator) {
	validator.
		OptionalMaxLen("slug", p.Slug, constants.MaxShortText).
		OptionalMaxLen("bio", p.Bio, constants.MaxLongText).
		OptionalMaxLen("avatar_url", p.AvatarURL, constants.MaxLinkText).
		OptionalMaxLen("focus", p.Focus, constants.MaxShortText).
		OptionalMaxLen("website_url", p.WebsiteURL, constants.MaxLinkText).
		OptionalMaxLen("instagram_url", p.InstagramURL, constants.MaxLinkText).
		OptionalMaxLen("podcast_url", p.PodcastURL, constants.MaxLinkText)
}
