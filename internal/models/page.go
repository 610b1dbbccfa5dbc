// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PageStatus represents the publishing state of a CMS page.
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// Valid reports whether s is one of the known statuses.
func (s PageStatus) Valid() bool {
	return s == PageStatusDraft || s == PageStatusPublished
}

// Page is a CMS content page (about, privacy, terms...). Content holds
// Markdown or raw HTML.
type Page struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Status    PageStatus `json:"status"`
	Content   string     `json:"content,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsPublished returns true if the page is in published status.
func (p *Page) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// Link is a labelled URL shown in the footer.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// SocialLink is a footer link to a social profile.
type SocialLink struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	AriaLabel string `json:"aria_label"`
}

// FooterContent holds the three ordered footer link lists.
type FooterContent struct {
	Navigation []Link       `json:"navigation"`
	Legal      []Link       `json:"legal"`
	Social     []SocialLink `json:"social"`
}
