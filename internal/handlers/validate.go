// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"emojiverse/internal/models"
)

// Validation limits for admin payloads.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 2_000
	maxGlyphLen       = 32
	maxRelated        = 50
	maxFilesPerBucket = 50
	maxPageTitleLen   = 300
	maxSlugLen        = 300
	maxPageBodyLen    = 100_000
	maxScriptLen      = 20_000
	maxAdsTxtLen      = 50_000
	maxTimerSeconds   = 60
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateText checks a required or optional Text field.
func validateText(field string, t models.Text, required bool, maxLen int) string {
	v := strings.TrimSpace(t.Value)
	if required && v == "" {
		return field + " is required."
	}
	if t.IsKey() && strings.ContainsAny(v, " \t\n") {
		return field + " translation key must not contain whitespace."
	}
	if utf8.RuneCountInString(v) > maxLen {
		return fmt.Sprintf("%s is too long (max %d characters).", field, maxLen)
	}
	return ""
}

// validateEmoji checks an entry payload and returns the first error found.
// categoryExists is consulted for the category id.
func validateEmoji(e models.Emoji, categoryExists func(string) bool) string {
	if msg := validateText("Title", e.Title, true, maxTitleLen); msg != "" {
		return msg
	}
	if msg := validateText("Description", e.Description, false, maxDescriptionLen); msg != "" {
		return msg
	}
	if utf8.RuneCountInString(e.Emoji) > maxGlyphLen {
		return "Emoji glyph is too long."
	}
	if e.Category == "" || models.IsAll(e.Category) {
		return "Category is required."
	}
	if !categoryExists(e.Category) {
		return fmt.Sprintf("Category %q does not exist.", e.Category)
	}
	if e.IsFilePost() && len(e.Formats) == 0 {
		return "A file post needs at least one file."
	}
	if len(e.Related) > maxRelated {
		return fmt.Sprintf("Too many related entries (max %d).", maxRelated)
	}
	return validateFormats(e.Formats)
}

// validateFormats checks bucket tags and the files inside them.
func validateFormats(b models.FormatBucket) string {
	for tag, files := range b {
		if !knownFormat(tag) {
			return fmt.Sprintf("Unknown format %q.", tag)
		}
		if len(files) > maxFilesPerBucket {
			return fmt.Sprintf("Too many %s files (max %d).", tag, maxFilesPerBucket)
		}
		for _, f := range files {
			if strings.TrimSpace(f.Name) == "" {
				return fmt.Sprintf("A %s file is missing its name.", tag)
			}
			if msg := validateURL(f.URL); msg != "" {
				return fmt.Sprintf("File %q: %s", f.Name, msg)
			}
		}
	}
	return ""
}

func knownFormat(tag models.FormatTag) bool {
	for _, t := range models.FormatTags {
		if t == tag {
			return true
		}
	}
	return false
}

// validateURL accepts site-relative paths and http(s) URLs.
func validateURL(raw string) string {
	if raw == "" {
		return "URL is required."
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "URL must be a path or an http(s) URL."
	}
	return ""
}

// validateCategory checks a category payload.
func validateCategory(c models.Category) string {
	if strings.TrimSpace(c.ID) == "" && strings.TrimSpace(c.Name.Value) == "" {
		return "Name or id is required."
	}
	return validateText("Name", c.Name, true, maxTitleLen)
}

// validatePage checks a CMS page payload.
func validatePage(p models.Page) string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxPageTitleLen {
		return fmt.Sprintf("Title is too long (max %d characters).", maxPageTitleLen)
	}
	if utf8.RuneCountInString(p.Slug) > maxSlugLen {
		return fmt.Sprintf("Slug is too long (max %d characters).", maxSlugLen)
	}
	if utf8.RuneCountInString(p.Content) > maxPageBodyLen {
		return "Content is too long (max 100,000 characters)."
	}
	if p.Status != "" && !p.Status.Valid() {
		return fmt.Sprintf("Unknown status %q.", p.Status)
	}
	return ""
}

// validateSettings checks the site settings payload.
func validateSettings(s models.SiteSettings) string {
	if strings.TrimSpace(s.SiteName) == "" {
		return "Site name is required."
	}
	for name, c := range map[string]string{"Primary color": s.PrimaryColor, "Accent color": s.AccentColor} {
		if c != "" && !hexColor.MatchString(c) {
			return name + " must be a hex color like #6366f1."
		}
	}
	if s.DownloadTimerSeconds < 0 || s.DownloadTimerSeconds > maxTimerSeconds {
		return fmt.Sprintf("Download timer must be between 0 and %d seconds.", maxTimerSeconds)
	}
	if utf8.RuneCountInString(s.HeaderScript) > maxScriptLen || utf8.RuneCountInString(s.FooterScript) > maxScriptLen {
		return "Scripts are too long."
	}
	if len(s.AdsTxt) > maxAdsTxtLen {
		return "ads.txt is too long."
	}
	seen := make(map[string]bool)
	for _, ad := range s.Ads {
		if strings.TrimSpace(ad.Slot) == "" {
			return "Ad slot name is required."
		}
		if seen[ad.Slot] {
			return fmt.Sprintf("Duplicate ad slot %q.", ad.Slot)
		}
		seen[ad.Slot] = true
	}
	return ""
}

// validateFooter checks the footer links.
func validateFooter(f models.FooterContent) string {
	check := func(label, u string) string {
		if strings.TrimSpace(label) == "" {
			return "Every footer link needs a label."
		}
		if msg := validateURL(u); msg != "" {
			return fmt.Sprintf("Footer link %q: %s", label, msg)
		}
		return ""
	}
	for _, l := range append(append([]models.Link(nil), f.Navigation...), f.Legal...) {
		if msg := check(l.Label, l.URL); msg != "" {
			return msg
		}
	}
	for _, l := range f.Social {
		if msg := check(l.Label, l.URL); msg != "" {
			return msg
		}
	}
	return ""
}
