// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// AdPlacement is a single ad slot with the markup injected into it.
type AdPlacement struct {
	Slot    string `json:"slot"`
	Enabled bool   `json:"enabled"`
	Code    string `json:"code"`
}

// SiteSettings is the process-wide branding and monetisation record.
type SiteSettings struct {
	SiteName             string        `json:"site_name"`
	LogoURL              string        `json:"logo_url"`
	FaviconURL           string        `json:"favicon_url"`
	PrimaryColor         string        `json:"primary_color"`
	AccentColor          string        `json:"accent_color"`
	DownloadTimerSeconds int           `json:"download_timer_seconds"`
	Ads                  []AdPlacement `json:"ads"`
	HeaderScript         string        `json:"header_script"`
	FooterScript         string        `json:"footer_script"`
	AdsTxt               string        `json:"ads_txt"`
}

// Ad returns the placement for slot if it exists and is enabled.
func (s *SiteSettings) Ad(slot string) (AdPlacement, bool) {
	for _, a := range s.Ads {
		if a.Slot == slot && a.Enabled {
			return a, true
		}
	}
	return AdPlacement{}, false
}

// Public returns a copy without the script injection and ads.txt fields,
// which are served through their own surfaces.
func (s SiteSettings) Public() SiteSettings {
	out := s
	out.HeaderScript = ""
	out.FooterScript = ""
	out.AdsTxt = ""
	out.Ads = nil
	for _, a := range s.Ads {
		if a.Enabled {
			out.Ads = append(out.Ads, a)
		}
	}
	return out
}
