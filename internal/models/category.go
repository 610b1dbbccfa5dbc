// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// AllCategories is the reserved category id meaning "no category filter".
const AllCategories = "all"

// Category groups catalog entries. Icon is either a well-known icon name
// or raw SVG markup supplied through the admin.
type Category struct {
	ID   string `json:"id"`
	Name Text   `json:"name"`
	Icon string `json:"icon"`

	// Virtual field populated by the handlers.
	PostCount int `json:"post_count,omitempty"`
}

// IsAll reports whether id is the "no filter" sentinel (or empty).
func IsAll(id string) bool {
	return id == "" || id == AllCategories
}
