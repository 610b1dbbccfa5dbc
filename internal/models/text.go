// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the catalog entities shared by the stores, the
// search engine and the HTTP handlers.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TextKind tells whether a Text holds a literal string or a translation key.
type TextKind string

const (
	TextLiteral TextKind = "literal"
	TextKey     TextKind = "key"
)

// Text is a display string that is either shown as-is or looked up in the
// translation bundle.
type Text struct {
	Kind  TextKind `json:"kind"`
	Value string   `json:"value"`
}

// Literal returns a Text that is displayed verbatim.
func Literal(s string) Text {
	return Text{Kind: TextLiteral, Value: s}
}

// Key returns a Text that is resolved through the translation bundle.
func Key(k string) Text {
	return Text{Kind: TextKey, Value: k}
}

// IsKey reports whether the text must be translated before display.
func (t Text) IsKey() bool {
	return t.Kind == TextKey
}

// IsZero reports whether the text carries no value.
func (t Text) IsZero() bool {
	return t.Value == ""
}

// String returns the raw value, without translation.
func (t Text) String() string {
	return t.Value
}

// UnmarshalJSON accepts both the tagged object form and a bare JSON string,
// which is read as a literal.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Literal(s)
		return nil
	}

	type raw Text
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	switch r.Kind {
	case "":
		r.Kind = TextLiteral
	case TextLiteral, TextKey:
	default:
		return fmt.Errorf("unknown text kind %q", r.Kind)
	}
	*t = Text(r)
	return nil
}
