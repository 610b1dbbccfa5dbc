// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	"github.com/skip2/go-qrcode"

	"emojiverse/internal/middleware"
)

// TOTPSetup generates a fresh TOTP secret for the calling admin and returns
// it with a QR code for authenticator apps. The secret takes effect once the
// operator puts it in ADMIN_TOTP_SECRET; nothing is stored here.
func (a *Admin) TOTPSetup(w http.ResponseWriter, r *http.Request) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "EmojiVerse",
		AccountName: middleware.AdminFromCtx(r.Context()),
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not generate secret")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not generate QR code")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"secret":  key.Secret(),
		"url":     key.URL(),
		"qr_code": base64.StdEncoding.EncodeToString(qrPNG),
	})
}
