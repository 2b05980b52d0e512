package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

type MediaType string

const (
	MediaPhotoBefore MediaType = "foto_antes"
	MediaPhotoAfter  MediaType = "foto_despues"
	MediaSignature   MediaType = "firma"
	MediaVideo       MediaType = "video"
)

func (m MediaType) IsValid() bool {
	switch m {
	case MediaPhotoBefore, MediaPhotoAfter, MediaSignature, MediaVideo:
		return true
	}

	return false
}

// Extension and content type of uploaded files.
func (m MediaType) Extension() (string, string) {
	switch m {
	case MediaSignature:
		return "png", "image/png"
	case MediaVideo:
		return "mp4", "video/mp4"
	}

	return "jpg", "image/jpeg"
}

type MediaUploadRequest struct {
	FileType MediaType `json:"file_type"`
}

type MediaUpload struct {
	UploadURL   string    `json:"upload_url"`
	PublicURL   string    `json:"public_url"`
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

const maxSafeNameLen = 30

// MediaKey builds YYYY/MM/DD/installation-{id}-{name}/{type}-{fileID}.{ext}.
// day is formatted as given, so callers pass a Colombia time.
func MediaKey(day time.Time, installationID int64, clientName string, m MediaType, fileID string) string {
	ext, _ := m.Extension()

	return fmt.Sprintf("%s/installation-%d-%s/%s-%s.%s",
		day.Format("2006/01/02"), installationID, SafeName(clientName), m, fileID, ext)
}

// SafeName keeps letters, digits and spaces, dashes the spaces and lowercases, capped at 30 runes.
func SafeName(s string) string {
	var b strings.Builder

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}

	out := []rune(strings.ToLower(strings.ReplaceAll(b.String(), " ", "-")))
	if len(out) > maxSafeNameLen {
		out = out[:maxSafeNameLen]
	}

	return string(out)
}
