package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageMIMEType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"person.jpg", "image/jpeg"},
		{"person.jpeg", "image/jpeg"},
		{"shirt.png", "image/png"},
		{"shirt.webp", "image/webp"},
		{"PHOTO.JPG", "image/jpeg"},
		{"Upper.PnG", "image/png"},
		{"archive.gif", "image/jpeg"},
		{"noextension", "image/jpeg"},
		{"", "image/jpeg"},
		{"dir.with.dots/file.webp", "image/webp"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ImageMIMEType(tt.filename), "filename %q", tt.filename)
	}
}
