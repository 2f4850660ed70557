package service

import (
	"mime"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ankur09868/whatsapp-automation/internal/apperrors"
	"github.com/ankur09868/whatsapp-automation/internal/models"
)

// preferredExtensions pins the extension for MIME types where the registry
// lookup returns several candidates (image/jpeg also maps to .jpe and .jpeg).
var preferredExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"video/mp4":       ".mp4",
	"video/mpeg":      ".mpg",
	"application/pdf": ".pdf",
}

// NormalizeMedia validates the media descriptor against the message type and
// derives the file extension from the MIME type. It is a pure transform: the
// caller persists the returned descriptor.
func NormalizeMedia(validate *validator.Validate, messageType models.MessageType, media *models.MediaInput) (*models.Media, error) {
	switch messageType {
	case models.MessageTypeImage, models.MessageTypeDocument, models.MessageTypeVideo:
		if media == nil {
			return nil, apperrors.Validation("media data is required for message type '%s'", messageType)
		}
		if err := validate.Var(media.URL, "required,url"); err != nil {
			return nil, apperrors.Validation("invalid media URL for message type '%s'", messageType)
		}

		return &models.Media{
			URL:           media.URL,
			Type:          media.Type,
			Name:          media.Name,
			FileExtension: fileExtensionFor(media.Type),
		}, nil

	case models.MessageTypeText:
		if media != nil {
			return nil, apperrors.Validation("media is not allowed for text messages")
		}
		return nil, nil

	default:
		return nil, apperrors.Validation("unsupported message type: %s", messageType)
	}
}

// fileExtensionFor resolves a MIME type to a file extension. The registry
// lookup is incomplete for common messaging media types, so unknown types
// fall back on a substring match of the MIME string.
func fileExtensionFor(mimeType string) string {
	if ext, ok := preferredExtensions[mimeType]; ok {
		return ext
	}

	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	switch {
	case strings.Contains(mimeType, "image"):
		return ".jpg"
	case strings.Contains(mimeType, "video"):
		return ".mp4"
	case strings.Contains(mimeType, "document"):
		return ".pdf"
	default:
		return ".bin"
	}
}
