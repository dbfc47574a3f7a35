package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"strings"
)

// DecodeBase64Image decodes a data URL such as "data:image/png;base64,iVBOR...".
// It returns the raw bytes and the file extension derived from the mime type.
func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("invalid base64 image")
	}

	header := strings.TrimPrefix(parts[0], "data:")
	contentType, _, found := strings.Cut(header, ";")
	if !found || contentType == "" {
		return nil, "", errors.New("invalid base64 image header")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}

	ext, err := imageExtension(contentType)
	if err != nil {
		return nil, "", err
	}

	return data, ext, nil
}

// imageExtension maps "image/<subtype>" to ".<subtype>" so the result does not
// depend on the host mime tables. Other types fall back to the mime package.
func imageExtension(contentType string) (string, error) {
	if subtype, ok := strings.CutPrefix(contentType, "image/"); ok && subtype != "" && !strings.ContainsAny(subtype, "+/. ") {
		return "." + strings.ToLower(subtype), nil
	}

	extensions, err := mime.ExtensionsByType(contentType)
	if err != nil || len(extensions) == 0 {
		return "", errors.New("invalid image type")
	}
	return extensions[0], nil
}

func ValidateImageFormat(ext string, allowedFormats []string) error {
	for _, format := range allowedFormats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(allowedFormats, ", "))
}

func ValidateImageSize(data []byte, maxSize int) error {
	if len(data) > maxSize*1024*1024 {
		return fmt.Errorf("image exceeds maximum allowed size of %dMB", maxSize)
	}
	return nil
}
