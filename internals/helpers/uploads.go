// file: internals/helpers/uploads.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"iskolar_backend/internals/configs"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)

	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = float32(80)
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func SanitizeFilename(filename string) string {
	return filenameSanitizer.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename prefixes the sanitized name with a folder and a uuid
// so re-uploads never collide in the bucket.
func GenerateUniqueFilename(folder, original string) string {
	name := SanitizeFilename(original)
	return fmt.Sprintf("%s/%s_%s", strings.Trim(folder, "/"), uuid.NewString(), name)
}

// IsImageContentType reports whether the sniffed type is a re-encodable image.
func IsImageContentType(ct string) bool {
	return strings.Contains(ct, "jpeg") || strings.Contains(ct, "png") || strings.Contains(ct, "webp")
}

func decodeImage(all []byte) (image.Image, string, error) {
	if len(all) == 0 {
		return nil, "", fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		return nil, ct, fmt.Errorf("unsupported image type: %s", ct)
	}
	if err != nil {
		return nil, ct, fmt.Errorf("image decode failed: %w", err)
	}
	return img, ct, nil
}

// ConvertImageToWebP re-encodes an uploaded scan as bounded-size webp.
// Non-image bytes (e.g. PDF certificates) are returned untouched.
func ConvertImageToWebP(all []byte) ([]byte, string, error) {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	if !IsImageContentType(http.DetectContentType(head)) {
		return all, http.DetectContentType(head), nil
	}

	img, _, err := decodeImage(all)
	if err != nil {
		return nil, "", err
	}

	bounds := img.Bounds()
	if bounds.Dx() > webpMaxW || bounds.Dy() > webpMaxH {
		img = imaging.Fit(img, webpMaxW, webpMaxH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, "", fmt.Errorf("webp encode failed: %w", err)
	}
	return buf.Bytes(), "image/webp", nil
}

// UploadToSupabase pushes bytes to a Supabase storage bucket and returns the public URL.
func UploadToSupabase(bucket, objectName, contentType string, body *bytes.Buffer) (string, error) {
	projectURL := configs.StorageProjectURL
	apiKey := configs.StorageAPIKey
	if projectURL == "" || apiKey == "" {
		return "", fmt.Errorf("storage is not configured")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", projectURL, bucket, objectName)
	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode, string(msg))
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		projectURL, bucket, url.PathEscape(objectName))
	return publicURL, nil
}

// UploadDocumentFile reads a multipart upload, normalizes image scans to webp,
// uploads to the documents bucket, and returns (publicURL, storedSize).
func UploadDocumentFile(folder string, fileHeader *multipart.FileHeader) (string, int64, error) {
	if fileHeader.Size > maxUploadSize {
		return "", 0, fmt.Errorf("file exceeds max upload size of %d bytes", maxUploadSize)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	raw := new(bytes.Buffer)
	if _, err := io.Copy(raw, src); err != nil {
		return "", 0, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	converted, contentType, err := ConvertImageToWebP(raw.Bytes())
	if err != nil {
		return "", 0, err
	}

	objectName := GenerateUniqueFilename(folder, fileHeader.Filename)
	if contentType == "image/webp" && !strings.HasSuffix(objectName, ".webp") {
		objectName = strings.TrimSuffix(objectName, ".jpg")
		objectName = strings.TrimSuffix(objectName, ".jpeg")
		objectName = strings.TrimSuffix(objectName, ".png")
		objectName += ".webp"
	}

	publicURL, err := UploadToSupabase("documents", objectName, contentType, bytes.NewBuffer(converted))
	if err != nil {
		return "", 0, err
	}
	return publicURL, int64(len(converted)), nil
}
