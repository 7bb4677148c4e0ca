// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

// uploader guard, checked before any decode work
var maxUploadSize = int64(10 * 1024 * 1024)

type WebPOptions struct {
	MaxW    int     // resize bound, keep-aspect
	MaxH    int
	Quality float32
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage sniffs the MIME from the first bytes and decodes jpg/png/webp.
func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("unsupported image format: %s (%s)", ct, filename)
	}
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && float64(h)*scale > float64(maxH) {
		scale = float64(maxH) / float64(h)
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP: read → decode → downscale → encode webp.
func ConvertToWebP(file multipart.File, filename string) ([]byte, error) {
	return ConvertToWebPWithOptions(file, filename, defaultWebPOptionsFromEnv())
}

func ConvertToWebPWithOptions(file multipart.File, filename string, opts WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}
	return buf.Bytes(), nil
}
