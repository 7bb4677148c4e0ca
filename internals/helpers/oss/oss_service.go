package oss

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // e.g. "uploads"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[OSS] bucket %s ready", bucketName)

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// buildObjectKey: <prefix>/<slot>/<uuid>.<ext>
func (s *OSSService) buildObjectKey(slot, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.NewString() + ext
	if slot != "" {
		key = strings.Trim(slot, "/") + "/" + key
	}
	if s.Prefix != "" {
		key = s.Prefix + "/" + key
	}
	return key
}

func (s *OSSService) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return "https://" + s.BucketName + "." + host + "/" + key
}

var putOptions = []oss.Option{
	oss.ContentDisposition("inline"),
	oss.CacheControl("public, max-age=31536000, immutable"),
	oss.ObjectACL(oss.ACLPublicRead),
}

// UploadImageAsWebP recompresses the image to webp and uploads it under the
// entity slot (articles/videos/...). Returns the public URL only; the caller
// persists it. A row write that fails afterwards leaves the object orphaned.
func (s *OSSService) UploadImageAsWebP(ctx context.Context, fh *multipart.FileHeader, slot string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := s.buildObjectKey(slot, base+".webp")

	opts := append([]oss.Option{oss.WithContext(ctx), oss.ContentType("image/webp")}, putOptions...)
	if err := s.Bucket.PutObject(key, bytes.NewReader(webpData), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// UploadFile uploads the form file as-is (pdf, mp4, ...) under the slot.
func (s *OSSService) UploadFile(ctx context.Context, fh *multipart.FileHeader, slot string) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ct := mime.TypeByExtension(filepath.Ext(fh.Filename))
	if ct == "" {
		ct = "application/octet-stream"
	}

	key := s.buildObjectKey(slot, fh.Filename)
	opts := append([]oss.Option{oss.WithContext(ctx), oss.ContentType(ct)}, putOptions...)
	if err := s.Bucket.PutObject(key, src, opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// UploadBytes uploads an already-read payload; used by the media migration.
func (s *OSSService) UploadBytes(ctx context.Context, data []byte, slot, filename, contentType string) (string, error) {
	key := s.buildObjectKey(slot, filename)
	opts := append([]oss.Option{oss.WithContext(ctx), oss.ContentType(contentType)}, putOptions...)
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// DeleteByPublicURL removes the object behind one of our public URLs.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	u, err := url.Parse(publicURL)
	if err != nil {
		return err
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return fmt.Errorf("no object key in %q", publicURL)
	}
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}
