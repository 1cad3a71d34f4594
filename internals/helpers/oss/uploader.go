// internals/helpers/oss/uploader.go
package oss

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/maruf-pfc/opsboard-sub000/internals/configs"
)

const (
	maxUploadSize = 5 * 1024 * 1024
	maxDimension  = 512
	webpQuality   = 80
)

var ErrNotConfigured = errors.New("oss: uploader not configured")

// Uploader converts incoming profile images to webp and stores them in the
// bucket. Built once in main from Settings; never configured at import time.
type Uploader struct {
	bucket     *oss.Bucket
	bucketName string
	endpoint   string
	publicBase string
}

func NewUploader(cfg configs.OSSSettings) (*Uploader, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}
	client, err := oss.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket: %w", err)
	}
	return &Uploader{
		bucket:     bucket,
		bucketName: cfg.Bucket,
		endpoint:   cfg.Endpoint,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

// UploadDataURI decodes a data-URI image, recompresses it to webp capped at
// 512px, and puts it under objectKey with overwrite enabled. Returns the
// public URL of the stored object.
func (u *Uploader) UploadDataURI(objectKey, dataURI string) (string, error) {
	raw, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if len(raw) > maxUploadSize {
		return "", fmt.Errorf("image exceeds %d bytes", maxUploadSize)
	}

	img, err := decodeImage(raw)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = fitImage(img, maxDimension)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := objectKey + ".webp"
	opts := []oss.Option{
		oss.ContentType("image/webp"),
		oss.ForbidOverWrite(false),
	}
	if err := u.bucket.PutObject(key, bytes.NewReader(buf.Bytes()), opts...); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return u.publicURL(key), nil
}

func (u *Uploader) publicURL(key string) string {
	if u.publicBase != "" {
		return u.publicBase + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s", u.bucketName, strings.TrimPrefix(u.endpoint, "https://"), key)
}

// DecodeDataURI strips the data:<mime>;base64, prefix and decodes the body.
func DecodeDataURI(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, errors.New("not a data URI")
	}
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return nil, errors.New("malformed data URI")
	}
	meta := s[len("data:"):comma]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, errors.New("only base64 data URIs are supported")
	}
	raw, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return raw, nil
}

// IsDataURI reports whether the payload is an inline image rather than an
// already-hosted URL.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

func decodeImage(raw []byte) (image.Image, error) {
	if img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true)); err == nil {
		return img, nil
	}
	// imaging does not know webp
	return webp.Decode(bytes.NewReader(raw))
}

// fitImage downscales to fit max×max, preserving aspect ratio.
func fitImage(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
