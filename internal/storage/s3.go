package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/samuelgomeslima/aibarber-sub001/internal/config"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

// ======================================================
// Upload de imagem do catálogo: decodifica, reduz, converte
// para webp e publica no S3.
// ======================================================

const maxImageEdge = 1024

type ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &ImageStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func (s *ImageStore) Enabled() bool {
	return s.bucket != ""
}

// UploadServiceImage converte a imagem enviada (jpeg/png) para webp e
// grava em services/<barbershop>/<service>.webp. Devolve a URL pública.
func (s *ImageStore) UploadServiceImage(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
	r io.Reader,
) (string, error) {

	if !s.Enabled() {
		return "", httperr.ErrBusiness("image_storage_not_configured")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_image")
	}

	img = downscale(img, maxImageEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("services/%d/%d.webp", barbershopID, serviceID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", httperr.ErrBusiness("image_upload_failed")
	}

	return s.publicURL + "/" + key, nil
}

// downscale limita o maior lado a maxEdge preservando proporção.
func downscale(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxEdge && h <= maxEdge {
		return img
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
