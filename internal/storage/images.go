// Package storage owns the product image files on disk. Uploads are decoded,
// transcoded to webp and written under a generated filename; the public path
// stays /uploads/<name>.webp regardless of the input format.
package storage

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/google/uuid"
	"golang.org/x/image/webp"
)

// publicPrefix is the path the client serves uploaded images under.
const publicPrefix = "/uploads/"

var (
	// ErrFileTooLarge rejects uploads over the configured size cap.
	ErrFileTooLarge = errors.New("file size exceeds the maximum allowed limit")
	// ErrUnsupportedImage rejects anything that is not jpg/jpeg/png/webp.
	ErrUnsupportedImage = errors.New("only JPG, JPEG, PNG and WEBP images are allowed")
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// ImageStore writes and removes product images below a single directory.
type ImageStore struct {
	dir     string
	maxSize int64
}

// NewImageStore builds a store rooted at dir with the given per-file size cap.
func NewImageStore(dir string, maxSize int64) *ImageStore {
	if maxSize <= 0 {
		maxSize = 3 * 1024 * 1024
	}
	return &ImageStore{dir: dir, maxSize: maxSize}
}

// Validate checks size, extension and declared content type of an upload.
func (s *ImageStore) Validate(fh *multipart.FileHeader) error {
	if fh.Size > s.maxSize {
		return fmt.Errorf("%w (%d bytes)", ErrFileTooLarge, s.maxSize)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("invalid file extension: %w", ErrUnsupportedImage)
	}
	contentType := strings.ToLower(fh.Header.Get("Content-Type"))
	if _, ok := allowedContentTypes[contentType]; !ok {
		return fmt.Errorf("invalid file type: %w", ErrUnsupportedImage)
	}
	return nil
}

// Save stores the upload as webp under a fresh UUID filename and returns the
// public /uploads path. Inputs that already are webp are copied verbatim.
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	if err := s.Validate(fh); err != nil {
		return "", err
	}

	in, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ".webp"
	filePath := filepath.Join(s.dir, name)

	out, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if err := writeAsWebp(out, in, ext); err != nil {
		// Half-written files must not survive a failed upload.
		os.Remove(filePath)
		return "", err
	}
	return publicPrefix + name, nil
}

func writeAsWebp(out io.Writer, in io.Reader, ext string) error {
	if ext == ".webp" {
		if _, err := io.Copy(out, in); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		return nil
	}

	var (
		img image.Image
		err error
	)
	switch ext {
	case ".png":
		img, err = png.Decode(in)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(in)
	default:
		return ErrUnsupportedImage
	}
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if err := nativewebp.Encode(out, img, nil); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return nil
}

// Remove deletes the backing file of a public /uploads path. A file that is
// already gone is not an error; deletes stay repeatable.
func (s *ImageStore) Remove(src string) error {
	name := path.Base(strings.TrimPrefix(src, publicPrefix))
	if name == "" || name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

// Decode re-reads a stored webp image, used to sanity check round trips.
func Decode(r io.Reader) (image.Image, error) {
	return webp.Decode(r)
}
