package upload

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	DefaultMaxFileSize = 5 * 1024 * 1024
	URLPrefix          = "/uploads"
)

// Kind is both the upload category and its sub-directory.
type Kind string

const (
	KindImage  Kind = "images"
	KindPDF    Kind = "pdfs"
	KindResume Kind = "resumes"
)

// allowed maps each kind to its accepted MIME types and the extension the
// stored file gets.
var allowed = map[Kind]map[string]string{
	KindImage: {
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	},
	KindPDF:    {"application/pdf": ".pdf"},
	KindResume: {"application/pdf": ".pdf"},
}

// Store writes validated uploads to the local disk under
// <baseDir>/<kind>/<uuid><ext> and hands back the public path.
type Store struct {
	baseDir  string
	maxBytes int64
	maxWidth int
}

// NewStore builds a Store. maxImageWidth <= 0 keeps images at their original
// size.
func NewStore(baseDir string, maxBytes int64, maxImageWidth int) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileSize
	}
	return &Store{baseDir: baseDir, maxBytes: maxBytes, maxWidth: maxImageWidth}
}

func (s *Store) BaseDir() string { return s.baseDir }

// Save validates fh against kind and stores it. The returned path looks like
// /uploads/images/<name>.png.
func (s *Store) Save(kind Kind, fh *multipart.FileHeader) (string, error) {
	exts, ok := allowed[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind %q", kind)
	}
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("detect mime type: %w", err)
	}
	ext := ""
	for candidate, e := range exts {
		if mtype.Is(candidate) {
			ext = e
			break
		}
	}
	if ext == "" {
		return "", ErrInvalidMimeType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	dir := filepath.Join(s.baseDir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	if err := s.write(dst, ext, file); err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return URLPrefix + "/" + string(kind) + "/" + name, nil
}

// write copies the upload to dst, shrinking jpeg/png images wider than
// maxWidth. webp is stored as uploaded.
func (s *Store) write(dst, ext string, src io.ReadSeeker) error {
	if s.maxWidth > 0 && (ext == ".jpg" || ext == ".png") {
		cfg, _, err := image.DecodeConfig(src)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidMimeType, err)
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewind upload: %w", err)
		}
		if cfg.Width > s.maxWidth {
			img, err := imaging.Decode(src, imaging.AutoOrientation(true))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidMimeType, err)
			}
			img = imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)
			if err := imaging.Save(img, dst); err != nil {
				return fmt.Errorf("save resized image: %w", err)
			}
			return nil
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("write file: %w", err)
	}
	return out.Close()
}

// Remove deletes a file previously returned by Save. Missing files are not an
// error.
func (s *Store) Remove(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, URLPrefix+"/")
	if rel == publicPath || rel == "" {
		return ErrInvalidPath
	}
	full := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	back, err := filepath.Rel(s.baseDir, full)
	if err != nil || back == "." || strings.HasPrefix(back, "..") {
		return ErrInvalidPath
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
