// Package images moves banner images between the live and archive roots.
// Paths handed to it are logical names relative to the live root.
package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

var ErrInvalidPath = errors.New("image path escapes its storage root")

type Relocator struct {
	liveRoot    string
	archiveRoot string
}

func NewRelocator(liveRoot, archiveRoot string) *Relocator {
	return &Relocator{liveRoot: liveRoot, archiveRoot: archiveRoot}
}

// Move relocates the image stored under sourcePath to the same logical name under
// the archive root and returns the archived location.
func (r *Relocator) Move(sourcePath string) (string, error) {
	const op = "storage.images.Move"

	src, err := resolve(r.liveRoot, sourcePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	dst, err := resolve(r.archiveRoot, sourcePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("%s: create archive directory: %w", op, err)
	}

	err = os.Rename(src, dst)
	if errors.Is(err, syscall.EXDEV) {
		err = copyAndRemove(src, dst)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return dst, nil
}

func resolve(root, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == "." || !filepath.IsLocal(clean) {
		return "", ErrInvalidPath
	}
	return filepath.Join(root, clean), nil
}

// copyAndRemove handles roots on different filesystems, where rename is not possible.
func copyAndRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err = out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err = os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Remove(src)
}
