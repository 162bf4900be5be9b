package workspace

import (
	"fmt"
	"io"
	"os"
)

// Installer puts the results of a run into the working tree.
type Installer interface {
	Install(p Paths) error
}

// FileInstaller installs with file renames. Each file is replaced
// atomically, but the pair is not: if the designer copy fails the rewritten
// resx is already in place.
type FileInstaller struct{}

// Install moves the rewritten temp file over the working resx and copies the
// designer template over the working designer.
func (FileInstaller) Install(p Paths) error {
	if err := os.Rename(p.TempResx, p.WorkingResx); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", p.TempResx, err)
	}
	if err := copyFile(p.TemplateDesigner, p.WorkingDesigner); err != nil {
		return fmt.Errorf("failed to copy designer template: %w", err)
	}
	return nil
}

// copyFile copies src to a sibling of dst and renames it over dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := dst + tempExt
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}

// CheckWorking verifies that the form exists in the working tree.
func CheckWorking(p Paths) error {
	info, err := os.Stat(p.WorkingDesigner)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %q is not in the working tree", ErrInvalidBaseName, p.Base)
	}
	return nil
}
