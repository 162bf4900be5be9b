package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrInvalidBaseName is returned when a base name is unusable or the form
// does not exist in the working tree.
var ErrInvalidBaseName = errors.New("invalid base name")

const (
	designerExt = ".Designer.cs"
	resxExt     = ".resx"
	tempExt     = ".new"
)

// Config holds the directory layout of a run.
type Config struct {
	// CanonicalDir is the pre-localization tree with the canonical measurements.
	CanonicalDir string `mapstructure:"canonical_dir" default:"PreLocalization"`
	// TemplateDir holds the localized files to rewrite and copy.
	TemplateDir string `mapstructure:"template_dir" default:"PreReverts"`
	// WorkingDir is the tree updated in place.
	WorkingDir string `mapstructure:"working_dir" default:"ResxFixes"`
	// LogPath is the file every run log is appended to.
	LogPath string `mapstructure:"log_path" default:"FixResx.log"`
	// LicensePath overrides the embedded license block when set.
	LicensePath string `mapstructure:"license_path" default:""`
}

// Validate checks that every directory is configured.
func (c Config) Validate() error {
	if c.CanonicalDir == "" || c.TemplateDir == "" || c.WorkingDir == "" {
		return fmt.Errorf("canonical, template and working directories must be set")
	}
	if c.LogPath == "" {
		return fmt.Errorf("log path must be set")
	}
	return nil
}

// Paths are the files touched by one run.
type Paths struct {
	Base              string `json:"base"`
	CanonicalDesigner string `json:"canonical_designer"`
	TemplateDesigner  string `json:"template_designer"`
	TemplateResx      string `json:"template_resx"`
	WorkingDesigner   string `json:"working_designer"`
	WorkingResx       string `json:"working_resx"`
	TempResx          string `json:"temp_resx"`
}

// Resolve builds the Paths for base, a path relative to each directory and
// without extension (e.g. "Forms/MainForm").
func (c Config) Resolve(base string) (Paths, error) {
	if base == "" || !filepath.IsLocal(base) {
		return Paths{}, fmt.Errorf("%w: %q", ErrInvalidBaseName, base)
	}

	workingResx := filepath.Join(c.WorkingDir, base+resxExt)
	return Paths{
		Base:              base,
		CanonicalDesigner: filepath.Join(c.CanonicalDir, base+designerExt),
		TemplateDesigner:  filepath.Join(c.TemplateDir, base+designerExt),
		TemplateResx:      filepath.Join(c.TemplateDir, base+resxExt),
		WorkingDesigner:   filepath.Join(c.WorkingDir, base+designerExt),
		WorkingResx:       workingResx,
		TempResx:          workingResx + tempExt,
	}, nil
}
