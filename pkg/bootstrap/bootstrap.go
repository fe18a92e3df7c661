package bootstrap

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fprime-bootstrap/pkg/assets"
	"github.com/arthur-debert/fprime-bootstrap/pkg/config"
	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/filesystem"
	"github.com/arthur-debert/fprime-bootstrap/pkg/logging"
	"github.com/arthur-debert/fprime-bootstrap/pkg/materialize"
	"github.com/arthur-debert/fprime-bootstrap/pkg/paths"
	"github.com/arthur-debert/fprime-bootstrap/pkg/template"
	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
)

// Options defines the options for Run.
type Options struct {
	// Path is the destination directory. Empty means ProjectName under the
	// working directory, or the working directory itself without a name.
	Path string
	// ProjectName overrides the name derived from Path.
	ProjectName string
	// Template names a bundled template. Empty means the configured default.
	Template string
	// DryRun plans the tree without writing anything.
	DryRun bool
	// Verify checks the generated tree once it is written.
	Verify bool

	// Config defaults to the embedded configuration.
	Config *config.Config
	// FS is the destination filesystem, the real one when nil.
	FS types.FS
	// Templates replaces the bundled template root when set.
	Templates fs.FS
}

// Result describes a bootstrap run
type Result struct {
	ProjectName string                   `json:"projectName"`
	Destination string                   `json:"destination"`
	Template    string                   `json:"template"`
	DryRun      bool                     `json:"dryRun"`
	Verified    bool                     `json:"verified"`
	Entries     []types.DestinationEntry `json:"entries"`
}

// Files returns the number of files in the result
func (r *Result) Files() int {
	n := 0
	for _, e := range r.Entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}

// Directories returns the number of directories in the result
func (r *Result) Directories() int {
	return len(r.Entries) - r.Files()
}

// Run generates a project according to opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.GetLogger("bootstrap")
	done := logging.LogOperationStart(log, "bootstrap")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	dst := opts.FS
	if dst == nil {
		dst = filesystem.NewOS()
	}

	// 1. Resolve the template root
	templateName := opts.Template
	if templateName == "" {
		templateName = cfg.Template.Default
	}
	src := opts.Templates
	if src == nil {
		var err error
		src, err = assets.Lookup(templateName)
		if err != nil {
			return nil, err
		}
	}

	// 2. Resolve destination and project name
	dest, err := resolveDestination(opts.Path, opts.ProjectName)
	if err != nil {
		return nil, err
	}
	name := opts.ProjectName
	if name == "" {
		name = DeriveProjectName(dest)
	}
	if err := ValidateProjectName(name, cfg.Project.NamePattern); err != nil {
		return nil, err
	}

	log.Info().
		Str("project", name).
		Str("destination", dest).
		Str("template", templateName).
		Bool("dryRun", opts.DryRun).
		Msg("Bootstrapping project")

	// 3. Generate
	binding := template.ProjectBinding(name)
	m := materialize.New(src, dst, materialize.WithPermissions(materialize.Permissions{
		Directory:  cfg.Permissions.DirectoryMode(),
		File:       cfg.Permissions.FileMode(),
		Executable: cfg.Permissions.ExecutableMode(),
	}))

	result := &Result{
		ProjectName: name,
		Destination: dest,
		Template:    templateName,
		DryRun:      opts.DryRun,
	}

	if opts.DryRun {
		entries, err := m.Plan()
		if err != nil {
			return nil, err
		}
		result.Entries = entries
		log.Info().Int("entries", len(entries)).Msg("Dry run planned")
		return result, nil
	}

	res, err := m.MaterializeContext(ctx, dest, binding)
	if err != nil {
		return nil, err
	}
	result.Entries = res.Entries

	// 4. Check the post-condition on what was written
	if opts.Verify {
		if err := materialize.Verify(dst, dest, res.Entries, binding); err != nil {
			return nil, err
		}
		result.Verified = true
	}

	log.Info().
		Int("files", res.Files()).
		Int("directories", res.Directories()).
		Int("substituted", res.Substituted()).
		Msg("Project created")

	return result, nil
}

func resolveDestination(path, name string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		path = filepath.Join(cwd, name)
	}
	return paths.Resolve(path)
}

// DeriveProjectName returns the last segment of path, or "" when path has
// none (the filesystem root).
func DeriveProjectName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	base := filepath.Base(filepath.Clean(path))
	if base == string(filepath.Separator) || base == "." {
		return ""
	}
	return base
}

// ValidateProjectName checks name against pattern. Names that would leave a
// placeholder or a marker behind after generation are always refused.
func ValidateProjectName(name, pattern string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidProjectName, "project name cannot be empty")
	}
	if strings.Contains(name, "{{") {
		return errors.Newf(errors.ErrInvalidProjectName, "project name %q contains a placeholder", name).
			WithDetail("name", name)
	}
	if template.HasMarker(name) {
		return errors.Newf(errors.ErrInvalidProjectName, "project name %q cannot end in %q", name, template.MarkerSuffix).
			WithDetail("name", name)
	}
	if pattern == "" {
		return nil
	}
	re, err := config.CompileNamePattern(pattern)
	if err != nil {
		return err
	}
	if !re.MatchString(name) {
		return errors.Newf(errors.ErrInvalidProjectName, "project name %q does not match %s", name, pattern).
			WithDetail("name", name).
			WithDetail("pattern", pattern)
	}
	return nil
}
