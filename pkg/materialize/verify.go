package materialize

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/template"
	"github.com/arthur-debert/fprime-bootstrap/pkg/types"
)

// Verify checks a generated tree against its entries: every entry exists
// with its planned kind, no path segment still ends in the marker suffix,
// and no text file still contains a bound token.
func Verify(dst types.FS, destRoot string, entries []types.DestinationEntry, binding template.Binding) error {
	for _, e := range entries {
		for _, segment := range strings.Split(e.RelativePath, "/") {
			if template.HasMarker(segment) {
				return errors.Newf(errors.ErrPostconditionFailed,
					"generated name %q still ends in %s", segment, template.MarkerSuffix).WithPath(e.RelativePath)
			}
		}

		target := filepath.Join(destRoot, filepath.FromSlash(e.RelativePath))
		info, err := dst.Stat(target)
		if err != nil {
			return errors.Wrap(err, errors.ErrPostconditionFailed, "generated entry is missing").WithPath(e.RelativePath)
		}
		if info.IsDir() != e.IsDir() {
			return errors.Newf(errors.ErrPostconditionFailed, "generated entry is not a %s", e.Kind).WithPath(e.RelativePath)
		}
		if e.IsDir() {
			continue
		}

		data, err := dst.ReadFile(target)
		if err != nil {
			return errors.Wrap(err, errors.ErrPostconditionFailed, "cannot read generated file").WithPath(e.RelativePath)
		}
		if !template.IsText(data) {
			continue
		}
		if token, found := template.ContainsToken(string(data), binding); found {
			return errors.Newf(errors.ErrPostconditionFailed, "generated file still contains %s", token).WithPath(e.RelativePath)
		}
	}
	return nil
}
