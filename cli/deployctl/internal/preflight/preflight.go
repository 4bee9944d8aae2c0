package preflight

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"deploykit/cli/deployctl/internal/execx"
)

var ErrMarkerMissing = errors.New("marker file not found")

// CheckMarker confirms name exists in dir. It only stats the file.
func CheckMarker(dir, name string) error {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrMarkerMissing, path)
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	return nil
}

// Tool is the availability of one host binary the plan depends on.
type Tool struct {
	Name    string
	Version string
	OK      bool
}

// Probes lists the binaries checked by Tools with their version arguments.
var Probes = [][]string{
	{"git", "--version"},
	{"docker-compose", "version", "--short"},
}

// Tools runs each probe and reports which binaries answered.
func Tools(ctx context.Context, c execx.Capturer) []Tool {
	out := make([]Tool, 0, len(Probes))
	for _, p := range Probes {
		stdout, res := c.Capture(ctx, p[0], p[1:]...)
		out = append(out, Tool{Name: p[0], Version: firstLine(stdout), OK: res.Code == 0})
	}
	return out
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}
