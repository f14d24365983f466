package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/haywan-uz/haywan-frontend/internal/shell"
)

// NodeConstraint is the Node.js range current create-next-app supports.
const NodeConstraint = ">= 18.18.0"

// CheckNodeVersion runs "node --version" in dir and reports whether it
// satisfies NodeConstraint. A non-nil error means the check itself could
// not be completed.
func CheckNodeVersion(ctx context.Context, runner shell.Runner, dir string) (string, bool, error) {
	out, err := runner.Output(ctx, dir, "node --version")
	if err != nil {
		return "", false, fmt.Errorf("node --version: %w", err)
	}

	raw := strings.TrimSpace(out)
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw, false, fmt.Errorf("parse node version %q: %w", raw, err)
	}

	c, err := semver.NewConstraint(NodeConstraint)
	if err != nil {
		return raw, false, fmt.Errorf("parse constraint: %w", err)
	}

	return v.String(), c.Check(v), nil
}
