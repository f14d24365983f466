package project

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
)

const (
	minNameLength = 2
	maxNameLength = 214
)

// illegalNameChars matches characters rejected by common filesystems.
var illegalNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// npmNamePattern is the npm package naming rule, optionally scoped.
var npmNamePattern = regexp.MustCompile(`^(?:@[a-z0-9\-*~][a-z0-9\-*._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

// reservedNames are device names Windows refuses as file names.
var reservedNames = []string{
	"CON", "PRN", "AUX", "NUL",
	"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
	"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
}

// ValidateName checks a project name against the naming rules in order and
// returns a *NameError for the first violation. fs is rooted at the working
// directory and is only read.
func ValidateName(fs billy.Filesystem, name string) error {
	if strings.TrimSpace(name) == "" {
		return &NameError{Rule: RuleEmpty, Message: "project name cannot be empty"}
	}

	if utf8.RuneCountInString(name) < minNameLength {
		return &NameError{Rule: RuleMinLength, Message: fmt.Sprintf("project name must be at least %d characters", minNameLength)}
	}

	if illegalNameChars.MatchString(name) {
		return &NameError{Rule: RuleIllegalChars, Message: `project name contains illegal characters (< > : " / \ | ? * or control characters)`}
	}

	if slices.Contains(reservedNames, strings.ToUpper(name)) {
		return &NameError{Rule: RuleReserved, Message: fmt.Sprintf("%q is a reserved system name", name)}
	}

	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") ||
		strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return &NameError{Rule: RuleBoundary, Message: "project name cannot start or end with a dot or a space"}
	}

	if fs != nil {
		_, err := fs.Stat(name)
		switch {
		case err == nil:
			return &NameError{Rule: RuleExists, Message: fmt.Sprintf("a file or directory named %q already exists", name)}
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("check %q: %w", name, err)
		}
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		return &NameError{Rule: RuleMaxLength, Message: fmt.Sprintf("project name must be at most %d characters", maxNameLength)}
	}

	if !npmNamePattern.MatchString(name) {
		return &NameError{Rule: RulePattern, Message: "project name must be a valid npm package name (lowercase letters, digits, - . _ ~)"}
	}

	return nil
}
