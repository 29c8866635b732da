// Package packaging derives the package version and stages the files of a
// distribution package.
package packaging

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GitRunner runs a git command in dir and returns its trimmed output.
type GitRunner interface {
	Output(dir string, args ...string) (string, error)
}

type ExecGitRunner struct{}

func (ExecGitRunner) Output(dir string, args ...string) (string, error) {
	command := exec.Command("git", args...)
	command.Dir = dir
	output, err := command.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// ParseDescribe converts "git describe --long --tags" output such as
// "v1.2.0-rc1-4-gabc1234" into the pacman version "1.2.0.rc1.r4.gabc1234".
func ParseDescribe(describe string) (string, error) {
	describe = strings.TrimSpace(describe)
	hashIndex := strings.LastIndex(describe, "-g")
	if hashIndex <= 0 {
		return "", fmt.Errorf("unexpected describe output %q", describe)
	}
	hash := describe[hashIndex+2:]
	rest := describe[:hashIndex]
	countIndex := strings.LastIndex(rest, "-")
	if countIndex <= 0 || hash == "" {
		return "", fmt.Errorf("unexpected describe output %q", describe)
	}
	count := rest[countIndex+1:]
	if _, err := strconv.Atoi(count); err != nil {
		return "", fmt.Errorf("unexpected commit count in %q", describe)
	}
	tag := strings.TrimPrefix(rest[:countIndex], "v")
	return FormatVersion(tag, count, hash), nil
}

// FormatVersion joins the parts of a pacman version. Hyphens in the tag
// become dots.
func FormatVersion(tag string, count string, hash string) string {
	return fmt.Sprintf("%s.r%s.g%s", strings.ReplaceAll(tag, "-", "."), count, hash)
}

// DeriveVersion returns the version of the checkout in dir, from the latest
// reachable tag or from the commit count when no tag exists.
func DeriveVersion(runner GitRunner, dir string) (string, error) {
	if describe, err := runner.Output(dir, "describe", "--long", "--tags", "--abbrev=7"); err == nil {
		return ParseDescribe(describe)
	}
	count, err := runner.Output(dir, "rev-list", "--count", "HEAD")
	if err != nil {
		return "", err
	}
	hash, err := runner.Output(dir, "rev-parse", "--short=7", "HEAD")
	if err != nil {
		return "", err
	}
	return FormatVersion("0.0.0", count, hash), nil
}
