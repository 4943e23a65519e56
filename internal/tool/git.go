package tool

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Git fetches dependencies by shelling out to the git binary: a clone of
// the source into the target directory followed by a checkout of the
// requested version.
type Git struct{}

func (Git) Name() string {
	return "git"
}

func (Git) Fetch(ctx context.Context, source, version, dir string) error {
	if err := runGit(ctx, dir, "clone", source, "."); err != nil {
		return &FetchError{Kind: RetrieveFailed, Err: err}
	}

	if err := runGit(ctx, dir, "checkout", version); err != nil {
		return &FetchError{Kind: VersionChangeFailed, Err: err}
	}

	return nil
}

func runGit(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	output, err := cmd.CombinedOutput()
	if err != nil {
		out := strings.TrimSpace(string(output))
		if out == "" {
			return fmt.Errorf("`git %s` failed: %w", strings.Join(args, " "), err)
		}
		return fmt.Errorf("`git %s` failed: %s: %w", strings.Join(args, " "), out, err)
	}

	return nil
}
