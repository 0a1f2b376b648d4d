package git

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// StageAll stages every change in the working tree, the "git add ." step
// that runs before the commit when auto staging is enabled.
func (s *GitService) StageAll(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "git", "add", ".")
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return domainErrors.ErrStageAll.WithError(err).
				WithContext("stderr", strings.TrimSpace(stderr.String()))
		}
		return domainErrors.ErrGitNotStarted.WithError(err)
	}
	return nil
}

// Commit creates the commit with separate title and body arguments so git
// receives them unshelled. stdout is returned for the caller to surface.
func (s *GitService) Commit(ctx context.Context, title, body string, signed bool) (string, error) {
	args := []string{"commit"}
	if signed {
		args = append(args, "-S")
	}
	args = append(args, "-m", title, "-m", body)

	slog.Debug("running git commit", "signed", signed, "title", title)

	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", domainErrors.ErrCreateCommit.WithError(err).
				WithContext("stderr", strings.TrimSpace(stderr.String()))
		}
		return "", domainErrors.ErrGitNotStarted.WithError(err)
	}

	return stdout.String(), nil
}
