package ports

import "context"

// GitService runs the git side effects of the commit flow.
type GitService interface {
	// StageAll stages every change in the working tree, "git add .".
	StageAll(ctx context.Context) error
	// Commit creates a commit with a title and a body, optionally signed.
	// It returns git's stdout on success; on a non-zero exit the error
	// carries git's stderr.
	Commit(ctx context.Context, title, body string, signed bool) (string, error)
}
