package config

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// TokenOrigin says where an auth token came from.
type TokenOrigin int

const (
	// TokenFromConfig means the token was read from the configuration chain.
	TokenFromConfig TokenOrigin = iota
	// TokenFromGitHubCLI means the token was obtained from `gh auth token`.
	TokenFromGitHubCLI
)

// AuthTokenSource is a tagged token value; it carries no mutable state.
type AuthTokenSource struct {
	Token  string
	Origin TokenOrigin
}

// GetAuthToken resolves the GitHub auth token: the configured
// spr.githubAuthToken wins, otherwise the gh CLI's stored credentials are
// used.
func GetAuthToken(ctx context.Context, loader *Loader) (AuthTokenSource, error) {
	if token := loader.Get(ctx, KeyAuthToken); token != "" {
		return AuthTokenSource{Token: token, Origin: TokenFromConfig}, nil
	}

	cmd := exec.CommandContext(ctx, "gh", "auth", "token")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return AuthTokenSource{}, fmt.Errorf(
			"no GitHub token: set %s or authenticate with 'gh auth login': %w", KeyAuthToken, err)
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return AuthTokenSource{}, fmt.Errorf("gh auth token returned an empty token")
	}
	return AuthTokenSource{Token: token, Origin: TokenFromGitHubCLI}, nil
}
