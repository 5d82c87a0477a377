package config

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Configuration keys. Values are looked up in jj config first, then in the
// colocated repository's git config.
const (
	KeyRepository      = "spr.githubRepository"
	KeyRemoteName      = "spr.githubRemoteName"
	KeyMasterBranch    = "spr.githubMasterBranch"
	KeyBranchPrefix    = "spr.branchPrefix"
	KeyRequireApproval = "spr.requireApproval"
	KeyAuthToken       = "spr.githubAuthToken"
)

// Defaults applied when a key is set nowhere in the chain.
const (
	DefaultRemoteName   = "origin"
	DefaultMasterBranch = "main"
	DefaultBranchPrefix = "spr/"
)

// Loader reads configuration values through the jj-then-git fallback chain.
type Loader struct {
	repoPath string
	gitCfg   gitConfig
}

// gitConfig is the subset of git configuration lookup the loader needs.
type gitConfig interface {
	lookup(section, option string) string
}

type repoGitConfig struct {
	repo *gogit.Repository
}

func (g repoGitConfig) lookup(section, option string) string {
	if g.repo == nil {
		return ""
	}
	cfg, err := g.repo.Config()
	if err != nil {
		return ""
	}
	return cfg.Raw.Section(section).Option(option)
}

// NewLoader opens the colocated git repository at repoPath for fallback
// lookups. A missing git repository is not an error; the jj side of the chain
// still works.
func NewLoader(repoPath string) *Loader {
	loader := &Loader{repoPath: repoPath}
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		loader.gitCfg = repoGitConfig{repo: repo}
	} else {
		loader.gitCfg = repoGitConfig{}
	}
	return loader
}

// Get returns the value for a dotted key ("spr.branchPrefix"), trying jj
// config first and falling back to git config. Empty string means unset.
func (l *Loader) Get(ctx context.Context, key string) string {
	if value := l.jjConfigGet(ctx, key); value != "" {
		return value
	}
	section, option, found := strings.Cut(key, ".")
	if !found {
		return ""
	}
	return l.gitCfg.lookup(section, option)
}

// GetBool is Get with boolean interpretation; returns fallback when the key
// is unset or not a recognizable boolean.
func (l *Loader) GetBool(ctx context.Context, key string, fallback bool) bool {
	switch strings.ToLower(l.Get(ctx, key)) {
	case "true", "yes", "1":
		return true
	case "false", "no", "0":
		return false
	default:
		return fallback
	}
}

// Set persists a key at repo level through jj config.
func (l *Loader) Set(ctx context.Context, key, value string) error {
	cmd := exec.CommandContext(ctx, "jj", "config", "set", "--repo", key, value)
	cmd.Dir = l.repoPath
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("jj config set failed for key %q: %s: %w",
			key, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

func (l *Loader) jjConfigGet(ctx context.Context, key string) string {
	cmd := exec.CommandContext(ctx, "jj", "config", "get", key)
	cmd.Dir = l.repoPath
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(stdout.String())
}

// Load builds the per-run Config from the configuration chain. The
// spr.githubRepository key ("owner/repo") is mandatory; everything else has a
// default.
func Load(ctx context.Context, repoPath string) (*Config, error) {
	loader := NewLoader(repoPath)

	repository := loader.Get(ctx, KeyRepository)
	if repository == "" {
		return nil, fmt.Errorf("%s is not configured; run 'jj-spr init' first", KeyRepository)
	}
	owner, repo, found := strings.Cut(repository, "/")
	if !found || owner == "" || repo == "" {
		return nil, fmt.Errorf("%s must be in 'owner/repo' form, got %q", KeyRepository, repository)
	}

	remoteName := loader.Get(ctx, KeyRemoteName)
	if remoteName == "" {
		remoteName = DefaultRemoteName
	}
	masterBranch := loader.Get(ctx, KeyMasterBranch)
	if masterBranch == "" {
		masterBranch = DefaultMasterBranch
	}
	branchPrefix := loader.Get(ctx, KeyBranchPrefix)
	if branchPrefix == "" {
		branchPrefix = DefaultBranchPrefix
	}
	requireApproval := loader.GetBool(ctx, KeyRequireApproval, false)

	return New(owner, repo, remoteName, masterBranch, branchPrefix, requireApproval), nil
}
