// Package testhelpers provides in-memory fakes and fixture builders for
// testing the synchronization actions without a jj repository, a git remote,
// or the GitHub API.
package testhelpers

import (
	"github.com/petr-tik/jj-spr/internal/config"
)

// NewTestConfig builds the configuration used throughout the action tests.
func NewTestConfig() *config.Config {
	return config.New("acme", "widgets", "origin", "main", "spr/alice/", false)
}
