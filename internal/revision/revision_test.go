package revision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petr-tik/jj-spr/internal/errors"
	"github.com/petr-tik/jj-spr/internal/revision"
)

func TestResolve_DefaultIsParentOfWorkingCopy(t *testing.T) {
	r, err := revision.Resolve("", false, "")
	require.NoError(t, err)

	assert.False(t, r.IsRange)
	assert.Empty(t, r.Base)
	assert.Equal(t, "@-", r.Target)
	assert.False(t, r.Inclusive)
}

func TestResolve_ExplicitRevisionOverridesDefault(t *testing.T) {
	r, err := revision.Resolve("@", false, "")
	require.NoError(t, err)

	assert.False(t, r.IsRange)
	assert.Equal(t, "@", r.Target)
}

func TestResolve_ExclusiveRange(t *testing.T) {
	r, err := revision.Resolve("main..@", false, "")
	require.NoError(t, err)

	assert.True(t, r.IsRange)
	assert.Equal(t, "main", r.Base)
	assert.Equal(t, "@", r.Target)
	assert.False(t, r.Inclusive)
}

func TestResolve_InclusiveRange(t *testing.T) {
	r, err := revision.Resolve("main::@", false, "")
	require.NoError(t, err)

	assert.True(t, r.IsRange)
	assert.Equal(t, "main", r.Base)
	assert.Equal(t, "@", r.Target)
	assert.True(t, r.Inclusive)
}

func TestResolve_AllModeWithDefaultBase(t *testing.T) {
	r, err := revision.Resolve("", true, "")
	require.NoError(t, err)

	assert.True(t, r.IsRange)
	assert.Equal(t, "trunk()", r.Base)
	assert.Equal(t, "@-", r.Target)
	assert.False(t, r.Inclusive)
}

func TestResolve_AllModeWithCustomBase(t *testing.T) {
	r, err := revision.Resolve("", true, "main")
	require.NoError(t, err)

	assert.True(t, r.IsRange)
	assert.Equal(t, "main", r.Base)
	assert.Equal(t, "@-", r.Target)
}

func TestResolve_RangeOverridesAllMode(t *testing.T) {
	r, err := revision.Resolve("feature..@", true, "trunk()")
	require.NoError(t, err)

	assert.True(t, r.IsRange)
	assert.Equal(t, "feature", r.Base)
	assert.Equal(t, "@", r.Target)
	assert.False(t, r.Inclusive)

	r, err = revision.Resolve("feature::@", true, "trunk()")
	require.NoError(t, err)

	assert.True(t, r.IsRange)
	assert.Equal(t, "feature", r.Base)
	assert.Equal(t, "@", r.Target)
	assert.True(t, r.Inclusive)
}

func TestResolve_InvalidRangeFormat(t *testing.T) {
	_, err := revision.Resolve("invalid..range..format", false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidRangeFormat)
	assert.Contains(t, err.Error(), "invalid revision range format")

	_, err = revision.Resolve("a::b::c", false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidRangeFormat)
}
