package forumstats_test

import (
	"testing"

	"github.com/fwojciec/forumstats"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := forumstats.Errorf(forumstats.ENOTFOUND, "post %d not in dataset", 42)

	assert.Equal(t, forumstats.ENOTFOUND, forumstats.ErrorCode(err))
	assert.Equal(t, "post 42 not in dataset", forumstats.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, forumstats.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, forumstats.ErrorMessage(nil))
}
