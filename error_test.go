package clipnote_test

import (
	"fmt"
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()

		err := clipnote.Errorf(clipnote.EINVALID, "bad URL")

		assert.Equal(t, clipnote.EINVALID, clipnote.ErrorCode(err))
	})

	t.Run("returns code for wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetching: %w", clipnote.Errorf(clipnote.ENOTFOUND, "no container"))

		assert.Equal(t, clipnote.ENOTFOUND, clipnote.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("plain error")

		assert.Equal(t, clipnote.EINTERNAL, clipnote.ErrorCode(err))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", clipnote.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()

		err := clipnote.Errorf(clipnote.ETOOSHORT, "only %d characters", 50)

		assert.Equal(t, "only 50 characters", clipnote.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", clipnote.ErrorMessage(fmt.Errorf("boom")))
	})
}
