package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

func Test_Error_MatchesItsKindSentinel(t *testing.T) {
	tests := []struct {
		kind     core.ErrorKind
		sentinel error
	}{
		{core.KindNotFound, core.ErrNotFound},
		{core.KindInvalidState, core.ErrInvalidState},
		{core.KindInvalidInput, core.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", core.NewError(tt.kind, "reason"))

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.kind, core.KindOf(err))
		})
	}
}

func Test_Error_DoesNotMatchOtherKinds(t *testing.T) {
	err := core.NewError(core.KindNotFound, core.ReasonBookNotFound)

	assert.NotErrorIs(t, err, core.ErrInvalidState)
	assert.Equal(t, core.ReasonBookNotFound, err.Error())
	assert.Equal(t, core.ErrorKind(""), core.KindOf(errors.New("plain")))
}
