package optional

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrHelpers(t *testing.T) {
	t.Parallel()

	require.True(t, IsErrEmpty(ErrEmpty))
	require.True(t, IsErrEmpty(fmt.Errorf("load config: %w", ErrEmpty)))
	require.False(t, IsErrEmpty(errors.New("other")))
	require.False(t, IsErrEmpty(nil))

	require.True(t, IsErrNilErrorFactory(ErrNilErrorFactory))
	require.False(t, IsErrNilErrorFactory(ErrEmpty))
	require.False(t, IsErrNilErrorFactory(nil))
}
