package bt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeNilRoot(t *testing.T) {
	tr := NewTree(nil)
	require.ErrorIs(t, tr.Validate(), ErrNilRoot)

	// ticking a rootless tree is still well-defined
	st, err := tr.Tick(TickContext{})
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, st)
}

func TestTreeValidateFindsNilChildren(t *testing.T) {
	seq := NewSequence("seq", newStub("ok", StatusSuccess), nil)
	require.ErrorIs(t, NewTree(seq).Validate(), ErrNilChild)

	inv := NewInverter("not", nil)
	require.ErrorIs(t, NewTree(inv).Validate(), ErrNilChild)

	nested := NewSelector("sel",
		NewSequence("seq", NewInverter("not", nil)),
	)
	require.ErrorIs(t, NewTree(nested).Validate(), ErrNilChild)
}

func TestTreeValidateOK(t *testing.T) {
	root := NewSequence("seq",
		NewSelector("sel", newStub("a", StatusFailure), newStub("b", StatusSuccess)),
		NewSucceeder("always", newStub("c", StatusFailure)),
	)
	require.NoError(t, NewTree(root).Validate())
}
