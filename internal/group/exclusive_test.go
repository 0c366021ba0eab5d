package group

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/segmented/internal/segment"
)

func TestExclusiveSingleSelect(t *testing.T) {
	t.Parallel()

	changed := -1
	segs := Exclusive(func(i int) { changed = i },
		segment.New("Day").Selected(true),
		segment.New("Week"),
		segment.New("Month"),
	)

	segs[2].Activate()

	require.Equal(t, 2, changed)
	require.False(t, segs[0].Descriptor().Selected)
	require.False(t, segs[1].Descriptor().Selected)
	require.True(t, segs[2].Descriptor().Selected)
}

func TestExclusivePreservesOwnCallback(t *testing.T) {
	t.Parallel()

	own := 0
	segs := Exclusive(nil,
		segment.New("A"),
		segment.New("B").OnActivate(func() { own++ }),
	)

	segs[1].Activate()
	require.Equal(t, 1, own)
	require.True(t, segs[1].Descriptor().Selected)
}

func TestExclusiveLeavesDisabledSelectionAlone(t *testing.T) {
	t.Parallel()

	segs := Exclusive(nil,
		segment.New("Locked").Selected(true).Disabled(true),
		segment.New("Open"),
	)

	// A disabled target never activates at all.
	segs[0].Activate()
	require.False(t, segs[1].Descriptor().Selected)

	// Activating the open segment selects it but leaves the locked
	// value's selection untouched.
	segs[1].Activate()
	require.True(t, segs[0].Descriptor().Selected)
	require.True(t, segs[1].Descriptor().Selected)
}
