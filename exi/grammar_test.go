package exi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRepeatedChainStates(t *testing.T) {
	states := BuildRepeatedChainStates(0, "Item", 1, 3)
	require.Len(t, states, 4)

	// state 0: below min, only START
	require.Len(t, states[0].Productions, 1)
	assert.Equal(t, ProdStart, states[0].Productions[0].Kind)
	assert.Equal(t, StateID(1), states[0].Productions[0].Next)

	// state 1: at min, START or END
	require.Len(t, states[1].Productions, 2)
	assert.Equal(t, ProdEndElement, states[1].Productions[1].Kind)

	// state 3: at max, only END
	require.Len(t, states[3].Productions, 1)
	assert.Equal(t, ProdEndElement, states[3].Productions[0].Kind)

	for _, s := range states {
		assert.Truef(t, s.WidthOK(), "state %d width mismatch", s.ID)
	}
}

func TestReadWriteEventCodeRoundTrip(t *testing.T) {
	states := []State{
		{ID: 0, Width: 1, Productions: []Production{
			{Kind: ProdStart, Particle: "Foo", Next: EndDone},
			{Kind: ProdEndElement, Next: EndDone},
		}},
	}

	buf := make([]byte, 4)
	w := NewWriter(buf)
	require.NoError(t, WriteEventCode(w, states, 0, 1))

	r := NewReader(w.Bytes())
	prod, err := ReadEventCode(r, states, 0)
	require.NoError(t, err)
	assert.Equal(t, ProdEndElement, prod.Kind)
}

func TestReadEventCodeUnknownState(t *testing.T) {
	r := NewReader(make([]byte, 4))
	_, err := ReadEventCode(r, nil, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(ErrUnknownGrammarID))
}
