package mt940parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionFollowsMessageStructure(t *testing.T) {
	s := stateStart
	for _, tag := range []string{Tag20, Tag21, Tag25, Tag28C, Tag60F, Tag61, Tag86, Tag61, Tag62F, Tag64, Tag65, Tag65, Tag86} {
		next, _, ok := transition(s, tag)
		assert.True(t, ok, "tag %s after state %d", tag, s)
		s = next
	}
	assert.Equal(t, stateInformation, s)
}

func TestTransitionRejectsTags(t *testing.T) {
	tests := []struct {
		from state
		tag  string
	}{
		{stateStart, Tag25},
		{stateRefNo, Tag28C},
		{stateRelatedMsg, Tag21},
		{stateAccountID, Tag60F},
		{stateStatementNo, Tag61},
		{stateOpeningBalance, Tag64},
		{stateStatementLine, Tag65},
		{stateClosingBalance, Tag61},
		{stateClosingAvailable, Tag64},
		{stateForwardAvailable, Tag62F},
	}
	for _, tt := range tests {
		next, into, ok := transition(tt.from, tt.tag)
		assert.False(t, ok, "tag %s after state %d", tt.tag, tt.from)
		assert.Equal(t, tt.from, next)
		assert.Equal(t, targetNone, into)
	}
}

func TestTransitionTag86Target(t *testing.T) {
	tests := []struct {
		from state
		want target
	}{
		{stateOpeningBalance, targetMessage},
		{stateStatementLine, targetStatementLine},
		{stateInformation, targetStatementLine},
		{stateClosingBalance, targetMessage},
		{stateClosingAvailable, targetMessage},
		{stateForwardAvailable, targetMessage},
	}
	for _, tt := range tests {
		next, into, ok := transition(tt.from, Tag86)
		assert.True(t, ok)
		assert.Equal(t, stateInformation, next)
		assert.Equal(t, tt.want, into, "from state %d", tt.from)
	}
}

func TestExpectedTagsIsACopy(t *testing.T) {
	tags := expectedTags(stateRefNo)
	assert.Equal(t, []string{Tag21, Tag25}, tags)
	tags[0] = "XX"
	assert.Equal(t, []string{Tag21, Tag25}, expectedTags(stateRefNo))
}
