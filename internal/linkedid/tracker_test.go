package linkedid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireThenRetireFiresOnce(t *testing.T) {
	tr := New(nil)
	tr.Acquire("link-1")
	assert.Equal(t, 1, tr.Len())

	fired := tr.RetirementCheck("link-1")
	assert.True(t, fired)
	assert.Equal(t, 0, tr.Len())
}

func TestMultipleChannelsDelayRetirement(t *testing.T) {
	tr := New(nil)
	tr.Acquire("link-1")
	tr.Acquire("link-1")
	tr.Acquire("link-1")

	assert.False(t, tr.RetirementCheck("link-1"))
	assert.False(t, tr.RetirementCheck("link-1"))
	assert.True(t, tr.RetirementCheck("link-1"))
}

func TestAcquireEmptyLinkedIDIsNoop(t *testing.T) {
	tr := New(nil)
	tr.Acquire("")
	assert.Equal(t, 0, tr.Len())
}

func TestRetirementCheckEmptyLinkedIDIsFalse(t *testing.T) {
	tr := New(nil)
	assert.False(t, tr.RetirementCheck(""))
}

func TestRetirementCheckMissingEntryToleratedAsFalse(t *testing.T) {
	tr := New(nil)
	assert.False(t, tr.RetirementCheck("never-acquired"))
}
