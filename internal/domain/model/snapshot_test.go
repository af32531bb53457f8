package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInternalNilSafe(t *testing.T) {
	var s *ChannelSnapshot
	assert.False(t, s.IsInternal())
}

func TestIsInternalFlag(t *testing.T) {
	s := &ChannelSnapshot{TechProperties: TechInternal}
	assert.True(t, s.IsInternal())

	s2 := &ChannelSnapshot{}
	assert.False(t, s2.IsInternal())
}

func TestTechFlagHas(t *testing.T) {
	var f TechFlag
	assert.False(t, f.Has(TechInternal))
	f = TechInternal
	assert.True(t, f.Has(TechInternal))
}
