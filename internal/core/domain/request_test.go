package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_IsTerminal(t *testing.T) {
	assert.False(t, (&Request{State: StatePending}).IsTerminal())
	assert.True(t, (&Request{State: StateCompleted}).IsTerminal())
	assert.True(t, (&Request{State: StateError}).IsTerminal())
}
