package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExecutesEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	var count atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { count.Add(1) }
	}
	panicked := p.Run(tasks)
	require.Len(t, panicked, 100)
	assert.Equal(t, int64(100), count.Load())
	for _, ok := range panicked {
		assert.False(t, ok)
	}
}

func TestRunRecoversPanics(t *testing.T) {
	p := New(2)
	defer p.Close()

	var ran atomic.Bool
	panicked := p.Run([]func(){
		func() { panic("boom") },
		func() { ran.Store(true) },
	})
	assert.Equal(t, []bool{true, false}, panicked)
	assert.True(t, ran.Load())

	// The pool keeps working after a panic.
	panicked = p.Run([]func(){func() {}})
	assert.Equal(t, []bool{false}, panicked)
}
