package io

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipe_Order(t *testing.T) {
	assert := assert.New(t)

	p := NewPipe(context.Background(), 1)

	done := make(chan []int64)
	go func() {
		var values []int64
		for range 4 {
			value, ok := p.Receive()
			if !ok {
				break
			}
			values = append(values, value)
		}
		done <- values
	}()

	assert.NoError(p.Send([]int64{2}))
	assert.NoError(p.Send([]int64{3, 4}))

	assert.Equal([]int64{1, 2, 3, 4}, <-done)
	assert.Equal(0, p.Len())
}

func TestPipe_Cancel(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	p := NewPipe(ctx)

	done := make(chan bool)
	go func() {
		_, ok := p.Receive()
		done <- ok
	}()

	cancel()
	assert.False(<-done)
}
