package playback

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAudioContext struct {
	suspended bool
	resumes   int
	closed    bool
}

func (f *fakeAudioContext) Suspended() bool { return f.suspended }

func (f *fakeAudioContext) Resume(ctx context.Context) error {
	f.resumes++
	f.suspended = false
	return nil
}

func (f *fakeAudioContext) Close() error {
	f.closed = true
	return nil
}

func TestInteraction_Qualifies(t *testing.T) {
	tests := []struct {
		name string
		in   Interaction
		want bool
	}{
		{"click", Interaction{Gesture: GestureClick}, true},
		{"keypress", Interaction{Gesture: GestureKeyPress}, true},
		{"touch start on control", Interaction{Gesture: GestureTouchStart, Interactive: true}, false},
		{"touch end on control", Interaction{Gesture: GestureTouchEnd, Interactive: true}, true},
		{"touch end on text", Interaction{Gesture: GestureTouchEnd}, false},
		{"scroll", Interaction{Gesture: GestureScroll, Interactive: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Qualifies())
		})
	}
}

func TestParseGesture(t *testing.T) {
	for g := GestureClick; g <= GestureScroll; g++ {
		parsed, err := ParseGesture(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}

	_, err := ParseGesture("wave")
	assert.Error(t, err)
}

func TestGate_Allowed(t *testing.T) {
	g := NewGate(PlatformFunc(func() bool { return false }), nil)
	assert.True(t, g.Allowed())
	assert.False(t, g.HasPermission())

	g = NewGate(nil, nil)
	assert.False(t, g.Allowed(), "an unknown platform requires a gesture")

	qualifies, granted := g.Signal(context.Background(), Interaction{Gesture: GestureScroll})
	assert.False(t, qualifies)
	assert.False(t, granted)
	assert.False(t, g.Allowed())

	qualifies, granted = g.Signal(context.Background(), Interaction{Gesture: GestureClick})
	assert.True(t, qualifies)
	assert.True(t, granted)
	assert.True(t, g.Allowed())

	// Granted only once
	qualifies, granted = g.Signal(context.Background(), Interaction{Gesture: GestureKeyPress})
	assert.True(t, qualifies)
	assert.False(t, granted)
}

func TestGate_AudioContext(t *testing.T) {
	ac := &fakeAudioContext{suspended: true}
	created := 0
	g := NewGate(nil, func() (AudioContext, error) {
		created++
		return ac, nil
	})
	ctx := context.Background()

	g.Signal(ctx, Interaction{Gesture: GestureTouchStart})
	assert.Zero(t, created, "the context is created lazily on a qualifying gesture")

	g.Signal(ctx, Interaction{Gesture: GestureClick})
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, ac.resumes)

	// Suspended again by the host; every qualifying gesture wakes it
	ac.suspended = true
	g.Signal(ctx, Interaction{Gesture: GestureKeyPress})
	assert.Equal(t, 1, created)
	assert.Equal(t, 2, ac.resumes)

	g.Signal(ctx, Interaction{Gesture: GestureClick})
	assert.Equal(t, 2, ac.resumes, "a running context is left alone")

	require.NoError(t, g.Close())
	assert.True(t, ac.closed)
	require.NoError(t, g.Close())
}

func TestGate_AudioContextFailure(t *testing.T) {
	g := NewGate(nil, func() (AudioContext, error) {
		return nil, errors.New("no output device")
	})

	qualifies, granted := g.Signal(context.Background(), Interaction{Gesture: GestureClick})
	assert.True(t, qualifies)
	assert.True(t, granted)
	assert.True(t, g.Allowed())
	assert.NoError(t, g.Close())
}
