package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "open", input: "open", want: StatusOpen},
		{name: "in progress", input: "in_progress", want: StatusInProgress},
		{name: "waiting", input: "waiting", want: StatusWaiting},
		{name: "resolved", input: "resolved", want: StatusResolved},
		{name: "closed", input: "closed", want: StatusClosed},
		{name: "unknown", input: "pending", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "open to in_progress", from: StatusOpen, to: StatusInProgress, want: true},
		{name: "open to resolved", from: StatusOpen, to: StatusResolved, want: true},
		{name: "in_progress back to open", from: StatusInProgress, to: StatusOpen, want: true},
		{name: "waiting to in_progress", from: StatusWaiting, to: StatusInProgress, want: true},
		{name: "waiting to open", from: StatusWaiting, to: StatusOpen, want: false},
		{name: "resolved to closed", from: StatusResolved, to: StatusClosed, want: true},
		{name: "resolved back to open", from: StatusResolved, to: StatusOpen, want: false},
		{name: "closed is terminal", from: StatusClosed, to: StatusOpen, want: false},
		{name: "closed to resolved", from: StatusClosed, to: StatusResolved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsPending(t *testing.T) {
	assert.True(t, StatusOpen.IsPending())
	assert.True(t, StatusInProgress.IsPending())
	assert.True(t, StatusWaiting.IsPending())
	assert.False(t, StatusResolved.IsPending())
	assert.False(t, StatusClosed.IsPending())
}
