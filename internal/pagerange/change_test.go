package pagerange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/pagenav/internal/pagerange"
)

func TestRequestPageChange(t *testing.T) {
	tests := []struct {
		name      string
		current   int
		requested int
		total     int
		wantErr   bool
		wantDir   pagerange.Direction
	}{
		{name: "same page", current: 5, requested: 5, total: 10, wantErr: true},
		{name: "below first page", current: 5, requested: 0, total: 10, wantErr: true},
		{name: "negative page", current: 5, requested: -3, total: 10, wantErr: true},
		{name: "beyond last page", current: 5, requested: 11, total: 10, wantErr: true},
		{name: "empty listing", current: 1, requested: 2, total: 0, wantErr: true},
		{name: "forward", current: 5, requested: 8, total: 10, wantDir: pagerange.Next},
		{name: "backward", current: 5, requested: 2, total: 10, wantDir: pagerange.Previous},
		{name: "to last", current: 1, requested: 10, total: 10, wantDir: pagerange.Next},
		{name: "to first", current: 10, requested: 1, total: 10, wantDir: pagerange.Previous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := pagerange.RequestPageChange(tt.current, tt.requested, tt.total)
			if tt.wantErr {
				require.ErrorIs(t, err, pagerange.ErrRejected)
				assert.Equal(t, pagerange.Transition{}, tr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.requested, tr.NewPage)
			assert.Equal(t, tt.current, tr.From)
			assert.Equal(t, tt.wantDir, tr.Direction)
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "next", pagerange.Next.String())
	assert.Equal(t, "previous", pagerange.Previous.String())
	assert.Equal(t, "none", pagerange.Direction(0).String())

	text, err := pagerange.Previous.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "previous", string(text))
}

func TestAnswer(t *testing.T) {
	out, tr, err := pagerange.Answer(3, 4, 10)
	require.NoError(t, err)
	assert.Equal(t, pagerange.Outcome{Accepted: true, NewPage: 4, Direction: "next"}, out)
	assert.Equal(t, 3, tr.From)

	out, _, err = pagerange.Answer(3, 11, 10)
	require.ErrorIs(t, err, pagerange.ErrRejected)
	assert.Equal(t, pagerange.Outcome{NewPage: 3}, out)
}
