package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockroom/pagenav/internal/pagerange"
)

func TestRenderPlainBar(t *testing.T) {
	tests := []struct {
		name  string
		state pagerange.State
		want  string
	}{
		{
			name:  "first page",
			state: pagerange.NewState(1, 20),
			want:  "(‹ Prev) [1] 2 3 4 … 20 Next ›",
		},
		{
			name:  "middle page",
			state: pagerange.NewState(10, 20),
			want:  "‹ Prev 1 … 7 8 9 [10] 11 12 13 … 20 Next ›",
		},
		{
			name:  "last page",
			state: pagerange.NewState(3, 3),
			want:  "‹ Prev 1 2 [3] (Next ›)",
		},
		{
			name:  "single page",
			state: pagerange.NewState(1, 1),
			want:  "(‹ Prev) (Next ›)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderPlainBar(pagerange.Compute(tt.state)))
		})
	}
}

func TestRenderPaginationBar(t *testing.T) {
	bar := RenderPaginationBar(pagerange.Compute(pagerange.NewState(10, 20)))

	// lipgloss may add ANSI codes depending on the terminal, so only check content.
	for _, label := range []string{"Prev", "Next", "1", "10", "20", pagerange.EllipsisLabel} {
		assert.Contains(t, bar, label)
	}
}

func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}

func TestDetectOutputMode_ForcePlain(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, true))
}
