package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ",")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"few_pages", 3, 5, "1,2,3,4,5"},
		{"start", 1, 10, "1,2,3,4,…,10"},
		{"start_edge", 3, 10, "1,2,3,4,…,10"},
		{"end", 10, 10, "1,…,7,8,9,10"},
		{"end_edge", 8, 10, "1,…,7,8,9,10"},
		{"middle", 5, 10, "1,…,4,5,6,…,10"},
		{"six_pages_middle", 4, 6, "1,…,3,4,5,6"},
		{"single_page", 1, 1, ""},
		{"no_pages", 1, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(Window(tt.current, tt.total)))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(3, 0))
}

func TestControls(t *testing.T) {
	c := NewControls(1, 4)
	assert.True(t, c.PrevDisabled)
	assert.False(t, c.NextDisabled)
	assert.Equal(t, 2, c.Next)

	c = NewControls(4, 4)
	assert.False(t, c.PrevDisabled)
	assert.True(t, c.NextDisabled)
	assert.Equal(t, 3, c.Prev)
	assert.Equal(t, 4, c.Next)
}

func TestTarget_EllipsisIsNoop(t *testing.T) {
	assert.Equal(t, 5, Target(Token{Ellipsis: true}, 5))
	assert.Equal(t, 7, Target(Token{Page: 7}, 5))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, Summary{First: 10, Last: 10, Total: 10}, NewSummary(2, 9, 10))
	assert.Equal(t, Summary{First: 1, Last: 9, Total: 10}, NewSummary(1, 9, 10))
	assert.Equal(t, Summary{}, NewSummary(1, 9, 0))
}
