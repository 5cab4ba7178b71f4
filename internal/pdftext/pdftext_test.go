package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPages(t *testing.T) {
	pages := SplitPages("page one\nline two\fpage two\f")
	assert.Equal(t, []string{"page one\nline two", "page two"}, pages)
}

func TestSplitPages_NoTrailingFormFeed(t *testing.T) {
	pages := SplitPages("page one\fpage two")
	assert.Equal(t, []string{"page one", "page two"}, pages)
}

func TestSplitPages_Empty(t *testing.T) {
	assert.Empty(t, SplitPages(""))
}
