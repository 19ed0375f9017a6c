package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"grades 2026.pdf", "grades_2026.pdf"},
		{"birth-cert_final.PDF", "birth-cert_final.PDF"},
		{"résumé (1).pdf", "r_sum_1_.pdf"},
		{"../../etc/passwd", ".._.._etc_passwd"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("/documents/", "grades.pdf")
	b := GenerateUniqueFilename("/documents/", "grades.pdf")

	assert.NotEqual(t, a, b, "re-uploads of the same name must not collide")
	assert.True(t, strings.HasPrefix(a, "documents/"), a)
	assert.True(t, strings.HasSuffix(a, "_grades.pdf"), a)
	assert.False(t, strings.Contains(a, "//"))
}

func TestIsImageContentType(t *testing.T) {
	assert.True(t, IsImageContentType("image/jpeg"))
	assert.True(t, IsImageContentType("image/png"))
	assert.True(t, IsImageContentType("image/webp"))
	assert.False(t, IsImageContentType("application/pdf"))
	assert.False(t, IsImageContentType("text/plain"))
}

func TestBuildPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPagination(45, 2, 20, 20)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
		assert.Equal(t, int64(45), p.Total)
	})

	t.Run("single short page", func(t *testing.T) {
		p := BuildPagination(5, 1, 20, 5)
		require.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
		assert.Equal(t, 5, p.Count)
	})

	t.Run("empty result", func(t *testing.T) {
		p := BuildPagination(0, 1, 20, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
	})
}
