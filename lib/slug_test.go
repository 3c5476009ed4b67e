package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductNameFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"blue_leather-bag.JPG", "Blue Leather Bag"},
		{"rolex-submariner.png", "Rolex Submariner"},
		{"IMG_0042.jpeg", "Img 0042"},
		{"perfume.webp", "Perfume"},
		{"double__underscore--dash.png", "Double Underscore Dash"},
		{"  spaced  name .jpg", "Spaced Name"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductNameFromFilename(tt.filename))
		})
	}
}

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Blue Leather Bag", "blue-leather-bag"},
		{"Dior Sauvage 100ml", "dior-sauvage-100ml"},
		{"  Trimmed  ", "trimmed"},
	}

	for _, tt := range tests {
		got := MakeSlug(tt.name)
		assert.Equal(t, tt.want, got)
		assert.False(t, strings.HasPrefix(got, "-"))
		assert.False(t, strings.HasSuffix(got, "-"))
		assert.NotContains(t, got, "--")
		assert.Equal(t, strings.ToLower(got), got)
	}
}

func TestMakeUniqueSlug(t *testing.T) {
	a := MakeUniqueSlug("Blue Leather Bag", "17000000000000")
	b := MakeUniqueSlug("Blue Leather Bag", "17000000000001")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "blue-leather-bag-"))
}
