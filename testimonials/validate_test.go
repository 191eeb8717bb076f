package testimonials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ana@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.ro"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing-at.example.com"))
	assert.False(t, ValidEmail("no-tld@example"))
	assert.False(t, ValidEmail("spaces in@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestContainsProfanity(t *testing.T) {
	assert.True(t, ContainsProfanity("what the fuck"))
	assert.True(t, ContainsProfanity("ShIt happens"))
	// substring match, not word-boundary: tokens inside longer words trigger
	assert.True(t, ContainsProfanity("scunthorpe"))
	assert.False(t, ContainsProfanity("lovely dinner, will come back"))
	assert.False(t, ContainsProfanity(""))
}

func TestClampStars(t *testing.T) {
	assert.Equal(t, 5.0, ClampStars(7))
	assert.Equal(t, 0.0, ClampStars(-3))
	assert.Equal(t, 3.5, ClampStars(3.5))
	assert.Equal(t, 0.0, ClampStars(0))
	assert.Equal(t, 5.0, ClampStars(5))
}
