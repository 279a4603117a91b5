package lib_test

import (
	"minitienda_server/lib"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sillas-de-jardin", lib.Slugify("Sillas de Jardín"))
	assert.Equal(t, "mesa-redonda", lib.Slugify("  Mesa   Redonda  "))
	assert.Equal(t, "cafe", lib.Slugify("Café"))
}
