package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pasarumkm/umkm-market/internal/catalog"
)

func TestRestricted(t *testing.T) {
	assert.True(t, catalog.CategoryMakanan.Restricted())
	assert.True(t, catalog.CategoryMinuman.Restricted())
	assert.False(t, catalog.CategoryFashion.Restricted())
	assert.False(t, catalog.CategoryKerajinan.Restricted())
	assert.False(t, catalog.Category("Lainnya").Restricted())
}

func TestFind(t *testing.T) {
	p, ok := catalog.Find("p-001")
	assert.True(t, ok)
	assert.Equal(t, "Batik Tulis Pekalongan", p.Name)

	_, ok = catalog.Find("p-999")
	assert.False(t, ok)
}
