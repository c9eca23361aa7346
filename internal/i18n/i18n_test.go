package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_LookupAndFallback(t *testing.T) {
	tr := New(English)
	assert.Equal(t, "Germany", tr.T("marker.Germany"))
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))

	tr.SetLanguage(German)
	assert.Equal(t, "Deutschland", tr.T("marker.Germany"))
	assert.Equal(t, "zoom: 1.50x", New(English).Tf("status.zoom", 1.5))
}

func TestTranslator_Toggle(t *testing.T) {
	tr := New(English)
	assert.Equal(t, German, tr.Toggle())
	assert.Equal(t, English, tr.Toggle())
	assert.Equal(t, English, tr.Language())
}

func TestParse(t *testing.T) {
	l, err := Parse(" DE ")
	require.NoError(t, err)
	assert.Equal(t, German, l)
	_, err = Parse("fr")
	assert.Error(t, err)
}

func TestDefaultCatalogComplete(t *testing.T) {
	for key, tr := range Default {
		assert.NotEmpty(t, tr[English], "missing en for %s", key)
		assert.NotEmpty(t, tr[German], "missing de for %s", key)
	}
}
