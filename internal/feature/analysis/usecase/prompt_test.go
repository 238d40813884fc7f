package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"valid", "validation: 'check {{ .Description }}'\nanalysis: 'analyze {{ .BusinessName }}'\n", false},
		{"missing analysis", "validation: 'check'\n", true},
		{"broken yaml", "validation: [unterminated\n", true},
		{"broken template", "validation: '{{ .Description'\nanalysis: 'x'\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := LoadPrompts([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			got, err := p.Validation("hello")
			require.NoError(t, err)
			assert.Equal(t, "check hello", got)
		})
	}
}

func TestDefaultPrompts(t *testing.T) {
	t.Parallel()

	p := DefaultPrompts()

	t.Run("validation quotes the description", func(t *testing.T) {
		t.Parallel()

		got, err := p.Validation(`He said "hi" to customers`)
		require.NoError(t, err)
		assert.Contains(t, got, `Description: "He said \"hi\" to customers"`)
		assert.Contains(t, got, "YES or NO")
	})

	t.Run("analysis includes the example shape", func(t *testing.T) {
		t.Parallel()

		got, err := p.Analysis(sampleProfile())
		require.NoError(t, err)
		assert.Contains(t, got, `"businessName": "Sunrise Bakery"`)
		for _, key := range []string{`"strengths"`, `"weaknesses"`, `"opportunities"`, `"threats"`, `"growthPlan"`} {
			assert.True(t, strings.Contains(got, key), "prompt should mention %s", key)
		}
	})
}
