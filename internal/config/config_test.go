package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FillDefaults(t *testing.T) {
	t.Run("empty config gets every default", func(t *testing.T) {
		cfg := Config{}.FillDefaults()
		assert.Equal(t, DefaultBufferSize, cfg.BufferSize)
		assert.NotEmpty(t, cfg.HistoryDB)
		assert.NotEmpty(t, cfg.ServeAddr)
		assert.NotEmpty(t, cfg.ArtifactDir)
	})

	t.Run("set fields are not overwritten", func(t *testing.T) {
		cfg := Config{BufferSize: 1024, ServeAddr: ":9090"}.FillDefaults()
		assert.Equal(t, 1024, cfg.BufferSize)
		assert.Equal(t, ":9090", cfg.ServeAddr)
	})
}

func Test_Validate(t *testing.T) {
	t.Run("zero buffer size is invalid", func(t *testing.T) {
		err := Config{BufferSize: 0}.Validate()
		assert.Error(t, err)
	})

	t.Run("filled defaults validate cleanly", func(t *testing.T) {
		cfg := Config{}.FillDefaults()
		assert.NoError(t, cfg.Validate())
	})
}
