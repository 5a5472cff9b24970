package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("aceita timestamp RFC3339", func(t *testing.T) {
		date, err := ParseDate("2024-01-15T10:30:00Z")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC), *date)
	})

	t.Run("aceita data simples", func(t *testing.T) {
		date, err := ParseDate("2024-01-15")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("string vazia retorna data zero sem erro", func(t *testing.T) {
		date, err := ParseDate("")

		assert.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("formato inválido retorna erro", func(t *testing.T) {
		date, err := ParseDate("15/01/2024")

		assert.Error(t, err)
		assert.Nil(t, date)
	})
}
