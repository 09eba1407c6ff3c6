package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureErase(t *testing.T) {
	t.Run("Erases data", func(t *testing.T) {
		data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
		SecureErase(data)
		assert.True(t, bytes.Equal(data, make([]byte, len(data))))
	})

	t.Run("Handles empty slice", func(t *testing.T) {
		SecureErase([]byte{})
		SecureErase(nil)
	})
}
