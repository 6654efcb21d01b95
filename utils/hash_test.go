package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesMD5(t *testing.T) {
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", BytesMD5([]byte("hello")))
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", BytesMD5(nil))
}

func TestBytesMD5_Deterministic(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	assert.Equal(t, BytesMD5(data), BytesMD5(data))
}
