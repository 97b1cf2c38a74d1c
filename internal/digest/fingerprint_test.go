package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"citylaw/internal/digest"
)

func TestFingerprint_StableAndShort(t *testing.T) {
	a := digest.Fingerprint([]byte("<h1>Apex</h1>"))
	b := digest.Fingerprint([]byte("<h1>Apex</h1>"))
	c := digest.Fingerprint([]byte("<h1>Cary</h1>"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 20)
}

func TestETag_Quoted(t *testing.T) {
	tag := digest.ETag([]byte("x"))
	assert.Equal(t, `"`+digest.Fingerprint([]byte("x"))+`"`, tag)
}
