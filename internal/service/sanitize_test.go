package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	cases := map[string]string{
		"  plain  ":                     "plain",
		"<b>bold</b> move":              "bold move",
		"Tom & Jerry":                   "Tom & Jerry",
		"<script>alert(1)</script>safe": "safe",
		"<p></p>":                       "",
		"&lt;script&gt;alert(1)&lt;/script&gt;after": "after",
		"&amp;lt;b&amp;gt;nested&amp;lt;/b&amp;gt;": "nested",
		"&lt;img src=x onerror=alert(1)&gt;":          "",
		"Tom &amp; Jerry":                             "Tom & Jerry",
		"a < b":                                       "a < b",
		"":                              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, plainText(in), in)
	}
}

func TestPlainLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, plainLines([]string{" a", "", "<i></i>", "b "}))
	assert.Equal(t, []string{}, plainLines(nil))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("6b0c8f5e-0d7e-4a53-9e55-0d8f3a7c4b21"))
	assert.False(t, validID("665f1c2e9b1d4a0012345678"))
	assert.False(t, validID(""))
}
