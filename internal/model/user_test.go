package model

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestUserBeforeSaveCapitalizesName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"chakra", "Chakra"},
		{"Chakra", "Chakra"},
		{"a", "A"},
		{"", ""},
		{"ümit", "Ümit"},
		{"étienne", "Étienne"},
	}

	for _, tt := range tests {
		u := &User{Name: tt.in}
		assert.NoError(t, u.BeforeSave(nil))
		assert.Equal(t, tt.want, u.Name)
		assert.True(t, utf8.ValidString(u.Name))
	}
}
