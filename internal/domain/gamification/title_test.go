package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{-3, "Noob"},
		{0, "Noob"},
		{1, "Noob"},
		{2, "Noob"},
		{4, "Noob"},
		{5, "Rookie"},
		{9, "Rookie"},
		{10, "Adventurer"},
		{15, "Explorer"},
		{20, "Veteran"},
		{27, "Champion"},
		{30, "Legend"},
		{32, "Legend"},
		{500, "Legend"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleForLevel(tt.level), "level %d", tt.level)
	}
}

func TestTitleForLevel_NeverEmpty(t *testing.T) {
	for level := 1; level <= 100; level++ {
		assert.NotEmpty(t, TitleForLevel(level))
	}
}
