package main

import (
	"github.com/vovakirdan/tui-poles/internal/config"
	"github.com/vovakirdan/tui-poles/internal/core"
	"github.com/vovakirdan/tui-poles/internal/games/poles"
)

// themeFromConfig converts validated theme settings into a board theme.
func themeFromConfig(tc config.ThemeConfig) poles.Theme {
	color := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}

	return poles.Theme{
		Empty:      tc.Empty,
		Pole:       tc.Pole,
		Bird:       tc.Bird,
		EmptyColor: color(tc.EmptyColor),
		PoleColor:  color(tc.PoleColor),
		BirdColor:  color(tc.BirdColor),
		FrameColor: color(tc.FrameColor),
		TextColor:  color(tc.TextColor),
	}
}
