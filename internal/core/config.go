package core

// RuntimeConfig contains the display parameters a frontend hands to the game.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible pole layouts
}
