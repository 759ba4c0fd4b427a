package component

// BallComponent tags the bouncing entity
type BallComponent struct{}

// PaddleComponent tags the player-controlled entity
type PaddleComponent struct{}
