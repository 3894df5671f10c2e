package component

// Input stores per-frame input state for an entity. Front ends write it
// before the systems run.
type Input struct {
	MoveX  float64
	MoveZ  float64
	Jump   bool
	Attack bool
}

var InputComponent = NewComponent[Input]()
