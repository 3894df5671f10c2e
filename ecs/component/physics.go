package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk body backing an entity on the arena floor.
type PhysicsBody struct {
	Body   *cp.Body
	Radius float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
