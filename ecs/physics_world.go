package ecs

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeBoss
	collisionTypePlayer
)

// BodyRole selects how a body collides.
type BodyRole int

const (
	BodyPlayer BodyRole = iota + 1
	BodyBoss
)

func (r BodyRole) String() string {
	switch r {
	case BodyPlayer:
		return "player"
	case BodyBoss:
		return "boss"
	}
	return "unknown"
}

// Contact is a boss/player overlap that began during a Step.
type Contact struct {
	Boss   Entity
	Player Entity
}

// PhysicsWorld owns the Chipmunk space of the arena floor. Chipmunk's X axis
// is world X and its Y axis is world Z; height is left to the agents.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	width, depth float64

	bodies        map[Entity]*cp.Body
	shapes        map[Entity]*cp.Shape
	shapeToEntity map[*cp.Shape]Entity
	roles         map[Entity]BodyRole
	contacts      []Contact
}

// NewPhysicsWorld creates a walled arena of width×depth centered on the origin.
func NewPhysicsWorld(width, depth float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		width:         width,
		depth:         depth,
		bodies:        make(map[Entity]*cp.Body),
		shapes:        make(map[Entity]*cp.Shape),
		shapeToEntity: make(map[*cp.Shape]Entity),
		roles:         make(map[Entity]BodyRole),
	}
	pw.buildWalls()
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Bounds returns the arena half extents on X and Z.
func (pw *PhysicsWorld) Bounds() (halfWidth, halfDepth float64) {
	if pw == nil {
		return 0, 0
	}
	return pw.width / 2, pw.depth / 2
}

// EnsureBody creates a circular body for e if it has none yet.
func (pw *PhysicsWorld) EnsureBody(e Entity, x, z, radius float64, role BodyRole) *cp.Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	if b, ok := pw.bodies[e]; ok {
		return b
	}
	if radius <= 0 {
		radius = 0.5
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: z})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	switch role {
	case BodyBoss:
		shape.SetCollisionType(collisionTypeBoss)
	default:
		shape.SetCollisionType(collisionTypePlayer)
	}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[e] = body
	pw.shapes[e] = shape
	pw.shapeToEntity[shape] = e
	pw.roles[e] = role
	log.Printf("physics: body for entity %s role=%s radius=%.2f", e, role, radius)
	return body
}

// RemoveBody drops e's body and shape from the space.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	if pw == nil {
		return
	}
	if shape, ok := pw.shapes[e]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToEntity, shape)
		delete(pw.shapes, e)
	}
	if body, ok := pw.bodies[e]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, e)
	}
	delete(pw.roles, e)
}

// HasBody reports whether e has a body.
func (pw *PhysicsWorld) HasBody(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.bodies[e]
	return ok
}

// SetState writes a body's position and velocity on the floor plane.
func (pw *PhysicsWorld) SetState(e Entity, x, z, vx, vz float64) {
	if pw == nil {
		return
	}
	body, ok := pw.bodies[e]
	if !ok {
		return
	}
	body.SetPosition(cp.Vector{X: x, Y: z})
	body.SetVelocity(vx, vz)
}

// State reads a body's position and velocity on the floor plane.
func (pw *PhysicsWorld) State(e Entity) (x, z, vx, vz float64, ok bool) {
	if pw == nil {
		return 0, 0, 0, 0, false
	}
	body, found := pw.bodies[e]
	if !found {
		return 0, 0, 0, 0, false
	}
	p := body.Position()
	v := body.Velocity()
	return p.X, p.Y, v.X, v.Y, true
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// DrainContacts returns the boss/player contacts that began since the last
// drain.
func (pw *PhysicsWorld) DrainContacts() []Contact {
	if pw == nil || len(pw.contacts) == 0 {
		return nil
	}
	out := pw.contacts
	pw.contacts = nil
	return out
}

func (pw *PhysicsWorld) buildWalls() {
	if pw == nil || pw.space == nil || pw.width <= 0 || pw.depth <= 0 {
		return
	}
	hw, hd := pw.width/2, pw.depth/2
	thickness := 0.5
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: -hw, Y: -hd}, b: cp.Vector{X: hw, Y: -hd}},
		{a: cp.Vector{X: -hw, Y: hd}, b: cp.Vector{X: hw, Y: hd}},
		{a: cp.Vector{X: -hw, Y: -hd}, b: cp.Vector{X: -hw, Y: hd}},
		{a: cp.Vector{X: hw, Y: -hd}, b: cp.Vector{X: hw, Y: hd}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	// Boss and player pass through each other; the overlap is reported as a
	// contact instead.
	contactHandler := pw.space.NewCollisionHandler(collisionTypeBoss, collisionTypePlayer)
	contactHandler.UserData = pw
	contactHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := world.shapeToEntity[shapeA]
		b, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return false
		}
		if world.roles[a] != BodyBoss {
			a, b = b, a
		}
		world.contacts = append(world.contacts, Contact{Boss: a, Player: b})
		return false
	}

	pw.handlersReady = true
}
