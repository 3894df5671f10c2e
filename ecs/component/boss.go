package component

import "github.com/milk9111/slimeboss/boss"

// Boss binds an entity to the agent that drives it.
type Boss struct {
	Name   string
	Agent  *boss.Agent
	Radius float64
}

var BossComponent = NewComponent[Boss]()
