package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skybrawl/clock"
)

// CombatProfile configures a melee swing. OriginOffset is given for a
// right-facing attacker and mirrored on X when facing left.
type CombatProfile struct {
	OriginOffset cp.Vector
	Radius       float64
	Damage       int
	Cooldown     clock.Cooldown
	TargetMask   uint
}

var CombatProfileComponent = NewComponent[CombatProfile]()

// Origin returns the world-space centre of the swing.
func (p *CombatProfile) Origin(pos cp.Vector, facing float64) cp.Vector {
	if p == nil {
		return pos
	}
	x := p.OriginOffset.X
	if facing < 0 {
		x = -x
	}
	return cp.Vector{X: pos.X + x, Y: pos.Y + p.OriginOffset.Y}
}
