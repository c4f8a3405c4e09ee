// internal/combat/aiming.go
package combat

import (
	"math"

	"go-combat-core/internal/config"
	"go-combat-core/pkg/vec"
)

// negligibleSpeedSq is the squared speed under which a target counts as
// stationary for lead prediction.
const negligibleSpeedSq = 1e-6

// Aiming rotates a unit's turret toward its current target and reports
// whether it points closely enough to fire.
//
// Lead prediction refines an intercept estimate over a fixed number of
// iterations: time-to-hit from the previous estimate feeds the next position
// estimate. It converges fast for constant-velocity targets and is only an
// approximation for targets that turn or accelerate mid-flight; that is a
// known limitation, not a bug.
type Aiming struct {
	targeting *Targeting
	pos       vec.Vec3

	facing          vec.Vec3 // unit direction
	turnSpeed       float64  // radians per second
	tolerance       float64  // radians
	projectileSpeed float64  // <= 0 means no lead prediction
	yawOnly         bool

	aimPoint vec.Vec3
}

func NewAiming(targeting *Targeting, pos vec.Vec3, turnSpeedRad, projectileSpeed float64, yawOnly bool) *Aiming {
	return &Aiming{
		targeting:       targeting,
		pos:             pos,
		facing:          vec.Vec3{Z: 1},
		turnSpeed:       turnSpeedRad,
		tolerance:       config.AimToleranceDeg * math.Pi / 180,
		projectileSpeed: projectileSpeed,
		yawOnly:         yawOnly,
	}
}

// AimPoint is the position last computed for the current target, lead
// prediction included.
func (a *Aiming) AimPoint() vec.Vec3 { return a.aimPoint }

// Facing is the turret's current direction.
func (a *Aiming) Facing() vec.Vec3 { return a.facing }

func (a *Aiming) Update(dt float64) {
	target := a.targeting.Current()
	if target == nil {
		return
	}
	a.aimPoint = a.predict(target)
	desired := a.aimDir()
	if desired == vec.Zero {
		return
	}
	a.facing = vec.RotateToward(a.facing, desired, a.turnSpeed*dt)
}

// Aimed reports whether the angle between the turret facing and the aim
// direction is below tolerance. Always false without a target.
func (a *Aiming) Aimed() bool {
	if a.targeting.Current() == nil {
		return false
	}
	desired := a.aimDir()
	if desired == vec.Zero {
		return true
	}
	return a.facing.AngleTo(desired) <= a.tolerance
}

func (a *Aiming) aimDir() vec.Vec3 {
	to := a.aimPoint.Sub(a.pos)
	if a.yawOnly {
		to = to.Flat()
	}
	return to.Norm()
}

func (a *Aiming) predict(entry *TargetEntry) vec.Vec3 {
	targetPos := entry.Target.AimPoint()
	if a.projectileSpeed <= 0 {
		// Instantaneous or misconfigured speed: aim at the current position
		// instead of dividing by zero.
		return targetPos
	}
	velocity := entry.Target.Velocity()
	if velocity.LenSq() < negligibleSpeedSq {
		return targetPos
	}

	estimate := targetPos
	for i := 0; i < config.AimLeadIterations; i++ {
		timeToHit := estimate.Dist(a.pos) / a.projectileSpeed
		if timeToHit > config.AimMaxLeadTime {
			timeToHit = config.AimMaxLeadTime
		}
		estimate = targetPos.Add(velocity.Scale(timeToHit))
	}
	return estimate
}
