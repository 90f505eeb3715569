package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/common"
	"github.com/milk9111/ldplayground/debugdraw"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
)

const (
	// groundSnapFraction of the hip height is where the hips settle above
	// the near foothold.
	groundSnapFraction = 0.95
	flipDeadzone       = 0.1
)

// KineticsContext is everything the solver reads besides the pawn. None of
// it is retained past the call.
type KineticsContext struct {
	Physics   physics.World
	DeltaTime float64
	Platforms []component.MovingPlatform
	Enemies   []component.Enemy
	Hits      []physics.RaycastHit
	Debug     debugdraw.Sink
}

type KineticsResult struct {
	Near           component.Foothold
	Forward        component.Foothold
	OnGround       bool
	JumpStarted    bool
	GroundVelocity cp.Vector
	// BouncedEnemy is the index of the enemy killed by landing on it, or -1.
	BouncedEnemy int
}

// SolvePawnKinetics advances one pawn by one tick: it finds footholds,
// runs the jump/ground state machine and writes the new velocity to the
// pawn's body. Invalid pawns must not be passed in.
func SolvePawnKinetics(ctx KineticsContext, pawn *component.Pawn, input component.PawnInput, params *component.PawnKinematicsParams) KineticsResult {
	result := KineticsResult{BouncedEnemy: -1}
	body := pawn.Body
	dt := ctx.DeltaTime
	debug := ctx.Debug
	if debug == nil {
		debug = debugdraw.Nop{}
	}

	body.SetSimulated(true)

	gravity := ctx.Physics.Gravity().Mult(body.GravityScale())
	gravityDir := common.NormalizeSafe(gravity)
	if gravityDir == (cp.Vector{}) {
		gravityDir = cp.Vector{Y: -1}
	}
	up := gravityDir.Neg()
	right := cp.Vector{X: -gravityDir.Y, Y: gravityDir.X}
	forwardDir := right
	if input.MoveDir.X < 0 {
		forwardDir = right.Neg()
	}
	velocity := body.Velocity()
	moveMagnitude := math.Abs(input.MoveDir.X)
	var energy component.TransformEnergy

	mask := physics.LayerAll
	if input.Fallthrough {
		mask &^= physics.LayerOneWay
	}

	// Two sub-ranges give a ray at both extents and one exactly under the
	// hips.
	var near, forward component.Foothold
	hips := pawn.HipsPosition()
	halfWidth := params.LegReachPawnWidth * 0.5
	scan := FootholdScan{
		Origin:     hips,
		Forward:    forwardDir,
		GravityDir: gravityDir,
		Mask:       mask,
		Self:       pawn.Collider,
		HipsHeight: pawn.HipsHeight,
		MaxSlope:   params.MaxSlope,
		Resolution: params.FootholdRaycastResolution,
	}
	behind := scan
	behind.RangeBehind = halfWidth
	ScanFootholds(ctx.Physics, ctx.Hits, debug, behind, &near, &forward)

	ahead := scan
	ahead.RangeAhead = halfWidth + params.LegReachExtraWhenRunning*moveMagnitude
	ahead.SkipFirstRay = true
	ScanFootholds(ctx.Physics, ctx.Hits, debug, ahead, &near, &forward)

	debug.SetColor(debugdraw.Coral)
	if near.Valid {
		debug.WireCube(near.Position, 0.1)
	}
	if forward.Valid {
		debug.Cube(forward.Position, 0.09)
	}

	var primary component.Foothold
	switch {
	case forward.Valid:
		primary = forward
	case near.Valid:
		primary = near
	}

	var groundVelocity cp.Vector
	if primary.Valid {
		for i := range ctx.Platforms {
			plat := &ctx.Platforms[i]
			if plat.Collider != 0 && plat.Collider == primary.Collider {
				groundVelocity = plat.LastKnownVelocity
				break
			}
		}
	}

	verticalGroundSpeed := groundVelocity.Dot(up)
	verticalSpeed := velocity.Dot(up)
	grip := verticalSpeed-gravity.Length()*dt < verticalGroundSpeed
	onGround := grip && near.Valid && near.RayHitDistance <= pawn.HipsHeight

	// Must run before bounce detection so a bounce and a jump never start
	// on the same tick.
	if pawn.IsJumping && velocity.Dot(gravityDir) >= 0 {
		pawn.IsJumping = false
	}

	jumpStarted := false
	if onGround {
		for i := range ctx.Enemies {
			enemy := &ctx.Enemies[i]
			if enemy.Valid && !enemy.Pawn.Killed && primary.Collider == enemy.Pawn.Collider {
				pawn.IsJumping = true
				jumpStarted = true
				KillPawn(&enemy.Pawn)
				result.BouncedEnemy = i
				energy.Impulse = energy.Impulse.Add(launchImpulse(up, gravity, params.BounceHeight))
				break
			}
		}
	}

	if input.JumpTriggered {
		pawn.TimeSinceJumpTriggered = 0
	} else {
		pawn.TimeSinceJumpTriggered += dt
	}
	if onGround {
		pawn.TimeSinceGrounded = 0
	} else {
		pawn.TimeSinceGrounded += dt
	}

	if !pawn.IsJumping &&
		input.JumpHeld &&
		pawn.TimeSinceJumpTriggered <= params.JumpForgivenessEarly &&
		pawn.TimeSinceGrounded <= params.JumpForgivenessLate {
		pawn.IsJumping = true
		jumpStarted = true
		energy.Impulse = energy.Impulse.Add(launchImpulse(up, gravity, params.JumpHeight))
	}

	desiredDownwardVelocity := groundVelocity
	if !pawn.IsJumping && primary.Valid && grip {
		if moveMagnitude > common.Epsilon {
			var intent cp.Vector
			switch {
			case forward.Valid && near.Valid && near.ForwardDistance != primary.ForwardDistance:
				intent = common.NormalizeSafe(forward.Position.Sub(near.Position))
			case forward.Valid:
				intent = common.NormalizeSafe(forward.Position.Sub(pawn.BottomPosition()))
			default:
				intent = forwardDir
			}
			debug.SetColor(debugdraw.Yellow)
			debug.Ray(hips, intent)

			target := groundVelocity.Add(intent.Mult(moveMagnitude * params.MaxRunSpeed))
			desiredDownwardVelocity = gravityDir.Mult(target.Dot(gravityDir))
			accel := accelTowards(target.Sub(velocity), dt, params.MaxRunAccel)
			// Only push forward and up. Drag slows us and gravity pulls us down.
			accel = forwardDir.Mult(math.Max(0, accel.Dot(forwardDir))).
				Add(up.Mult(math.Max(0, accel.Dot(up))))
			energy.Acceleration = energy.Acceleration.Add(accel)
		}

		lateral := velocity.Sub(groundVelocity).Dot(right)
		passive := 0.0
		if moveMagnitude == 0 {
			passive = params.DragBrakingPassive
		}
		active := 0.0
		if common.Sign(velocity.Dot(right)) != common.Sign(input.MoveDir.X) {
			active = params.DragBrakingReversalHelp * moveMagnitude
		}
		braking := math.Max(passive, active)
		if math.Abs(lateral) > common.Epsilon && dt > 0 {
			// Never brake harder than it takes to stop, or we would reverse.
			momentum := math.Abs(lateral) / dt * body.Mass()
			brake := math.Min(braking, momentum)
			energy.Force = energy.Force.Add(right.Mult(-common.Sign(lateral) * brake))
		}
	}

	if !primary.Valid {
		target := forwardDir.Mult(moveMagnitude * params.AirControlMaxSpeed)
		accel := accelTowards(target.Sub(velocity), dt, params.AirControlMaxAccel)
		energy.Acceleration = energy.Acceleration.Add(forwardDir.Mult(accel.Dot(forwardDir)))
	}

	if onGround {
		lift := near.Position.Sub(hips).Dot(up) + pawn.HipsHeight*groundSnapFraction
		if lift > 0 {
			body.SetPosition(body.Position().Add(up.Mult(lift)))
		}
	}

	if jumpStarted {
		energy.Impulse = energy.Impulse.Add(up.Mult(velocity.Dot(gravityDir)))
	} else if onGround {
		excess := math.Max(0, velocity.Sub(desiredDownwardVelocity).Dot(gravityDir))
		if excess > 0 {
			energy.Impulse = energy.Impulse.Add(up.Mult(excess))
		}
	}

	if speedSq := velocity.LengthSq(); speedSq > 0 {
		drag := velocity.Normalize().Neg().Mult(params.DragAir * 0.5 * speedSq)
		energy.Force = energy.Force.Add(drag)
	}

	newVelocity := velocity.Add(energy.Integrate(body.Mass(), dt))
	body.SetVelocity(newVelocity)

	emitPawnSignals(pawn, input, params, primary, groundVelocity, newVelocity, right, onGround, jumpStarted)
	pawn.OnGroundPrev = onGround

	result.Near = near
	result.Forward = forward
	result.OnGround = onGround
	result.JumpStarted = jumpStarted
	result.GroundVelocity = groundVelocity
	return result
}

func emitPawnSignals(pawn *component.Pawn, input component.PawnInput, params *component.PawnKinematicsParams, primary component.Foothold, groundVelocity, velocity, right cp.Vector, onGround, jumpStarted bool) {
	signals := pawn.Emit()
	moveMagnitude := math.Abs(input.MoveDir.X)

	signals.SetBool(component.ParamGrounded, onGround)
	if jumpStarted {
		signals.SetTrigger(component.ParamJumpStart)
		signals.Play(component.CueJump)
	}
	if params.MaxRunSpeed > 0 {
		relative := velocity.Sub(groundVelocity).Dot(right)
		signals.SetFloat(component.ParamMoveSpeed, math.Abs(relative/params.MaxRunSpeed))
	}
	if onGround && pawn.Footstep.Consume() && moveMagnitude > 0 {
		if primary.GroundMaterial == component.GroundWood {
			signals.Play(component.CueFootstepPlatform)
		} else {
			signals.Play(component.CueFootstep)
		}
	}
	if moveMagnitude > flipDeadzone {
		pawn.FlipX = (input.MoveDir.X < 0) != pawn.SpriteFacingLeft
	}
	if !pawn.OnGroundPrev && onGround {
		if primary.GroundMaterial == component.GroundWood {
			signals.Play(component.CueLandPlatform)
		} else {
			signals.Play(component.CueLand)
		}
	}
}

// launchImpulse is the velocity along up that rises exactly height under
// gravity.
func launchImpulse(up, gravity cp.Vector, height float64) cp.Vector {
	if height <= 0 {
		return cp.Vector{}
	}
	return up.Mult(math.Sqrt(2 * gravity.Length() * height))
}

// accelTowards is the acceleration that closes delta in one tick, capped
// at limit.
func accelTowards(delta cp.Vector, dt, limit float64) cp.Vector {
	if dt <= 0 {
		return cp.Vector{}
	}
	accel := delta.Mult(1 / dt)
	length := accel.Length()
	if length < common.Epsilon {
		return cp.Vector{}
	}
	return accel.Mult(math.Min(length, limit) / length)
}
