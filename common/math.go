package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis. Forward for an unrotated body is +Z.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// LerpVec3 interpolates componentwise between a and b.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Flatten drops the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalDistance is the distance between a and b on the XZ plane.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(b.X()-a.X(), b.Z()-a.Z())
}

// SafeNormalize returns the unit vector of v, or zero when v is degenerate.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// YawOf returns the heading of a horizontal direction in radians, measured
// from +Z toward +X.
func YawOf(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.X(), dir.Z())
}

// YawRotation builds a rotation about the up axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// LookRotation returns a yaw-only rotation facing dir. A degenerate dir
// yields the identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	flat := Flatten(dir)
	if flat.Len() <= 1e-9 {
		return mgl64.QuatIdent()
	}
	return YawRotation(YawOf(flat))
}

// YawFromRotation extracts the heading of q's forward vector.
func YawFromRotation(q mgl64.Quat) float64 {
	return YawOf(q.Rotate(Forward))
}

// YawOnly strips pitch and roll from q, keeping its heading.
func YawOnly(q mgl64.Quat) mgl64.Quat {
	return YawRotation(YawFromRotation(q))
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	diff := target.Sub(current)
	dist := diff.Len()
	if dist <= maxDelta || dist <= 1e-9 {
		return target
	}
	return current.Add(diff.Mul(maxDelta / dist))
}

// WrapAngle maps an angle into (-π, π].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
