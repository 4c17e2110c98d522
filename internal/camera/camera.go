package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Follow is a third-person camera orbiting a target at a fixed distance.
// Yaw is measured in degrees from +X towards +Z; negative pitch looks down.
type Follow struct {
	Yaw       float32
	Pitch     float32
	Distance  float32
	LookSpeed float32
	Height    float32 // target offset above the followed position
}

func New() *Follow {
	return &Follow{
		Yaw:       -90.0,
		Pitch:     -35.0,
		Distance:  8.0,
		LookSpeed: 0.2,
		Height:    0.5,
	}
}

// Rotate applies a look delta, e.g. a mouse movement in pixels.
func (c *Follow) Rotate(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed

	// Clamp pitch
	if c.Pitch > -5 {
		c.Pitch = -5
	}
	if c.Pitch < -85 {
		c.Pitch = -85
	}
}

// Directions returns the horizontal forward and right unit vectors.
func (c *Follow) Directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

// Move converts axis input (forward, strafe in -1..1) into a horizontal
// direction relative to the camera. Diagonals are normalized.
func (c *Follow) Move(forwardAxis, rightAxis float32) rl.Vector3 {
	forward, right := c.Directions()
	moveDir := rl.Vector3Add(rl.Vector3Scale(forward, forwardAxis), rl.Vector3Scale(right, rightAxis))

	// Normalize diagonal movement so you don't go faster diagonally
	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 1 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}
	return moveDir
}

func (c *Follow) GetRaylibCamera(target rl.Vector3) rl.Camera3D {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	look := rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	focus := rl.Vector3Add(target, rl.Vector3{Y: c.Height})

	return rl.Camera3D{
		Position:   rl.Vector3Subtract(focus, rl.Vector3Scale(look, c.Distance)),
		Target:     focus,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
