package raylib

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/services/widget"
)

const (
	cameraDistance = 6.0

	// hitRadius is the world-space radius that counts as clicking the die
	hitRadius = 1.3

	// labels whose facing has less than this toward the camera are hidden
	labelVisibility = 0.25

	labelFontSize   = 28
	overlayFontSize = 20

	// bobHeight and bobSpeed shape the ambient float while the die is not rolling
	bobHeight = 0.08
	bobSpeed  = 1.5
)

var (
	backgroundColor = rl.NewColor(24, 24, 32, 255)
	dieColor        = rl.NewColor(196, 32, 48, 255)
	edgeColor       = rl.NewColor(90, 10, 20, 255)
	labelColor      = rl.RayWhite
	overlayColor    = rl.LightGray

	lightDirection = mgl64.Vec3{-0.4, 0.6, 1}.Normalize()
)

// RenderFrame draws the die of a frame; it is called by the widget inside the frame loop
func (h *Host) RenderFrame(frame *widget.Frame) {
	if frame == nil || frame.Mesh == nil {
		return
	}

	offset := mgl64.Vec3{}
	if !frame.Roll.IsRolling {
		offset = mgl64.Vec3{0, bobHeight * math.Sin(rl.GetTime()*bobSpeed), 0}
	}
	place := func(v mgl64.Vec3) mgl64.Vec3 {
		return frame.Orientation.Rotate(v).Add(offset)
	}

	rl.BeginMode3D(h.camera)
	drawMesh(frame.Mesh, frame.Orientation, place)
	rl.EndMode3D()

	h.drawLabels(frame.Labels, frame.Orientation, place)
}

func drawMesh(mesh *models.DieMesh, pose mgl64.Quat, place func(mgl64.Vec3) mgl64.Vec3) {
	for i, t := range mesh.Triangles {
		a := place(mesh.Positions[t[0]])
		b := place(mesh.Positions[t[1]])
		c := place(mesh.Positions[t[2]])

		normal := pose.Rotate(mesh.TriangleNormal(i))
		rl.DrawTriangle3D(toVector3(a), toVector3(b), toVector3(c), shade(dieColor, normal))

		rl.DrawLine3D(toVector3(a), toVector3(b), edgeColor)
		rl.DrawLine3D(toVector3(b), toVector3(c), edgeColor)
		rl.DrawLine3D(toVector3(c), toVector3(a), edgeColor)
	}
}

func (h *Host) drawLabels(labels []models.LabelTransform, pose mgl64.Quat, place func(mgl64.Vec3) mgl64.Vec3) {
	for _, label := range labels {
		facing := pose.Mul(label.Rotation).Rotate(geometry.LabelAxis)
		if facing.Z() < labelVisibility {
			continue
		}

		text := fmt.Sprint(label.Value)
		// 6 and 9 read the same upside down
		if label.Value == 6 || label.Value == 9 {
			text += "."
		}

		screen := rl.GetWorldToScreen(toVector3(place(label.Position)), h.camera)
		width := rl.MeasureText(text, labelFontSize)
		rl.DrawText(text, int32(screen.X)-width/2, int32(screen.Y)-labelFontSize/2, labelFontSize, labelColor)
	}
}

// drawOverlay writes the instruction and the die picker hint
func (h *Host) drawOverlay(frame *widget.Frame) {
	if frame == nil {
		return
	}

	width := rl.MeasureText(frame.Instruction, overlayFontSize)
	rl.DrawText(frame.Instruction, (h.config.Width-width)/2, h.config.Height-2*overlayFontSize, overlayFontSize, overlayColor)

	status := fmt.Sprintf("%s  [4] D4  [6] D6  [8] D8  [0] D10", frame.Kind)
	if frame.Roll.HasResult() {
		status = fmt.Sprintf("%s  rolled %d", status, frame.Roll.Result)
	}
	rl.DrawText(status, overlayFontSize, overlayFontSize, overlayFontSize, overlayColor)
}

// shade applies a lambert term with a floor so faces turned away stay visible
func shade(base rl.Color, normal mgl64.Vec3) rl.Color {
	intensity := 0.35 + 0.65*math.Max(0, normal.Dot(lightDirection))
	return rl.NewColor(
		uint8(float64(base.R)*intensity),
		uint8(float64(base.G)*intensity),
		uint8(float64(base.B)*intensity),
		base.A,
	)
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}
