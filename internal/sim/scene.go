package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene ties the turn sequencer, the aim and the camera together and is
// driven once per frame by a front-end.
type Scene struct {
	Seq    *Sequencer
	Params LaunchParams
	Camera Camera
	Queue  CommandQueue
	Bus    *EventBus

	quit       bool
	rosterSize int
	handles    []MeshHandle
}

func NewScene(rosterSize int, bus *EventBus) *Scene {
	if rosterSize < 1 || rosterSize > MaxRosterSize {
		rosterSize = RosterSize
	}
	return &Scene{
		Seq:        NewSequencer(rosterSize, NewGround(), bus),
		Params:     DefaultLaunchParams(),
		Camera:     NewCamera(),
		Bus:        bus,
		rosterSize: rosterSize,
	}
}

// Quit reports whether a quit command has been applied.
func (s *Scene) Quit() bool { return s.quit }

// Apply reacts to a single command.
func (s *Scene) Apply(c Command) {
	switch c {
	case CmdAngleUp:
		s.Params.AdjustAngle(AngleStep)
	case CmdAngleDown:
		s.Params.AdjustAngle(-AngleStep)
	case CmdPowerUp:
		s.Params.AdjustPower(PowerStep)
	case CmdPowerDown:
		s.Params.AdjustPower(-PowerStep)
	case CmdFire:
		s.Seq.Fire(s.Params)
	case CmdZoomIn:
		s.Camera.ZoomIn()
	case CmdZoomOut:
		s.Camera.ZoomOut()
	case CmdPanLeft:
		s.Camera.PanBy(-PanStep)
	case CmdPanRight:
		s.Camera.PanBy(PanStep)
	case CmdReset:
		s.Seq.Reset(s.rosterSize)
		s.Params = DefaultLaunchParams()
	case CmdQuit:
		s.quit = true
	}
}

// Update applies queued commands, then steps the simulation one frame.
func (s *Scene) Update() {
	s.Queue.Drain(s.Apply)
	s.Seq.Step()
}

// Upload sends every scene mesh to r. Must be called before Render.
func (s *Scene) Upload(r Renderer) error {
	meshes := SceneMeshes()
	s.handles = make([]MeshHandle, len(meshes))
	for i, m := range meshes {
		h, err := r.UploadMesh(m)
		if err != nil {
			return fmt.Errorf("upload %s: %w", m.Name, err)
		}
		s.handles[i] = h
	}
	return nil
}

// Render issues the frame's draw calls: scenery, power bar, then birds.
func (s *Scene) Render(r Renderer) {
	if s.handles == nil {
		return
	}
	r.BeginFrame(s.Camera.ViewProjection())
	for _, p := range scenery {
		r.Draw(s.handles[p.mesh], p.model)
	}
	r.Draw(s.handles[MeshPowerBar], s.PowerBarModel())
	for i := range s.Seq.Birds {
		model := BirdModel(&s.Seq.Birds[i])
		for _, part := range birdParts {
			r.Draw(s.handles[part], model)
		}
	}
}

// PowerBarModel rotates the unit bar by the aim angle and stretches it by power.
func (s *Scene) PowerBarModel() mgl32.Mat4 {
	return transform(PowerBarX, PowerBarY, s.Params.Angle, s.Params.Power, 1)
}

func BirdModel(p *Projectile) mgl32.Mat4 {
	return mgl32.Translate3D(p.Pos[0], p.Pos[1], 0)
}

// Status is a one-line summary for window titles and HUDs.
func (s *Scene) Status() string {
	return fmt.Sprintf("Angle %.0f°  Power %.1f  Birds %d/%d  %s",
		s.Params.Angle, s.Params.Power, s.Seq.Remaining(), len(s.Seq.Birds), s.Seq.State)
}
