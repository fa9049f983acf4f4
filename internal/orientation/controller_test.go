package orientation

import (
	"math"
	"testing"

	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/common/random/mocks"
	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ControllerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *mocks.MockSource
	faces      []models.Face
	controller *Controller

	rolling models.RollState
	idle    models.RollState
}

func (s *ControllerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = mocks.NewMockSource(s.mockCtrl)
	s.faces = geometry.Build(models.D6).Faces

	gomock.InOrder(
		s.mockRandom.EXPECT().Float64().Return(0.0),
		s.mockRandom.EXPECT().Float64().Return(0.5),
		s.mockRandom.EXPECT().Float64().Return(0.75),
	)

	controller, err := New(&Config{
		ID:     "test-die-id",
		Kind:   models.D6,
		Faces:  s.faces,
		Random: s.mockRandom,
	})
	s.Require().NoError(err)
	s.controller = controller

	s.rolling = models.RollState{SelectedDie: models.D6, IsRolling: true}
	s.idle = models.RollState{SelectedDie: models.D6}
}

func (s *ControllerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) settled(result int) models.RollState {
	return models.RollState{SelectedDie: models.D6, Result: result}
}

func (s *ControllerTestSuite) TestNewDrawsSpinOnce() {
	s.Equal("test-die-id", s.controller.ID())
	s.Equal(models.D6, s.controller.Kind())
	s.True(near(s.controller.Spin(), mgl64.Vec3{0.1, 0.2, 0.25}, 1e-12))
	s.Equal(StateIdle, s.controller.State())
	s.True(quatNear(s.controller.Orientation(), mgl64.QuatIdent(), 1e-12))

	// spin stays fixed; the mock would fail on another draw
	s.controller.Step(s.rolling)
	s.controller.Step(s.rolling)
	s.True(near(s.controller.Spin(), mgl64.Vec3{0.1, 0.2, 0.25}, 1e-12))
}

func (s *ControllerTestSuite) TestSpinningAccumulatesEulerAngles() {
	s.Equal(StateSpinning, s.controller.Step(s.rolling))
	s.True(quatNear(s.controller.Orientation(), QuatFromEuler(s.controller.Spin()), 1e-12))

	for i := 0; i < 9; i++ {
		s.controller.Step(s.rolling)
	}

	expected := QuatFromEuler(s.controller.Spin().Mul(10))
	s.Less(AngleBetween(expected, s.controller.Orientation()), 1e-9)
}

func (s *ControllerTestSuite) TestIdleLeavesPoseAlone() {
	s.controller.Step(s.rolling)
	before := s.controller.Orientation()

	s.Equal(StateIdle, s.controller.Step(s.idle))

	s.Equal(before, s.controller.Orientation())
}

func (s *ControllerTestSuite) TestSettlingClosesTenPercentPerTick() {
	// face 1 is +x, a quarter turn away from the viewer
	target, _ := TargetRotation(s.faces, 1)
	before := AngleBetween(s.controller.Orientation(), target)
	s.InDelta(math.Pi/2, before, 1e-9)

	s.Equal(StateSettling, s.controller.Step(s.settled(1)))

	s.InDelta(0.9*before, AngleBetween(s.controller.Orientation(), target), 1e-9)
}

func (s *ControllerTestSuite) TestSettlingConverges() {
	for i := 0; i < 20; i++ {
		s.controller.Step(s.rolling)
	}
	s.False(s.controller.Settled(s.rolling, 1e-3))

	for i := 0; i < 300; i++ {
		s.controller.Step(s.settled(5))
	}

	s.True(s.controller.Settled(s.settled(5), 1e-6))
	shown := s.controller.Orientation().Rotate(mgl64.Vec3{0, -1, 0})
	s.True(near(shown, geometry.ViewerAxis, 1e-6), "face 5 points at %v", shown)
}

func (s *ControllerTestSuite) TestSpinResumesFromSettledPose() {
	for i := 0; i < 300; i++ {
		s.controller.Step(s.settled(2))
	}
	settled := s.controller.Orientation()

	s.controller.Step(s.rolling)

	expected := QuatFromEuler(EulerFromQuat(settled).Add(s.controller.Spin()))
	s.Less(AngleBetween(expected, s.controller.Orientation()), 1e-9)
}

func (s *ControllerTestSuite) TestSettledWithoutResult() {
	s.False(s.controller.Settled(s.idle, 1))
}

func (s *ControllerTestSuite) TestNewValidatesConfig() {
	source := random.New(1)

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Kind: models.D6, Faces: s.faces})
	s.ErrorIs(err, ErrNilRandom)

	_, err = New(&Config{Kind: models.DieKind(7), Faces: s.faces, Random: source})
	s.ErrorIs(err, ErrInvalidDieKind)

	_, err = New(&Config{Kind: models.D6, Random: source})
	s.ErrorIs(err, ErrNoFaces)

	_, err = New(&Config{Kind: models.D6, Faces: s.faces, Random: source, StepFraction: 1.5})
	s.ErrorIs(err, ErrBadStepFraction)
}

func TestEveryFaceSettlesTowardViewer(t *testing.T) {
	for _, kind := range models.Kinds() {
		faces := geometry.Build(kind).Faces
		for _, f := range faces {
			controller, err := New(&Config{Kind: kind, Faces: faces, Random: random.New(int64(f.Value))})
			if err != nil {
				t.Fatal(err)
			}

			for i := 0; i < 15; i++ {
				controller.Step(models.RollState{SelectedDie: kind, IsRolling: true})
			}
			settled := models.RollState{SelectedDie: kind, Result: f.Value}
			for i := 0; i < 300; i++ {
				controller.Step(settled)
			}

			shown := controller.Orientation().Rotate(f.Normal)
			if !near(shown, geometry.ViewerAxis, 1e-5) {
				t.Errorf("%s face %d settled facing %v", kind, f.Value, shown)
			}
		}
	}
}
