package widget_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/clock/mocks"
	"github.com/KirkDiggler/dicetray/internal/common/random"
	uuidMocks "github.com/KirkDiggler/dicetray/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/dicetray/internal/dice/mocks"
	"github.com/KirkDiggler/dicetray/internal/geometry"
	geometryMocks "github.com/KirkDiggler/dicetray/internal/geometry/mocks"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/orientation"
	"github.com/KirkDiggler/dicetray/internal/services/widget"
	widgetMocks "github.com/KirkDiggler/dicetray/internal/services/widget/mocks"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WidgetServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockClock      *mocks.MockClock
	mockTimer      *mocks.MockTimer
	mockDiceRoller *diceMocks.MockRoller
	mockUUID       *uuidMocks.MockUUID
	mockRenderer   *widgetMocks.MockRenderer
	configurator   *geometry.Cache
	widgetService  widget.Service
	ctx            context.Context

	// settle holds the callback handed to the clock by the last roll
	settle func()

	testDieID string
}

func (s *WidgetServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockTimer = mocks.NewMockTimer(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockRenderer = widgetMocks.NewMockRenderer(s.mockCtrl)
	s.configurator = geometry.NewCache()
	s.ctx = context.Background()
	s.settle = nil

	s.testDieID = "test-die-id"
	s.mockUUID.EXPECT().NewUUID().Return(s.testDieID)

	svc, err := widget.New(&widget.Config{
		Configurator:  s.configurator,
		DiceRoller:    s.mockDiceRoller,
		Random:        random.New(7),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Renderer:      s.mockRenderer,
	})
	s.Require().NoError(err)
	s.widgetService = svc
}

func (s *WidgetServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWidgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WidgetServiceTestSuite))
}

// expectSettleTimer captures the settle callback instead of waiting on a real timer
func (s *WidgetServiceTestSuite) expectSettleTimer() {
	s.mockClock.EXPECT().
		AfterFunc(widget.DefaultSettleDelay, gomock.Any()).
		DoAndReturn(func(d time.Duration, f func()) clock.Timer {
			s.settle = f
			return s.mockTimer
		})
}

func (s *WidgetServiceTestSuite) state() *widget.GetStateOutput {
	out, err := s.widgetService.GetState(s.ctx, &widget.GetStateInput{})
	s.Require().NoError(err)
	return out
}

func (s *WidgetServiceTestSuite) tick() *widget.Frame {
	out, err := s.widgetService.Tick(s.ctx, &widget.TickInput{Delta: time.Second / 60})
	s.Require().NoError(err)
	return out.Frame
}

func (s *WidgetServiceTestSuite) TestNewStartsAtRestShowingOne() {
	out := s.state()

	s.Equal(s.testDieID, out.DieID)
	s.Equal(models.RollState{SelectedDie: models.D6, Result: 1}, out.State)
	s.Equal(models.InstructionIdle, out.Instruction)
	s.False(out.Settled)
}

func (s *WidgetServiceTestSuite) TestNewValidatesConfig() {
	base := func() *widget.Config {
		return &widget.Config{
			Configurator:  s.configurator,
			DiceRoller:    s.mockDiceRoller,
			Random:        random.New(1),
			Clock:         s.mockClock,
			UUIDGenerator: s.mockUUID,
		}
	}

	tests := []struct {
		name     string
		mutate   func(cfg *widget.Config)
		expected error
	}{
		{"configurator", func(cfg *widget.Config) { cfg.Configurator = nil }, widget.ErrNilConfigurator},
		{"dice roller", func(cfg *widget.Config) { cfg.DiceRoller = nil }, widget.ErrNilDiceRoller},
		{"random", func(cfg *widget.Config) { cfg.Random = nil }, widget.ErrNilRandom},
		{"clock", func(cfg *widget.Config) { cfg.Clock = nil }, widget.ErrNilClock},
		{"uuid", func(cfg *widget.Config) { cfg.UUIDGenerator = nil }, widget.ErrNilUUIDGenerator},
		{"settle delay", func(cfg *widget.Config) { cfg.SettleDelay = -time.Second }, widget.ErrInvalidSettleDelay},
		{"die kind", func(cfg *widget.Config) { cfg.DefaultDie = models.DieKind(20) }, widget.ErrInvalidDieKind},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := base()
			tt.mutate(cfg)

			_, err := widget.New(cfg)
			s.ErrorIs(err, tt.expected)
		})
	}

	_, err := widget.New(nil)
	s.ErrorIs(err, widget.ErrNilConfig)
}

func (s *WidgetServiceTestSuite) TestRollStartsSpinning() {
	s.expectSettleTimer()

	out, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})

	s.Require().NoError(err)
	s.True(out.Started)
	s.Equal(models.RollState{SelectedDie: models.D6, IsRolling: true}, out.State)
	s.False(out.State.HasResult())
	s.Equal(models.InstructionRolling, s.state().Instruction)
	s.NotNil(s.settle)
}

func (s *WidgetServiceTestSuite) TestRollWhileRollingIsIgnored() {
	s.expectSettleTimer()
	_, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.Require().NoError(err)

	// a second AfterFunc call would fail the mock controller
	out, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})

	s.Require().NoError(err)
	s.False(out.Started)
	s.Equal(models.RollState{SelectedDie: models.D6, IsRolling: true}, out.State)
}

func (s *WidgetServiceTestSuite) TestSettleLandsResult() {
	s.expectSettleTimer()
	_, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.Require().NoError(err)

	s.mockDiceRoller.EXPECT().Roll(6).Return(4)
	s.settle()

	out := s.state()
	s.Equal(models.RollState{SelectedDie: models.D6, Result: 4}, out.State)
	s.Equal(models.InstructionIdle, out.Instruction)

	// the callback only lands once
	s.settle()
	s.Equal(4, s.state().State.Result)
}

func (s *WidgetServiceTestSuite) TestTickDrivesPhasesAndRenders() {
	var rendered []*widget.Frame
	s.mockRenderer.EXPECT().RenderFrame(gomock.Any()).Do(func(frame *widget.Frame) {
		rendered = append(rendered, frame)
	}).AnyTimes()

	frame := s.tick()
	s.Equal(uint64(1), frame.Tick)
	s.Equal(orientation.StateSettling, frame.Phase)
	s.Equal(s.testDieID, frame.DieID)
	s.Equal(models.D6, frame.Kind)
	s.Len(frame.Labels, 6)
	s.NotNil(frame.Mesh)
	s.Equal(time.Second/60, frame.Delta)

	s.expectSettleTimer()
	_, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.Require().NoError(err)

	frame = s.tick()
	s.Equal(orientation.StateSpinning, frame.Phase)
	s.Equal(models.InstructionRolling, frame.Instruction)

	s.mockDiceRoller.EXPECT().Roll(6).Return(2)
	s.settle()

	for i := 0; i < 300; i++ {
		frame = s.tick()
	}
	s.Equal(orientation.StateSettling, frame.Phase)
	s.Equal(2, frame.Roll.Result)
	s.True(s.state().Settled)

	shown := frame.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
	s.Less(shown.Sub(geometry.ViewerAxis).Len(), 1e-6, "face 2 points at %v", shown)

	s.Len(rendered, 302)
	s.Same(frame, rendered[len(rendered)-1])
}

func (s *WidgetServiceTestSuite) TestSelectDieResets() {
	s.mockUUID.EXPECT().NewUUID().Return("test-die-id-2")

	out, err := s.widgetService.SelectDie(s.ctx, &widget.SelectDieInput{Kind: models.D10})

	s.Require().NoError(err)
	s.Equal("test-die-id-2", out.DieID)
	s.Equal(models.RollState{SelectedDie: models.D10, Result: 1}, out.State)
	s.Len(out.Faces, 10)
	s.False(out.CancelledRoll)
	s.Equal("test-die-id-2", s.state().DieID)
}

func (s *WidgetServiceTestSuite) TestSelectDieCancelsRollInFlight() {
	s.expectSettleTimer()
	_, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.Require().NoError(err)

	s.mockTimer.EXPECT().Stop().Return(true)
	s.mockUUID.EXPECT().NewUUID().Return("test-die-id-2")

	out, err := s.widgetService.SelectDie(s.ctx, &widget.SelectDieInput{Kind: models.D4})

	s.Require().NoError(err)
	s.True(out.CancelledRoll)
	s.Equal(models.RollState{SelectedDie: models.D4, Result: 1}, out.State)

	// a timer that fired before Stop must not overwrite the reset; the roller is never consulted
	s.settle()
	s.Equal(models.RollState{SelectedDie: models.D4, Result: 1}, s.state().State)

	// a fresh roll works on the new die
	s.expectSettleTimer()
	started, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.Require().NoError(err)
	s.True(started.Started)

	s.mockDiceRoller.EXPECT().Roll(4).Return(3)
	s.settle()
	s.Equal(models.RollState{SelectedDie: models.D4, Result: 3}, s.state().State)
}

func (s *WidgetServiceTestSuite) TestSelectDieRejectsUnsupportedKind() {
	_, err := s.widgetService.SelectDie(s.ctx, &widget.SelectDieInput{Kind: models.DieKind(12)})
	s.ErrorIs(err, widget.ErrInvalidDieKind)

	_, err = s.widgetService.SelectDie(s.ctx, nil)
	s.ErrorIs(err, widget.ErrNilInput)

	s.Equal(models.D6, s.state().State.SelectedDie)
}

func (s *WidgetServiceTestSuite) TestNilInputsAreRejected() {
	_, err := s.widgetService.Roll(s.ctx, nil)
	s.ErrorIs(err, widget.ErrNilInput)

	_, err = s.widgetService.GetState(s.ctx, nil)
	s.ErrorIs(err, widget.ErrNilInput)

	_, err = s.widgetService.Tick(s.ctx, nil)
	s.ErrorIs(err, widget.ErrNilInput)

	// a rejected roll schedules nothing
	s.False(s.state().State.IsRolling)
}

func (s *WidgetServiceTestSuite) TestCloseCancelsPendingRoll() {
	s.expectSettleTimer()
	_, err := s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.Require().NoError(err)

	s.mockTimer.EXPECT().Stop().Return(false)
	s.Require().NoError(s.widgetService.Close())
	s.Require().NoError(s.widgetService.Close())

	s.settle()

	_, err = s.widgetService.Roll(s.ctx, &widget.RollInput{})
	s.ErrorIs(err, widget.ErrWidgetClosed)
	_, err = s.widgetService.Tick(s.ctx, &widget.TickInput{})
	s.ErrorIs(err, widget.ErrWidgetClosed)
	_, err = s.widgetService.GetState(s.ctx, &widget.GetStateInput{})
	s.ErrorIs(err, widget.ErrWidgetClosed)
}

func (s *WidgetServiceTestSuite) TestSelectDieAsksConfigurator() {
	mockConfigurator := geometryMocks.NewMockConfigurator(s.mockCtrl)
	set := geometry.Build(models.D8)

	mockConfigurator.EXPECT().Configure(models.D6).Return(geometry.Build(models.D6).Mesh, geometry.Build(models.D6).Faces)
	mockConfigurator.EXPECT().Labels(models.D6).Return(nil)
	s.mockUUID.EXPECT().NewUUID().Return("configured-die")

	svc, err := widget.New(&widget.Config{
		Configurator:  mockConfigurator,
		DiceRoller:    s.mockDiceRoller,
		Random:        random.New(3),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	mockConfigurator.EXPECT().Configure(models.D8).Return(set.Mesh, set.Faces)
	mockConfigurator.EXPECT().Labels(models.D8).Return(set.Labels)
	s.mockUUID.EXPECT().NewUUID().Return("configured-die-2")

	out, err := svc.SelectDie(s.ctx, &widget.SelectDieInput{Kind: models.D8})
	s.Require().NoError(err)
	s.Equal(set.Faces, out.Faces)

	tick, err := svc.Tick(s.ctx, &widget.TickInput{})
	s.Require().NoError(err)
	s.Same(set.Mesh, tick.Frame.Mesh)
	s.Equal(set.Labels, tick.Frame.Labels)
}
