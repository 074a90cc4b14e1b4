package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/control/action"
	"github.com/ja-he/timeruler/internal/control/gesture"
	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/layout"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/storage"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/ui/panes"
)

const (
	// a drag ending later than this after its last motion does not fling
	flingWindow = 100 * time.Millisecond

	wheelCells       = 3
	wheelZoomFactor  = 1.25
	keyZoomFactor    = 2
	pageFlingPerCell = 4
)

// dragState tracks a mouse drag on the ruler or the cards.
type dragState struct {
	active   bool
	moved    bool
	last     float64
	lastTime time.Time
	velocity float64
}

// Controller is the TUI controller. It owns the ruler's gesture controller
// and serializes all screen events, animation frames and renders onto the
// goroutine calling Run.
type Controller struct {
	data     *control.ControlData
	rootPane *panes.RootPane

	cfg              config.Config
	loc              *time.Location
	provider         storage.ScheduleProvider
	sunTimesProvider *model.SunTimesProvider

	geometry   *panes.Geometry
	cardsPane  *panes.CardsPane
	cardLayout *layout.CardLayout

	ruler *gesture.Controller
	drag  dragState

	helpContent input.Help

	controllerEvents chan controllerEvent
	animationStop    chan struct{}
	quit             bool

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller showing the given date.
func NewController(
	date model.Date,
	envData control.EnvData,
	cfg config.Config,
	stylesheet styling.Stylesheet,
	categories *styling.CategoryStyling,
	provider storage.ScheduleProvider,
	screenHandler *tui.ScreenHandler,
	loc *time.Location,
) (*Controller, error) {
	orientation, err := ui.ParseOrientation(cfg.Ruler.Orientation)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		data:             control.NewControlData(date, envData),
		cfg:              cfg,
		loc:              loc,
		provider:         provider,
		controllerEvents: make(chan controllerEvent, 32),

		screenEvents:      screenHandler.GetEventPollable(),
		initializedScreen: screenHandler,
		syncer:            screenHandler,
	}

	c.sunTimesProvider, err = envData.SunTimesProvider()
	if err != nil {
		log.Warn().Err(err).Msg("not showing sun times")
	}

	c.geometry = &panes.Geometry{
		Orientation:      orientation,
		BaselineFraction: cfg.Ruler.BaselinePosition,
		Screen:           screenHandler.Dimensions,
	}
	c.cardLayout = layout.NewCardLayout(orientation, c.geometry.Baseline(), cfg.Cards.Width, cfg.Cards.Margin)

	view := func() panes.RulerView { return c.ruler }
	schedules := func() []*model.Schedule { return c.data.Schedules }
	selected := func() *model.Schedule { return c.data.Selected }

	rulerPane := panes.NewRulerPane(
		ui.NewConstrainedRenderer(screenHandler, c.geometry.RulerDims),
		c.geometry,
		stylesheet,
		view,
		func() *model.SunTimes { return c.data.SunTimes },
		loc,
	)
	c.cardsPane = panes.NewCardsPane(
		ui.NewConstrainedRenderer(screenHandler, c.geometry.CardsDims),
		c.geometry,
		stylesheet,
		categories,
		view,
		c.cardLayout,
		schedules,
		selected,
	)
	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(screenHandler, c.geometry.StatusDims),
		c.geometry.StatusDims,
		stylesheet,
		func() model.Date { return c.data.CurrentDate },
		func() panes.StatusSource { return c.ruler },
		selected,
		potatolog.GlobalMemoryLogReaderWriter,
		loc,
	)

	overlayDims := func() (x, y, w, h int) {
		_, _, sw, sh := screenHandler.Dimensions()
		return sw / 8, sh / 8, sw - sw/4, sh - sh/4
	}
	perfDims := func() (x, y, w, h int) {
		_, _, sw, _ := screenHandler.Dimensions()
		return max(sw-60, 0), 0, min(60, sw), 2
	}
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(screenHandler, overlayDims),
		overlayDims,
		stylesheet,
		func() bool { return c.data.ShowHelp },
		func() input.Help { return c.helpContent },
	)
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(screenHandler, overlayDims),
		overlayDims,
		stylesheet,
		func() bool { return c.data.ShowLog },
		func() string { return "LOG" },
		potatolog.GlobalMemoryLogReaderWriter,
	)
	perfPane := panes.NewPerfPane(
		ui.NewConstrainedRenderer(screenHandler, perfDims),
		perfDims,
		func() bool { return c.data.ShowDebug },
		&c.data.RenderTimes,
		&c.data.EventProcessingTimes,
	)

	inputTree, err := input.ConstructInputTreeFromConfig(cfg.Keys, c.actions())
	if err != nil {
		return nil, fmt.Errorf("could not construct key mappings (%w)", err)
	}

	c.rootPane = panes.NewRootPane(
		screenHandler,
		screenHandler.Dimensions,
		[]ui.Pane{rulerPane, c.cardsPane, statusPane},
		[]ui.Pane{logPane, helpPane, perfPane},
		input.NewOverlays(inputTree),
	)

	if err := c.loadDay(date); err != nil {
		return nil, err
	}

	return c, nil
}

// actions returns all actions keys can be mapped to.
func (c *Controller) actions() map[input.Actionspec]action.Action {
	return map[input.Actionspec]action.Action{
		"scroll-forward":   action.New("scroll forward one tick", func() { c.scrollTicks(1) }),
		"scroll-backward":  action.New("scroll backward one tick", func() { c.scrollTicks(-1) }),
		"fling-forward":    action.New("fling forward", func() { c.flingPage(1) }),
		"fling-backward":   action.New("fling backward", func() { c.flingPage(-1) }),
		"scroll-to-start":  action.New("scroll to start of day", func() { c.ruler.ScrollToStart() }),
		"scroll-to-end":    action.New("scroll to end of day", func() { c.ruler.ScrollToEnd() }),
		"zoom-in":          action.New("zoom in", func() { c.zoom(keyZoomFactor) }),
		"zoom-out":         action.New("zoom out", func() { c.zoom(1.0 / keyZoomFactor) }),
		"previous-day":     action.New("go to previous day", func() { c.switchDay(c.data.CurrentDate.Prev()) }),
		"next-day":         action.New("go to next day", func() { c.switchDay(c.data.CurrentDate.Next()) }),
		"select-at-cursor": action.New("select card at cursor", c.selectAtCursor),
		"clear-selection":  action.New("clear selection", func() { c.data.Selected = nil }),
		"toggle-help":      action.New("show help", c.showHelp),
		"toggle-log":       action.New("toggle log", func() { c.data.ShowLog = !c.data.ShowLog }),
		"toggle-perf":      action.New("toggle performance info", func() { c.data.ShowDebug = !c.data.ShowDebug }),
		"quit":             action.New("exit program", func() { c.quit = true }),
	}
}

// loadDay replaces the ruler by one for the given date, keeping the zoom and
// the cursor's time of day of the previous one.
func (c *Controller) loadDay(date model.Date) error {
	domain, err := dayDomain(c.cfg, date, c.loc)
	if err != nil {
		return err
	}
	ruler, err := newRuler(c.cfg, domain)
	if err != nil {
		return err
	}

	c.stopAnimation()
	c.drag = dragState{}

	if c.ruler == nil {
		// one unit spans twice the minimal tick space
		zoomTo(ruler, 2*c.cfg.Ruler.MinTickSpace/float64(domain.Unit))
		if now := model.Millis(time.Now()); domain.Contains(now) {
			ruler.ScrollTo(now)
		}
	} else {
		prev := c.ruler.Snapshot()
		zoomTo(ruler, prev.UnitPixel)
		ruler.ScrollTo(domain.Start + (prev.CursorTime - c.ruler.Domain().Start))
	}

	ruler.SetRedrawRequester(c.requestRender)
	ruler.SetHitTester(c.cardsPane)
	ruler.SetSelectionListener(c.selectSchedule)
	c.ruler = ruler

	c.data.CurrentDate = date
	c.data.Selected = nil
	c.data.SunTimes = nil
	if c.sunTimesProvider != nil {
		sunTimes := c.sunTimesProvider.Get(date, c.loc)
		c.data.SunTimes = &sunTimes
	}

	schedules, err := storage.SchedulesForDomain(c.provider, domain)
	if err != nil {
		log.Error().Err(err).Str("date", date.ToString()).Msg("could not load schedules")
	}
	c.data.Schedules = schedules

	log.Debug().Str("date", date.ToString()).Int("schedules", len(schedules)).Msg("loaded day")
	c.requestRender()
	return nil
}

func (c *Controller) switchDay(date model.Date) {
	if err := c.loadDay(date); err != nil {
		log.Error().Err(err).Str("date", date.ToString()).Msg("could not switch day")
	}
}

func (c *Controller) selectSchedule(s *model.Schedule) {
	c.data.Selected = s
	log.Info().Stringer("schedule", s).Msg("selected")
}

// selectAtCursor taps the middle of the card band on the cursor line.
func (c *Controller) selectAtCursor() {
	extent := c.geometry.Extent()
	mapper := c.ruler.Mapper(extent)
	band := c.cardLayout.Band(extent)

	var s *model.Schedule
	if c.geometry.Orientation == ui.Horizontal {
		s = c.ruler.Tap(mapper.CursorPixel, (band.Top+band.Bottom)/2)
	} else {
		s = c.ruler.Tap((band.Left+band.Right)/2, mapper.CursorPixel)
	}
	if s == nil {
		log.Debug().Msg("no card at cursor")
	}
}

func (c *Controller) scrollTicks(n int64) {
	c.ruler.ScrollTo(c.ruler.Snapshot().CursorTime + n*c.ruler.Domain().Unit)
}

func (c *Controller) scrollCells(n float64) {
	snapshot := c.ruler.Snapshot()
	c.ruler.ScrollTo(snapshot.CursorTime + int64(n/snapshot.UnitPixel))
}

// flingPage flings towards the domain end (direction 1) or start (-1).
func (c *Controller) flingPage(direction float64) {
	c.ruler.PointerDown()
	c.ruler.Fling(-direction * pageFlingPerCell * c.geometry.Extent())
	c.startAnimation()
}

const helpOverlay = "help"

func (c *Controller) showHelp() {
	c.helpContent = c.rootPane.GetHelp()
	c.data.ShowHelp = true

	closeHelp := action.New("close help", func() {
		c.data.ShowHelp = false
		if err := c.rootPane.PopOverlay(helpOverlay); err != nil {
			log.Error().Err(err).Msg("could not pop help overlay")
		}
	})
	helpTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"?":     closeHelp,
		"<esc>": closeHelp,
	})
	if err != nil {
		log.Error().Err(err).Msg("could not construct help input tree")
		c.data.ShowHelp = false
		return
	}
	if err := c.rootPane.PushOverlay(helpOverlay, helpTree); err != nil {
		log.Error().Err(err).Msg("could not show help")
		c.data.ShowHelp = false
	}
}

// handleScreenEvent handles a screen event that occurred at the given time.
func (c *Controller) handleScreenEvent(ev tcell.Event, now time.Time) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.rootPane.ProcessInput(input.KeyFromTcellEvent(e))
	case *tcell.EventMouse:
		c.handleMouseEvent(e, now)
	case *tcell.EventResize:
		c.syncer.NeedsSync()
	}
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse, now time.Time) {
	x, y := e.Position()
	c.data.CursorPos = ui.MouseCursorPos{X: x, Y: y}
	main := float64(c.geometry.MainCell(x, y))
	buttons := e.Buttons()

	// a drag continues regardless of the pane under the pointer
	if c.drag.active {
		if buttons&tcell.Button1 != 0 {
			c.dragTo(main, now)
		} else {
			c.endDrag(x, y, now)
		}
		return
	}

	switch buttons {
	case tcell.Button1:
		switch c.rootPane.GetPositionInfo(x, y).(type) {
		case *ui.RulerPanePositionInfo, *ui.CardsPanePositionInfo:
			c.beginDrag(main, now)
		}
	case tcell.WheelUp, tcell.WheelLeft:
		if e.Modifiers()&tcell.ModCtrl != 0 {
			c.zoom(wheelZoomFactor)
		} else {
			c.scrollCells(-wheelCells)
		}
	case tcell.WheelDown, tcell.WheelRight:
		if e.Modifiers()&tcell.ModCtrl != 0 {
			c.zoom(1 / wheelZoomFactor)
		} else {
			c.scrollCells(wheelCells)
		}
	}
}

// zoom stops a running fling and zooms by the given factor.
func (c *Controller) zoom(factor float64) {
	c.stopAnimation()
	zoomBy(c.ruler, factor)
}

func (c *Controller) beginDrag(main float64, now time.Time) {
	c.stopAnimation()
	c.ruler.PointerDown()
	c.drag = dragState{active: true, last: main, lastTime: now}
}

func (c *Controller) dragTo(main float64, now time.Time) {
	if main == c.drag.last {
		return
	}
	if dt := now.Sub(c.drag.lastTime).Seconds(); dt > 0 {
		c.drag.velocity = 0.5*c.drag.velocity + 0.5*(main-c.drag.last)/dt
	}
	c.ruler.Scroll(c.drag.last-main, 1)
	c.drag.moved = true
	c.drag.last = main
	c.drag.lastTime = now
}

func (c *Controller) endDrag(x, y int, now time.Time) {
	d := c.drag
	c.drag = dragState{}

	if !d.moved {
		if c.ruler.Tap(float64(x)+.5, float64(y)+.5) == nil {
			c.data.Selected = nil
		}
		c.ruler.PointerUp()
		return
	}

	if now.Sub(d.lastTime) < flingWindow && math.Abs(d.velocity) >= gesture.DefaultMinVelocity {
		c.ruler.Fling(d.velocity)
		c.startAnimation()
		return
	}
	c.ruler.PointerUp()
}

// startAnimation starts sending animation tick events at the frame rate
// until stopAnimation is called.
func (c *Controller) startAnimation() {
	if c.animationStop != nil {
		return
	}
	stop := make(chan struct{})
	c.animationStop = stop

	go func() {
		ticker := time.NewTicker(gesture.FrameStep)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case c.controllerEvents <- controllerEvent{kind: controllerEventAnimationTick}:
				case <-stop:
					return
				}
			}
		}
	}()
}

func (c *Controller) stopAnimation() {
	if c.animationStop == nil {
		return
	}
	close(c.animationStop)
	c.animationStop = nil
}

func (c *Controller) animationTick() {
	if !c.ruler.AnimationTick() {
		c.stopAnimation()
	}
}

// requestRender requests a render without blocking; a render already
// pending suffices.
func (c *Controller) requestRender() {
	select {
	case c.controllerEvents <- controllerEvent{kind: controllerEventRender}:
	default:
	}
}

type controllerEventKind int

const (
	controllerEventExit controllerEventKind = iota
	controllerEventRender
	controllerEventScreen
	controllerEventAnimationTick
)

type controllerEvent struct {
	kind   controllerEventKind
	screen tcell.Event
}

// Empties all render events from the channel.
// Returns the other events encountered, in order, and true if an exit event
// was encountered so the caller knows to exit.
func emptyRenderEvents(c chan controllerEvent) ([]controllerEvent, bool) {
	var pending []controllerEvent
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent.kind {
			case controllerEventRender:
				// dump extra render events
			case controllerEventExit:
				return pending, true
			default:
				pending = append(pending, bufferedEvent)
			}
		default:
			return pending, false
		}
	}
}

// handle handles a single controller event and returns whether to go on.
func (c *Controller) handle(ev controllerEvent) bool {
	switch ev.kind {
	case controllerEventExit:
		return false
	case controllerEventRender:
	case controllerEventScreen:
		start := time.Now()
		c.handleScreenEvent(ev.screen, start)
		c.data.EventProcessingTimes.Add(uint64(time.Since(start).Microseconds()))
	case controllerEventAnimationTick:
		c.animationTick()
	default:
		log.Error().Int("kind", int(ev.kind)).Msg("unhandled controller event")
	}
	return !c.quit
}

func (c *Controller) render() {
	start := time.Now()
	c.rootPane.Draw()
	c.data.RenderTimes.Add(uint64(time.Since(start).Microseconds()))
}

// Run runs the controller until the user quits or the screen is finalized.
func (c *Controller) Run() {
	log.Info().Msg("timeruler TUI started")
	defer c.stopAnimation()
	defer c.initializedScreen.Fini()

	// Run the event polling loop, forwarding screen events to the controller.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				c.controllerEvents <- controllerEvent{kind: controllerEventExit}
				return
			}
			c.controllerEvents <- controllerEvent{kind: controllerEventScreen, screen: ev}
		}
	}()

	c.render()
	for ev := range c.controllerEvents {
		if !c.handle(ev) {
			return
		}

		// handle everything else that came up before rendering once
		pending, exit := emptyRenderEvents(c.controllerEvents)
		if exit {
			return
		}
		for _, p := range pending {
			if !c.handle(p) {
				return
			}
		}

		c.render()
	}
}
