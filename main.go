package main

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"d20_bucket_lab/sim"
)

const (
	sceneWidth  = 1000
	sceneHeight = 600

	barChartWidth  = 200 // left-side region reserved for the bar chart
	diceAreaMargin = 40
	leftBarX       = 50
	rightBarX      = sceneWidth - 200
	barBottom      = 550

	dieTextSize = 18
)

var (
	bgColor   = color.RGBA{30, 30, 30, 255}
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	lowColor  = color.RGBA{50, 150, 255, 255}
	highColor = color.RGBA{255, 100, 100, 255}
)

type mainThreadRunner interface {
	RunOnMain(func())
}

type mainThreadCaller interface {
	CallOnMainThread(func())
}

func runOnMain(d fyne.Driver, fn func()) {
	switch drv := d.(type) {
	case mainThreadRunner:
		drv.RunOnMain(fn)
	case mainThreadCaller:
		drv.CallOnMainThread(fn)
	default:
		fn()
	}
}

// dieView is the pair of canvas objects drawing one die: a bordered white
// square and its centered face value.
type dieView struct {
	box  *canvas.Rectangle
	face *canvas.Text
}

// scene holds every canvas object the ticker loop refreshes each frame.
type scene struct {
	root fyne.CanvasObject

	dice []dieView

	lowBar    *canvas.Rectangle
	highBar   *canvas.Rectangle
	lowLabel  *canvas.Text
	highLabel *canvas.Text

	banner *canvas.Text
}

func buildScene(cfg sim.Config, s *sim.Simulation) *scene {
	background := canvas.NewRectangle(bgColor)
	background.SetMinSize(fyne.NewSize(sceneWidth, sceneHeight))
	background.Resize(fyne.NewSize(sceneWidth, sceneHeight))

	objects := []fyne.CanvasObject{background}

	// Bar chart on the left, teacher-style absolute placement.
	lowTitle := canvas.NewText(fmt.Sprintf("Low Rolls (1-%d)", cfg.LowThreshold), white)
	lowTitle.TextSize = dieTextSize
	lowTitle.Move(fyne.NewPos(leftBarX-10, 10))
	highTitle := canvas.NewText(fmt.Sprintf("High Rolls (%d-%d)", cfg.LowThreshold+1, cfg.Sides), white)
	highTitle.TextSize = dieTextSize
	highTitle.Move(fyne.NewPos(rightBarX-20, 10))
	objects = append(objects, lowTitle, highTitle)

	lowBar := canvas.NewRectangle(lowColor)
	lowBar.Move(fyne.NewPos(leftBarX, barBottom))
	highBar := canvas.NewRectangle(highColor)
	highBar.Move(fyne.NewPos(rightBarX, barBottom))
	objects = append(objects, lowBar, highBar)

	lowLabel := canvas.NewText("", white)
	lowLabel.TextSize = dieTextSize
	lowLabel.Move(fyne.NewPos(leftBarX, barBottom+10))
	highLabel := canvas.NewText("", white)
	highLabel.TextSize = dieTextSize
	highLabel.Move(fyne.NewPos(rightBarX, barBottom+10))
	objects = append(objects, lowLabel, highLabel)

	// Dice grid on the right, centered vertically.
	gridHeight := float32(cfg.Rows)*cfg.DieSize + float32(cfg.Rows-1)*cfg.Spacing
	gridStartX := float32(barChartWidth + diceAreaMargin)
	gridStartY := (sceneHeight - gridHeight) / 2

	textHeight := float32(dieTextSize) * 1.2
	dice := make([]dieView, 0, len(s.Dice))
	for _, d := range s.Dice {
		box := canvas.NewRectangle(white)
		box.StrokeColor = black
		box.StrokeWidth = 2
		box.Move(fyne.NewPos(gridStartX+d.X, gridStartY+d.Y))
		box.Resize(fyne.NewSize(d.Size, d.Size))

		face := canvas.NewText(strconv.Itoa(d.Value), black)
		face.TextSize = dieTextSize
		face.Alignment = fyne.TextAlignCenter
		face.Move(fyne.NewPos(gridStartX+d.X, gridStartY+d.Y+(d.Size-textHeight)/2))
		face.Resize(fyne.NewSize(d.Size, textHeight))

		objects = append(objects, box, face)
		dice = append(dice, dieView{box: box, face: face})
	}

	banner := canvas.NewText(fmt.Sprintf("Simulation finished (%d rolls reached)", cfg.MaxRolls), white)
	banner.TextSize = dieTextSize
	banner.Alignment = fyne.TextAlignCenter
	banner.Move(fyne.NewPos(0, 15))
	banner.Resize(fyne.NewSize(sceneWidth, textHeight))
	banner.Hide()
	objects = append(objects, banner)

	return &scene{
		root:      container.NewWithoutLayout(objects...),
		dice:      dice,
		lowBar:    lowBar,
		highBar:   highBar,
		lowLabel:  lowLabel,
		highLabel: highLabel,
		banner:    banner,
	}
}

// refresh redraws every dynamic object from the current simulation state.
// Must run on the main thread.
func (sc *scene) refresh(cfg sim.Config, s *sim.Simulation) {
	for i, d := range s.Dice {
		v := sc.dice[i]
		if text := strconv.Itoa(d.Value); v.face.Text != text {
			v.face.Text = text
			v.face.Refresh()
		}
	}

	st := s.Stats()
	lowHeight := sim.BarHeight(st.Low, cfg.MaxRolls, cfg.BarMaxHeight)
	highHeight := sim.BarHeight(st.High, cfg.MaxRolls, cfg.BarMaxHeight)

	sc.lowBar.Move(fyne.NewPos(leftBarX, barBottom-lowHeight))
	sc.lowBar.Resize(fyne.NewSize(cfg.BarWidth, lowHeight))
	sc.lowBar.Refresh()
	sc.highBar.Move(fyne.NewPos(rightBarX, barBottom-highHeight))
	sc.highBar.Resize(fyne.NewSize(cfg.BarWidth, highHeight))
	sc.highBar.Refresh()

	sc.lowLabel.Text = fmt.Sprintf("1-%d: %d", cfg.LowThreshold, st.Low)
	sc.lowLabel.Refresh()
	sc.highLabel.Text = fmt.Sprintf("%d-%d: %d", cfg.LowThreshold+1, cfg.Sides, st.High)
	sc.highLabel.Refresh()

	if s.Phase() == sim.Finished {
		sc.banner.Show()
	} else {
		sc.banner.Hide()
	}
}

// lab is the shared mutable state between the ticker goroutine and the
// UI callbacks: the current simulation run.
type lab struct {
	current *sim.Simulation
}

func main() {
	cfg, err := sim.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	a := app.New()
	w := a.NewWindow("d20 Bucket Convergence Lab")

	l := &lab{current: sim.New(cfg, time.Now())}
	sc := buildScene(cfg, l.current)

	expectedLow := float64(cfg.LowThreshold) / float64(cfg.Sides) * 100
	statusLabel := widget.NewLabel(fmt.Sprintf("Rolling to %d (expected split %.0f%% / %.0f%%)",
		cfg.MaxRolls, expectedLow, 100-expectedLow))
	eventLog := widget.NewLabel("Log: waiting for rolls...")
	eventLog.Wrapping = fyne.TextWrapWord

	restartButton := widget.NewButton("↻ Restart", func() {
		fresh := sim.New(cfg, time.Now())
		l.current = fresh
		sc.refresh(cfg, fresh)
		statusLabel.SetText("Restarted")
	})

	bottom := container.NewVBox(
		statusLabel,
		restartButton,
		widget.NewSeparator(),
		eventLog,
	)

	w.SetContent(container.NewBorder(nil, bottom, nil, nil, sc.root))
	w.Resize(fyne.NewSize(sceneWidth, sceneHeight+180))
	w.CenterOnScreen()

	driver := a.Driver()

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer ticker.Stop()

		for range ticker.C {
			s := l.current
			if s.Phase() == sim.Active {
				s.Step(time.Now())
			}

			st := s.Stats()
			statusText := fmt.Sprintf("Simulation finished (%d rolls reached) - Low %d / High %d",
				st.Rolls, st.Low, st.High)
			if s.Phase() == sim.Active {
				statusText = fmt.Sprintf("Rolls %d/%d - Low %d (%.1f%%) - High %d (%.1f%%)",
					st.Rolls, cfg.MaxRolls, st.Low, st.LowShare*100, st.High, st.HighShare*100)
			}

			eventText := ""
			events := s.Events()
			for i := len(events) - 1; i >= 0 && i >= len(events)-3; i-- {
				e := events[i]
				eventText += fmt.Sprintf("[%d] %s: %s\n", e.Rolls, e.Type, e.Message)
			}

			runOnMain(driver, func() {
				sc.refresh(cfg, s)
				statusLabel.SetText(statusText)
				eventLog.SetText(eventText)
			})
		}
	}()

	w.ShowAndRun()
}
