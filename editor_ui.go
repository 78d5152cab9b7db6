package main

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// EditorSession is the in-game scene editor: spawn any object at the camera
// center, reparent by name, save and load scenes. Toggled with backquote;
// while open it owns the keyboard.
type EditorSession struct {
	game   *Game
	ui     *ebitenui.UI
	active bool

	saveNameInput    *widget.TextInput
	spawnNameInput   *widget.TextInput
	spawnParentInput *widget.TextInput
	childInput       *widget.TextInput
	parentInput      *widget.TextInput

	setParentBtn *widget.Button
	copyBtn      *widget.Button

	clipboardOK bool
}

func NewEditorSession(g *Game) *EditorSession {
	s := &EditorSession{game: g}
	s.clipboardOK = clipboard.Init() == nil
	s.ui = s.build()
	return s
}

func (s *EditorSession) Active() bool {
	return s.active
}

func (s *EditorSession) Toggle() {
	s.active = !s.active
}

func (s *EditorSession) Update() {
	s.refreshDisabled()
	s.ui.Update()
}

func (s *EditorSession) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}

// refreshDisabled recomputes per-frame button availability.
func (s *EditorSession) refreshDisabled() {
	child := s.childInput.GetText()
	parent := s.parentInput.GetText()
	s.setParentBtn.GetWidget().Disabled = child == "" || parent == "" || child == parent
	s.copyBtn.GetWidget().Disabled = !s.clipboardOK || s.saveNameInput.GetText() == ""
}

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func (s *EditorSession) build() *ebitenui.UI {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	panelImg := solidNineSlice(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := solidNineSlice(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(s.label("Scene", &face))
	s.saveNameInput = s.textInput(&face)
	s.saveNameInput.SetText("demo")
	panel.AddChild(s.saveNameInput)
	panel.AddChild(s.sceneButtons(&face, btnImg, btnTextColor))

	panel.AddChild(s.label("Spawn (name / parent optional)", &face))
	s.spawnNameInput = s.textInput(&face)
	panel.AddChild(s.spawnNameInput)
	s.spawnParentInput = s.textInput(&face)
	panel.AddChild(s.spawnParentInput)
	panel.AddChild(s.spawnButtons(&face, btnImg, btnTextColor))

	panel.AddChild(s.label("Set parent (child / parent)", &face))
	s.childInput = s.textInput(&face)
	panel.AddChild(s.childInput)
	s.parentInput = s.textInput(&face)
	panel.AddChild(s.parentInput)
	s.setParentBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Set parent", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.game.world.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
				Name:      s.childInput.GetText(),
				NewParent: s.parentInput.GetText(),
			}})
			s.childInput.SetText("")
			s.parentInput.SetText("")
		}),
	)
	panel.AddChild(s.setParentBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func (s *EditorSession) label(text string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)
}

func (s *EditorSession) textInput(face *ebtext.Face) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(face),
	)
}

func (s *EditorSession) sceneButtons(face *ebtext.Face, btnImg *imageui.NineSlice, btnTextColor *widget.ButtonTextColor) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Save", face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.game.world.Events().Push(ecs.Event{Type: ecs.EventSave, Data: component.SaveRequest{
				Filename: s.saveFilename(),
			}})
		}),
	))
	row.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Load", face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.game.world.Events().Push(ecs.Event{Type: ecs.EventLoad, Data: component.LoadRequest{
				Filename: s.saveFilename(),
			}})
		}),
	))

	s.copyBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Copy", face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.copySceneToClipboard()
		}),
	)
	row.AddChild(s.copyBtn)

	return row
}

func (s *EditorSession) spawnButtons(face *ebtext.Face, btnImg *imageui.NineSlice, btnTextColor *widget.ButtonTextColor) *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	for _, obj := range component.AllGameObjects() {
		obj := obj
		grid.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(obj.String(), face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				s.game.world.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
					Object:    obj,
					Name:      s.spawnNameInput.GetText(),
					Parent:    s.spawnParentInput.GetText(),
					Transform: s.spawnTransform(),
				}})
				s.spawnNameInput.SetText("")
				s.spawnParentInput.SetText("")
			}),
		))
	}

	return grid
}

// spawnTransform places new objects at the camera center.
func (s *EditorSession) spawnTransform() component.Transform {
	return component.NewTransform(s.game.camera.X, s.game.camera.Y)
}

func (s *EditorSession) saveFilename() string {
	return s.saveNameInput.GetText() + ".yaml"
}

func (s *EditorSession) copySceneToClipboard() {
	if !s.clipboardOK {
		return
	}
	path := filepath.Join("saves", s.saveFilename())
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("editor: copy %s: %v", path, err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}
