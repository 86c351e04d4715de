package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jtestard/pointer-pong/pong"
	"golang.org/x/image/font"
)

// Game drives the pong world from the ebiten frame clock.
type Game struct {
	world *pong.World
	input *pong.InputHandler
	bind  *inputBinding
	face  font.Face
}

const (
	windowWidth  = 800
	windowHeight = 400
)

// NewGame creates an initializes a new game
func NewGame() *Game {
	g := &Game{}
	g.init()
	return g
}

func (g *Game) init() {
	field := pong.Field{Width: windowWidth, Height: windowHeight}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g.world = pong.NewWorld(pong.DefaultConfig(), field, rng)
	g.input = pong.NewInputHandler()
	g.bind = newInputBinding(g.input)

	face, err := loadHUDFont()
	if err != nil {
		fmt.Println("hud font unavailable, using debug print:", err)
		return
	}
	g.face = face
}

// Update advances the world by one frame
func (g *Game) Update() error {
	g.bind.poll()
	g.world.Tick(g.input)
	return nil
}

// Draw renders the current world
func (g *Game) Draw(screen *ebiten.Image) {
	pong.Render(screenSurface{img: screen}, g.world)

	if g.face == nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
		return
	}
	drawHUD(screen, g.face)
}

// Layout sets the screen layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	fmt.Println("bootstraping new game...")
	g := NewGame()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("pong")

	fmt.Println("starting the game...")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Errorf("run game: %w", err))
	}
}
