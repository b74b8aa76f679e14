package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gochip8/pkg/chip8"
	"gochip8/pkg/display"
	"gochip8/pkg/peripherals"
	"gochip8/pkg/rom"
)

const scale = 8

// keyMap maps the conventional host keyboard layout
//
//	1 2 3 4        1 2 3 C
//	Q W E R   to   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// onto the 16-key hex pad.
var keyMap = map[ebiten.Key]uint8{
	ebiten.Key1: 0x1, ebiten.Key2: 0x2, ebiten.Key3: 0x3, ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

type Game struct {
	vm     *chip8.Interpreter
	screen *display.Buffer
	keys   *peripherals.Keypad
	beeper peripherals.Beeper

	stepsPerFrame int
	screenImg     *ebiten.Image // reused 64x32 canvas

	// fatalErr is set when the core reports a content error; the VM pauses
	// but the window stays alive showing the last frame.
	fatalErr error
}

func (g *Game) Update() error {
	g.keys.ReleaseAll()
	for key, pad := range keyMap {
		if ebiten.IsKeyPressed(key) {
			g.keys.Press(pad)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		name := fmt.Sprintf("screenshot-%d.png", time.Now().Unix())
		if err := g.screen.SaveScreenshot(name, scale); err != nil {
			log.Printf("screenshot failed: %v", err)
		} else {
			log.Printf("saved %s", name)
		}
	}

	if g.fatalErr == nil {
		for i := 0; i < g.stepsPerFrame; i++ {
			if err := g.vm.Step(); err != nil {
				g.fatalErr = err
				log.Printf("vm halted: %v", err)
				break
			}
		}
	}

	g.vm.Tick(time.Now())
	g.beeper.Frame(g.vm.ST > 0)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screenImg == nil {
		g.screenImg = ebiten.NewImage(display.Width, display.Height)
	}
	g.screenImg.WritePixels(g.screen.RGBA())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.screenImg, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return display.Width * scale, display.Height * scale
}

func main() {
	ips := flag.Int("ips", 700, "interpreter instructions per second")
	wavPath := flag.String("wav", "", "record beep audio to the given WAV file")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: desktop [options] <rom file>")
	}

	program, err := rom.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load ROM: %v", err)
	}

	screen := display.New()
	keys := peripherals.NewKeypad()
	vm := chip8.New(screen, keys)
	if err := vm.Load(program); err != nil {
		log.Fatalf("failed to load program: %v", err)
	}

	var beeper peripherals.Beeper = peripherals.NullBeeper{}
	if *wavPath != "" {
		rec, err := peripherals.NewWavRecorder(*wavPath, 44100)
		if err != nil {
			log.Fatalf("failed to open WAV recorder: %v", err)
		}
		defer rec.Close()
		beeper = rec
	}

	ebiten.SetWindowSize(display.Width*scale, display.Height*scale)
	ebiten.SetWindowTitle("gochip8")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{
		vm:            vm,
		screen:        screen,
		keys:          keys,
		beeper:        beeper,
		stepsPerFrame: *ips / 60,
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
