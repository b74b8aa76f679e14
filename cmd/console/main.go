// Command console runs a CHIP-8 program headless: a bounded number of
// instructions against a simulated 60 Hz frame clock, with optional
// screenshot and beep-audio capture at the end of the run.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/retroenv/retrogolib/log"

	"gochip8/pkg/chip8"
	"gochip8/pkg/display"
	"gochip8/pkg/peripherals"
	"gochip8/pkg/rom"
)

type options struct {
	steps      int
	ips        int
	screenshot string
	scale      int
	wavPath    string
	debug      bool
	quiet      bool
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func readArguments() (options, string) {
	opts := options{}
	flag.IntVar(&opts.steps, "steps", 200000, "maximum number of instructions to execute")
	flag.IntVar(&opts.ips, "ips", 700, "interpreter instructions per second")
	flag.StringVar(&opts.screenshot, "screenshot", "", "write the final screen to the given PNG file")
	flag.IntVar(&opts.scale, "scale", 8, "screenshot upscaling factor")
	flag.StringVar(&opts.wavPath, "wav", "", "record beep audio to the given WAV file")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.BoolVar(&opts.quiet, "q", false, "perform operations quietly")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: console [options] <rom file>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	return opts, flag.Arg(0)
}

func main() {
	opts, romFile := readArguments()
	logger := createLogger(opts.debug, opts.quiet)

	if err := run(logger, opts, romFile); err != nil {
		logger.Error("Execution failed", log.Err(err))
		os.Exit(1)
	}
}

func run(logger *log.Logger, opts options, romFile string) error {
	program, err := rom.Load(romFile)
	if err != nil {
		return err
	}
	logger.Info("Loaded ROM",
		log.String("file", romFile),
		log.String("bytes", strconv.Itoa(len(program))))

	screen := display.New()
	keys := peripherals.NewKeypad()
	vm := chip8.New(screen, keys)
	if err := vm.Load(program); err != nil {
		return err
	}

	var beeper peripherals.Beeper = peripherals.NullBeeper{}
	if opts.wavPath != "" {
		rec, err := peripherals.NewWavRecorder(opts.wavPath, 44100)
		if err != nil {
			return err
		}
		defer rec.Close()
		beeper = rec
	}

	// The frame clock is simulated; the core only ever sees these explicit
	// timestamps, which keeps runs reproducible.
	const frame = time.Second / 60
	now := time.Unix(0, 0)
	vm.Tick(now)

	stepsPerFrame := opts.ips / 60
	executed := 0
	for executed < opts.steps {
		for i := 0; i < stepsPerFrame && executed < opts.steps; i++ {
			if err := vm.Step(); err != nil {
				logger.Debug("Final state",
					log.String("pc", fmt.Sprintf("0x%03X", vm.PC)),
					log.String("executed", strconv.Itoa(executed)))
				return err
			}
			executed++
		}
		now = now.Add(frame)
		vm.Tick(now)
		beeper.Frame(vm.ST > 0)
	}

	logger.Info("Run finished", log.String("executed", strconv.Itoa(executed)))

	if opts.screenshot != "" {
		if err := screen.SaveScreenshot(opts.screenshot, opts.scale); err != nil {
			return err
		}
		logger.Info("Saved screenshot", log.String("file", opts.screenshot))
	}
	return nil
}
