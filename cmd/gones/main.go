// Command gones runs an iNES ROM in an ebiten window.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/coalblack/gones/cartridge"
	"github.com/coalblack/gones/console"
	"github.com/coalblack/gones/mappers"
	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
)

var romFile = flag.String("nes_rom", "", "path to the iNES ROM to run")

func main() {
	flag.Parse()
	defer glog.Flush()

	data, err := os.ReadFile(*romFile)
	if err != nil {
		glog.Fatalf("reading ROM: %v", err)
	}

	cart, err := cartridge.Load(data)
	if err != nil {
		glog.Fatalf("parsing ROM: %v", err)
	}

	m, err := mappers.New(cart)
	if err != nil {
		glog.Fatalf("building mapper: %v", err)
	}

	nes := console.New(m)

	ebiten.SetWindowSize(512, 480)
	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := nes.Run(ctx); err != nil {
			glog.Errorf("emulation stopped: %v", err)
		}
	}()

	if err := ebiten.RunGame(nes); err != nil {
		glog.Fatalf("ebiten.RunGame: %v", err)
	}
}
