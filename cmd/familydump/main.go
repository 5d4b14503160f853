// Command familydump writes the block states of every configured rotatable family to an NBT file, in the layout of
// dragonfly's block_states.nbt.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/rotatable/dfhost"
	"github.com/df-mc/rotatable/family"
	"github.com/df-mc/rotatable/tutorial"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// blockVersion is the block state version of Minecraft 1.21.60.
const blockVersion int32 = 1<<24 | 21<<16 | 60<<8 | 33

type blockState struct {
	Name       string         `nbt:"name"`
	Properties map[string]any `nbt:"states"`
	Version    int32          `nbt:"version"`
}

func main() {
	configPath := flag.String("config", "rotatable.toml", "path of the plugin configuration")
	out := flag.String("out", "rotatable_states.nbt", "path of the NBT file to write")
	flag.Parse()

	if err := run(*configPath, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, out string) error {
	uc, err := tutorial.LoadConfig(configPath)
	if err != nil {
		return err
	}
	level, err := uc.Level()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	conf, err := tutorial.ToConfig(uc, log, dfhost.Base)
	if err != nil {
		return err
	}
	families := make([]*family.Family[world.Block], 0, len(conf.Blocks))
	for _, def := range conf.Blocks {
		f, err := family.Build(def, dfhost.Transform)
		if err != nil {
			return fmt.Errorf("build family %q: %w", def.Name, err)
		}
		families = append(families, f)
	}

	var buf bytes.Buffer
	n, err := dump(&buf, families)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write block states: %w", err)
	}
	log.Info("Wrote block states.", "path", out, "families", len(families), "states", n)
	return nil
}

// dump encodes the state of every variant of the families passed to w and returns the number of states written.
func dump(w io.Writer, families []*family.Family[world.Block]) (int, error) {
	enc := nbt.NewEncoder(w)
	n := 0
	for _, f := range families {
		for _, v := range f.Variants() {
			name, props := v.Block.EncodeBlock()
			if err := enc.Encode(blockState{Name: name, Properties: props, Version: blockVersion}); err != nil {
				return n, fmt.Errorf("encode %v: %w", f.URI(v), err)
			}
			n++
		}
	}
	return n, nil
}
