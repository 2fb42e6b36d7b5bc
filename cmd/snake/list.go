package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/jungle"
	"github.com/vovakirdan/tui-snake/internal/render"
)

var listCmd = &cobra.Command{
	Use:       "list [maps|themes|speeds]",
	Short:     "List maps, themes and speeds",
	Long:      `Shows the playable maps, the glyph themes and the frame duration of every speed.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"maps", "themes", "speeds"},
	RunE:      runList,
}

func runList(_ *cobra.Command, args []string) error {
	kind := ""
	if len(args) > 0 {
		kind = args[0]
	}

	if kind == "" || kind == "maps" {
		printMaps(os.Stdout)
	}
	if kind == "" || kind == "themes" {
		printThemes(os.Stdout)
	}
	if kind == "" || kind == "speeds" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printSpeeds(os.Stdout, cfg.Speeds)
	}
	return nil
}

func printMaps(w io.Writer) {
	fmt.Fprintln(w, "Maps:")
	for _, name := range snake.Maps.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintf(w, "  %s (random map, a new one after every hole)\n\n", "<none>")
}

// printThemes shows each theme with a sample: a snake heading right, an
// apple and a wall.
func printThemes(w io.Writer) {
	fmt.Fprintln(w, "Themes:")
	names := render.Themes.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		t, err := render.Themes.Get(name)
		if err != nil {
			continue
		}
		var sample strings.Builder
		for _, e := range []jungle.Entity{
			jungle.Body(core.DirLeft, core.DirRight),
			jungle.FatBody(core.DirLeft, core.DirRight),
			jungle.Head(core.DirRight),
			jungle.Ground,
			jungle.Apple,
			jungle.Ground,
			jungle.Wall,
		} {
			sample.WriteString(t.Glyph(e).Text)
		}
		fmt.Fprintf(w, "  %-*s  %s\n", width, name, sample.String())
	}
	fmt.Fprintln(w)
}

func printSpeeds(w io.Writer, speeds core.SpeedTable) {
	fmt.Fprintln(w, "Speeds:")
	fmt.Fprintf(w, "  %-5s  %8s  %8s\n", "Speed", "Manual", "Autoplay")
	for s := core.MinSpeed; s <= core.MaxSpeed; s++ {
		fmt.Fprintf(w, "  %-5d  %6dms  %6dms\n", s,
			speeds.Frame(s, false).Milliseconds(), speeds.Frame(s, true).Milliseconds())
	}
	fmt.Fprintln(w)
}

// pad right-pads s to n display columns.
func pad(s string, n int) string {
	return runewidth.FillRight(s, n)
}
