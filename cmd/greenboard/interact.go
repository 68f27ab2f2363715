package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greenboard-org/greenboard/engine"
	"github.com/greenboard-org/greenboard/export"
	"github.com/greenboard-org/greenboard/state"
	"github.com/greenboard-org/greenboard/views"
)

const interactHelp = `commands:
  view <name>             switch view (overview energy greenpower water geography age efficiency)
  dept <name>             toggle a department filter
  type <name>             toggle a property-type filter
  city <name>             select a city ("city" alone clears)
  years <min> <max>       year-built range (0 = open bound)
  energy <min> <max>      site energy range in kBtu
  area <min> <max>        floor area range in sqft
  leed any|certified|not  certification filter
  green <bin>             green-power bin (e.g. "1-25%"; "green" alone clears)
  search <text>           free-text search (debounced)
  click <chartID> <n>     click element n of a chart from the current view
  reset                   clear all filters
  pct                     toggle percentage labels
  hide <label>            de-emphasize or restore one legend label
  compare add <id> | rm <id> | clear | mode | show
  export csv|json [file]  export the active set
  show                    reprint the current view
  quit`

func newInteractCmd(flags *rootFlags) *cobra.Command {
	var captions bool

	cmd := &cobra.Command{
		Use:   "interact",
		Short: "Drive the dashboard from a line-oriented prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), flags)
			if err != nil {
				return err
			}

			presenter := newTermPresenter(os.Stdout)
			app := state.New(sess.records, presenter, sess.appOptions(captions)...)
			if v := sess.defaultView(); v != app.CurrentView() {
				app.SetView(v)
			}

			fmt.Println(interactHelp)
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					return nil
				}
				runInteractLine(app, sess, presenter, line)
			}
		},
	}

	cmd.Flags().BoolVar(&captions, "captions", false, "generate narrative captions (needs GEMINI_API_KEY)")
	return cmd
}

func runInteractLine(app *state.App, sess *session, presenter *termPresenter, line string) {
	fields := strings.Fields(line)
	verb, rest := fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch verb {
	case "help":
		fmt.Println(interactHelp)
	case "view":
		app.SetView(views.View(rest))
	case "dept":
		app.ToggleDepartment(rest)
	case "type":
		app.TogglePropertyType(rest)
	case "city":
		app.SetCity(rest)
	case "years":
		min, max := boundPair(fields)
		app.SetYearRange(int(min), int(max))
	case "energy":
		min, max := boundPair(fields)
		app.SetEnergyRange(min, max)
	case "area":
		min, max := boundPair(fields)
		app.SetAreaRange(min, max)
	case "leed":
		switch rest {
		case "certified":
			app.SetLEED(engine.LEEDCertifiedOnly)
		case "not":
			app.SetLEED(engine.LEEDNotCertified)
		default:
			app.SetLEED(engine.LEEDAny)
		}
	case "green":
		app.SetGreenPowerBin(rest)
	case "search":
		app.Search(rest)
	case "click":
		runClick(app, presenter, fields)
	case "reset":
		app.ResetFilters()
	case "pct":
		app.TogglePercentages()
	case "hide":
		app.ToggleHiddenLabel(rest)
	case "compare":
		runCompare(app, presenter, fields)
	case "export":
		runExport(app, sess, presenter, fields)
	case "show":
		app.SetView(app.CurrentView())
	default:
		presenter.Notify(fmt.Sprintf("unknown command %q (try help)", verb))
	}
}

func runClick(app *state.App, presenter *termPresenter, fields []string) {
	if len(fields) < 3 {
		presenter.Notify("usage: click <chartID> <element index>")
		return
	}
	spec, ok := presenter.chartByID(fields[1])
	if !ok {
		presenter.Notify(fmt.Sprintf("no chart %q in the current view", fields[1]))
		return
	}
	index, err := strconv.Atoi(fields[2])
	if err != nil {
		presenter.Notify(fmt.Sprintf("element index %q is not a number", fields[2]))
		return
	}
	app.HandleClick(spec, index)
}

func runCompare(app *state.App, presenter *termPresenter, fields []string) {
	if len(fields) < 2 {
		presenter.Notify("usage: compare add <id> | rm <id> | clear | mode | show")
		return
	}
	switch fields[1] {
	case "add":
		if len(fields) >= 3 {
			app.AddCompare(fields[2])
		}
	case "rm":
		if len(fields) >= 3 {
			app.RemoveCompare(fields[2])
		}
	case "clear":
		app.ClearCompare()
	case "mode":
		app.ToggleCompareMode()
	case "show":
		presenter.PresentComparison(app.Comparison())
	default:
		presenter.Notify("usage: compare add <id> | rm <id> | clear | mode | show")
	}
}

func runExport(app *state.App, sess *session, presenter *termPresenter, fields []string) {
	if len(fields) < 2 {
		presenter.Notify("usage: export csv|json [file]")
		return
	}
	format := export.Format(fields[1])
	filename := "active." + fields[1]
	if len(fields) >= 3 {
		filename = fields[2]
	}
	mime := export.MIMECSV
	if format == export.FormatJSON {
		mime = export.MIMEJSON
	}

	var buf bytes.Buffer
	if err := export.Write(app.Active(), format, &buf); err != nil {
		if errors.Is(err, export.ErrEmptyDataset) {
			presenter.Notify("Nothing to export: no buildings match the current filters.")
			return
		}
		presenter.Notify(fmt.Sprintf("export failed: %v", err))
		return
	}

	sink := export.Sink{Dir: sess.cfg.ExportDir, Logger: slog.Default()}
	path, err := sink.Download(buf.Bytes(), filename, mime)
	if err != nil {
		presenter.Notify(fmt.Sprintf("export failed: %v", err))
		return
	}
	presenter.Notify(fmt.Sprintf("exported %d records to %s", len(app.Active()), path))
}

// boundPair parses "<verb> <min> <max>" leniently: bad numbers fall back to
// open bounds instead of blocking the filter update.
func boundPair(fields []string) (float64, float64) {
	var min, max float64
	if len(fields) >= 2 {
		min = engine.SanitizeBound(fields[1])
	}
	if len(fields) >= 3 {
		max = engine.SanitizeBound(fields[2])
	}
	return min, max
}
