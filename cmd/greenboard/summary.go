package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/greenboard-org/greenboard/state"
	"github.com/greenboard-org/greenboard/views"
)

func newSummaryCmd(flags *rootFlags) *cobra.Command {
	var viewName string
	var captions bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print quick stats and one view of the full dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), flags)
			if err != nil {
				return err
			}

			presenter := newTermPresenter(os.Stdout)
			app := state.New(sess.records, presenter, sess.appOptions(captions)...)

			view := sess.defaultView()
			if viewName != "" {
				view = views.View(viewName)
			}
			if view != app.CurrentView() {
				app.SetView(view)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&viewName, "view", "", "view to show (overview, energy, greenpower, water, geography, age, efficiency)")
	cmd.Flags().BoolVar(&captions, "captions", false, "generate narrative captions (needs GEMINI_API_KEY)")
	return cmd
}
