package main

import (
	"time"

	"github.com/spf13/cobra"

	"rollcall/internal/adapters/ingest/canvas"
	"rollcall/internal/modkit"
	"rollcall/internal/modkit/module"
	"rollcall/internal/platform/config"
	"rollcall/internal/platform/logger"

	analysismod "rollcall/internal/services/analysis/module"
	forumdom "rollcall/internal/services/forum/domain"
	forummod "rollcall/internal/services/forum/module"
	msgdom "rollcall/internal/services/messages/domain"
	msgmod "rollcall/internal/services/messages/module"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full analysis pipeline and export reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.New()
			l := logger.Get()

			canvasCfg := root.Prefix("CANVAS_")
			client := canvas.NewClient(canvas.Options{
				BaseURL: canvasCfg.MustString("BASE_URL"),
				Token:   canvasCfg.MustString("TOKEN"),
				Timeout: canvasCfg.MayDuration("TIMEOUT", 30*time.Second),
				PerPage: canvasCfg.MayInt("PER_PAGE", 100),
			})

			deps := modkit.Deps{Cfg: root, Log: *l}
			analysisCfg := root.Prefix("ANALYSIS_")

			var channels analysismod.Channels
			if analysisCfg.MayBool("INCLUDE_FORUMS", true) {
				fm := forummod.New(deps, modkit.WithPorts[forumdom.CoursePort](client))
				module.Register(fm.Name(), fm.Ports())
				channels.Forums = module.MustPortsOf[forummod.Ports](fm).Aggregator
			}
			if analysisCfg.MayBool("INCLUDE_MESSAGES", true) {
				mm := msgmod.New(deps, modkit.WithPorts[msgdom.ConversationsPort](client))
				module.Register(mm.Name(), mm.Ports())
				channels.Messages = module.MustPortsOf[msgmod.Ports](mm).Aggregator
			}

			am := analysismod.New(deps, modkit.WithPorts(channels))
			module.Register(am.Name(), am.Ports())

			ctx, runID := logger.WithRun(cmd.Context())
			l.Info().Str("run_id", runID).Msg("starting analysis")

			runner := module.MustPortsOf[analysismod.Ports](am).Runner
			report, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			l.Info().Int("students", len(report.Graded)).
				Bool("roster_merged", report.RosterMerged).Msg("analysis complete")
			return nil
		},
	}
}
