package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/api"
	"github.com/schedsim/schedsim/sim"
)

var port int // HTTP listen port

// serveCmd exposes the kernel over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := initCommand(cmd)
		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg.Quantum))
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("Listening on %s (round-robin quantum %d)", addr, cfg.Quantum)
		logrus.Fatal(app.Listen(addr))
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", defaultPort, "HTTP listen port")
	serveCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Default round-robin time quantum for requests that omit it")

	rootCmd.AddCommand(serveCmd)
}
