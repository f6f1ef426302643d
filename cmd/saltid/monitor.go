package main

import (
	"time"

	"github.com/sarchlab/saltid"
	"github.com/sarchlab/saltid/monitoring"
	"github.com/spf13/cobra"
)

var monitorPort int
var monitorOpen bool

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Serve the state of a demo allocation workload over HTTP.",
	Long: "`monitor` draws a few partitions from a fresh registry, keeps " +
		"minting from them, and serves registry and generator state over " +
		"HTTP until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		registry := saltid.NewRegistry()

		m := monitoring.NewMonitor()
		if monitorPort != 0 {
			m.WithPortNumber(monitorPort)
		}
		m.RegisterRegistry(registry)

		generators := make([]*saltid.Generator, 4)
		for i := range generators {
			generators[i] = registry.NextGenerator()
			m.RegisterGenerator(generators[i])
		}

		m.StartServer()

		if monitorOpen {
			m.OpenDashboard()
		}

		for {
			for _, g := range generators {
				g.Next()
			}

			time.Sleep(time.Millisecond)
		}
	},
}

func init() {
	monitorCmd.Flags().IntVar(&monitorPort, "port", 0,
		"port to serve on (random when unset)")
	monitorCmd.Flags().BoolVar(&monitorOpen, "open", false,
		"open the generator list in the default browser")

	rootCmd.AddCommand(monitorCmd)
}
