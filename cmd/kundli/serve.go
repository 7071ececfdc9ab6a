package main

import (
	"github.com/spf13/cobra"

	"github.com/phrazzld/kundli-api/internal/app"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := c.load(cmd)
			if err != nil {
				return err
			}
			a, err := app.New(cfg, l)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}

	cmd.Flags().Int("port", 0, "listen port")
	cmd.Flags().Float64("rate-limit", 0, "inbound requests per second per client")
	mustBind(c.v, cmd.Flags(), map[string]string{
		"server.port":       "port",
		"server.rate_limit": "rate-limit",
	})
	return cmd
}
