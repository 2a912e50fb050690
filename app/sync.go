package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/daemon"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/logger"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/gormstore"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/reststore"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/syncer"
)

// Synchronization directions.
const (
	DirectionToLocal  = "to-local"
	DirectionToRemote = "to-remote"
)

func init() { //nolint: gochecknoinits
	syncCmd.Flags().StringVar(
		&syncDirection,
		"direction",
		DirectionToLocal,
		"Synchronization direction: to-local or to-remote",
	)

	syncCmd.Flags().StringVar(
		&configPath,
		"config",
		"",
		"Path to the configuration directory (defaults to ./etc/)",
	)

	rootCmd.AddCommand(syncCmd)
}

var (
	syncDirection string

	syncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Copy media items between the relational and REST backends",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			if cfg.REST.BaseURL == "" {
				return config.ErrRESTBaseURLEmpty
			}

			local := gormstore.New(daemon.OpenDatabase(&cfg.DB)).MediaItems()
			remote := reststore.New(reststore.NewClient(cfg.REST.BaseURL, cfg.REST.ServiceKey)).MediaItems()

			var engine *syncer.Engine

			switch syncDirection {
			case DirectionToLocal:
				engine = syncer.New(remote, local)
			case DirectionToRemote:
				engine = syncer.New(local, remote)
			default:
				return errUnknownDirection
			}

			result, err := engine.Run(cmd.Context())
			if err != nil {
				return err
			}

			log.Info().
				Str("direction", syncDirection).
				Int("attempted", result.Attempted).
				Int("failed", result.Failed).
				Msg("synchronization done")

			return nil
		},
	}
)
