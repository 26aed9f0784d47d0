package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/painel-bi/pkg/config"
	"github.com/jhoicas/painel-bi/pkg/logger"
)

// env configuración y logger compartidos por los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "painelctl",
		Short: "Herramientas de operación del Painel BI",
		Long: `painelctl exporta los reportes del painel sin pasar por la API,
emite tokens de desarrollo y prepara la configuración inicial de una empresa.

Lee la misma configuración que el servidor (.env y variables de entorno).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr}).Component("painelctl")
			return nil
		},
	}
	root.AddCommand(newExportCmd(e), newTokenCmd(e), newSeedConfigCmd(e))
	return root
}
