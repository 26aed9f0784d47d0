package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
	"github.com/jhoicas/painel-bi/internal/infrastructure/postgres"
)

func newSeedConfigCmd(e *env) *cobra.Command {
	var companyID, target string
	cmd := &cobra.Command{
		Use:   "seed-config",
		Short: "Crea la tabla de configuración y las claves iniciales de una empresa",
		Long: `Solo aplica con CONFIG_BACKEND=postgres. Crea config_entries si no existe
e inserta META, ANIMACAO_META y CODIGOS_RAPIDOS con su valor inicial.
Las claves que ya existen no se modifican.`,
		Example: `  painelctl seed-config --company 42 --meta 150000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.Store.Backend != "postgres" {
				return fmt.Errorf("CONFIG_BACKEND=%s: la configuración vive en el ERP", e.cfg.Store.Backend)
			}
			if companyID == "" {
				return errors.New("--company es obligatorio")
			}
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, e.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			defaults := entity.DefaultConfig()
			if target != "" {
				defaults[entity.ConfigKeyTarget] = normalize.Amount(target).String()
			}
			// esquema y claves en una sola transacción
			var n int
			err = postgres.NewTxRunner(pool).RunConfig(ctx, func(repo *postgres.ConfigRepo) error {
				if err := repo.EnsureSchema(ctx); err != nil {
					return err
				}
				var err error
				n, err = repo.Seed(ctx, companyID, defaults)
				return err
			})
			if err != nil {
				return err
			}
			e.log.Info().Str("company_id", companyID).Int("insertadas", n).Msg("configuración inicial")
			fmt.Fprintf(cmd.OutOrStdout(), "%d claves nuevas para la empresa %s\n", n, companyID)
			return nil
		},
	}
	cmd.Flags().StringVar(&companyID, "company", "", "id de la empresa")
	cmd.Flags().StringVar(&target, "meta", "", "valor inicial de META")
	return cmd
}
