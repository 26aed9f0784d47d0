package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/painel-bi/pkg/jwt"
)

func newTokenCmd(e *env) *cobra.Command {
	var id jwt.Identity
	var minutes int
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT de desarrollo",
		Example: `  painelctl token --user "Maria Souza" --role vendedor --company 42
  painelctl token --user admin --role admin --company 42 --minutes 600`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no configurado")
			}
			if id.CompanyID == "" || id.Role == "" {
				return errors.New("--company y --role son obligatorios")
			}
			if id.UserID == "" {
				id.UserID = uuid.NewString()
			}
			if minutes <= 0 {
				minutes = e.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(e.cfg.JWT.Secret, id, e.cfg.JWT.Issuer, minutes)
			if err != nil {
				return fmt.Errorf("generar token: %w", err)
			}
			e.log.Info().Str("usuario", id.Username).Str("rol", id.Role).Str("company_id", id.CompanyID).Int("minutos", minutes).Msg("token emitido")
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&id.Username, "user", "", "nombre del usuario (como aparece en nome_vendedor)")
	cmd.Flags().StringVar(&id.Role, "role", "", "admin | vendedor | financeiro")
	cmd.Flags().StringVar(&id.CompanyID, "company", "", "id de la empresa")
	cmd.Flags().StringVar(&id.UserID, "user-id", "", "id del usuario (uuid nuevo si se omite)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (JWT_EXPIRATION_MINUTES si se omite)")
	return cmd
}
