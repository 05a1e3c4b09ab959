package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
	"github.com/charan-kumar-kamasani/authentik/internal/formconfig/codec"
)

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a form configuration YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			data, err := os.ReadFile(filepath.Clean(file))
			if err != nil {
				return err
			}
			cfg, err := codec.DecodeYAML(data)
			if err != nil {
				return err
			}
			res := formconfig.Validate(cfg)
			for _, v := range res.Violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", v.Path, v.Reason)
			}
			if !res.OK() {
				return fmt.Errorf("%d violations", len(res.Violations))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "formconfig.yaml", "input file")
	return cmd
}
