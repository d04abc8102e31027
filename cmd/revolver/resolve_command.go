package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"revolver/internal/config"
	"revolver/internal/naming"
	"revolver/internal/services"
	"revolver/internal/session"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "resolve <proxy|fullres> <path>",
		Short:       "Print the proxy or full-resolution counterpart of a clip",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := session.ParseMode(args[0])
			if err != nil {
				return err
			}
			path, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			resolver := naming.Resolver{}
			var (
				target string
				found  bool
			)
			if mode == session.ModeProxy {
				target, found = resolver.ResolveProxy(path)
			} else {
				target, found = resolver.ResolveFullRes(path)
			}
			if !found {
				return services.Wrap(services.ErrNotFound, "resolve", mode.String(), "no counterpart for "+path, nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}
