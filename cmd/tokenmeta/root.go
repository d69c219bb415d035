package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tokenmeta-proxy/internal/adapter/storage/dexscreener"
	"tokenmeta-proxy/internal/adapter/storage/geckoterminal"
	"tokenmeta-proxy/internal/application"
	"tokenmeta-proxy/internal/config"
	"tokenmeta-proxy/internal/domain/entity"
	"tokenmeta-proxy/internal/domain/service"
	"tokenmeta-proxy/internal/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "tokenmeta",
		Short:         "Look up token logos, websites and socials from DexScreener and GeckoTerminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "directory containing config.yaml")

	rootCmd.AddCommand(newResolveCmd(&configPath), newNetworksCmd())
	return rootCmd
}

func newResolveCmd(configPath *string) *cobra.Command {
	var chain, address string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve metadata for one token and print it as JSON",
		Example: "  tokenmeta resolve --chain ethereum --address 0xdAC17F958D2ee523a2206206994597C13D831ec7\n" +
			"  tokenmeta resolve --chain solana --address EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v --pretty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := entity.NewTokenRef(chain, address)
			if err != nil {
				return fmt.Errorf("missing --chain or --address: %w", err)
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			// Stdout carries the JSON result, so logs are moved to stderr.
			cfg.Logger.Output = "stderr"
			cliLogger, err := logger.NewLogger(cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = cliLogger.Sync() }()

			resolver := application.NewMetadataService(
				dexscreener.NewRepository(cfg.Providers, cliLogger),
				geckoterminal.NewRepository(cfg.Providers, cliLogger),
				nil,
				cliLogger,
			)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			md := resolver.ResolveTokenMetadata(ctx, ref)

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(md)
		},
	}
	cmd.Flags().StringVar(&chain, "chain", "", "canonical chain identifier, e.g. ethereum")
	cmd.Flags().StringVar(&address, "address", "", "token contract address")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "Print the chain to GeckoTerminal network mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CHAIN\tGECKOTERMINAL NETWORK")
			for _, chain := range service.GeckoTerminalNetworks.Chains() {
				fmt.Fprintf(w, "%s\t%s\n", chain, service.GeckoTerminalNetworks.Normalize(chain))
			}
			return w.Flush()
		},
	}
}
