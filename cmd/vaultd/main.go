package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	vaultd "github.com/iov-one/vault/cmd/vaultd/app"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/abci/server"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "vault")

	if err := rootCmd(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func rootCmd(logger log.Logger) *cobra.Command {
	var home string
	root := &cobra.Command{
		Use:           "vaultd",
		Short:         "Trade finance vault node",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".vault")
	root.PersistentFlags().StringVar(&home, "home", defaultHome, "directory to store files under")

	root.AddCommand(
		initCmd(&home, logger),
		startCmd(&home, logger),
		versionCmd(),
	)
	return root
}

func initCmd(home *string, logger log.Logger) *cobra.Command {
	var (
		admin   string
		genesis string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize app options in genesis file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var addr vault.Address
			if admin != "" {
				a, err := vault.ParseAddress(admin)
				if err != nil {
					return err
				}
				addr = a
			}
			state, phrase, err := vaultd.GenInitOptions(addr)
			if err != nil {
				return err
			}
			if genesis == "" {
				genesis = filepath.Join(*home, "config", "genesis.json")
			}
			if err := app.AddGenesisAppState(genesis, state, force); err != nil {
				return err
			}
			logger.Info("App state written", "genesis", genesis)
			if phrase != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Admin recovery phrase, store it safely:\n\n%s\n", phrase)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&admin, "admin", "", "admin address, a new key is generated when empty")
	cmd.Flags().StringVar(&genesis, "genesis", "", "genesis file (default \"<home>/config/genesis.json\")")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing app_state")
	return cmd
}

func startCmd(home *string, logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the abci server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := vaultd.LoadConfig(*home)
			if err != nil {
				return err
			}
			lvl, err := log.AllowLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = log.NewFilter(logger, lvl)

			var reg prometheus.Registerer
			if cfg.MetricsAddress != "" {
				r := prometheus.NewRegistry()
				reg = r
				go serveMetrics(cfg.MetricsAddress, r, logger)
			}

			abciApp, err := vaultd.GenerateApp(cfg, reg, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting ABCI app", "bind", cfg.Bind)
			svr, err := server.NewServer(cfg.Bind, "socket", abciApp)
			if err != nil {
				return fmt.Errorf("Error creating listener: %v", err)
			}
			svr.SetLogger(logger.With("module", "abci-server"))
			if err := svr.Start(); err != nil {
				return err
			}

			cmn.TrapSignal(logger, func() {
				svr.Stop()
			})
			// Wait forever, TrapSignal exits the process on a signal.
			select {}
		},
	}
}

func serveMetrics(addr string, g prometheus.Gatherer, logger log.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server stopped", "err", err)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the app version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), vault.Version())
		},
	}
}
