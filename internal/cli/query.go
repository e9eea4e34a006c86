package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/wallet-explorer/internal/control"
	"github.com/vietddude/wallet-explorer/internal/service"
)

var walletCmd = &cobra.Command{
	Use:   "wallet <address>",
	Short: "Print the normalized wallet lookup for an address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(func(ctx context.Context, svc *service.WalletService) (any, error) {
			return svc.Wallets(ctx, args[0])
		})
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <address>",
	Short: "Print the normalized transaction edges for an address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery(func(ctx context.Context, svc *service.WalletService) (any, error) {
			return svc.Transactions(ctx, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(walletCmd, transactionsCmd)
}

func runQuery(query func(context.Context, *service.WalletService) (any, error)) {
	cfg := loadConfig()

	app, err := control.NewApp(appConfig(cfg))
	if err != nil {
		slog.Error("Failed to initialize wallet explorer", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := query(ctx, app.Service())
	if stopErr := app.Stop(ctx); stopErr != nil {
		slog.Warn("Error during shutdown", "error", stopErr)
	}
	if err != nil {
		slog.Error("Database access error", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("Failed to write result", "error", err)
		os.Exit(1)
	}
}
