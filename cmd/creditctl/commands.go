package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/service/usageservice"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

//go:generate mockgen -source=commands.go -destination=mocks.go -package=main

type Wallets interface {
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type Usage interface {
	Summary(ctx context.Context, userID int) (*usageservice.Summary, error)
	Monthwise(ctx context.Context, userID int, label string) (int, error)
}

type Reconciler interface {
	RunOnce(ctx context.Context) (int, error)
}

type backend struct {
	wallets    Wallets
	usage      Usage
	reconciler Reconciler
	close      func()
}

type connectFunc func(ctx context.Context, dsn string) (*backend, error)

func newRootCmd(connect connectFunc) *cobra.Command {
	var dsn string

	rootCmd := &cobra.Command{
		Use:           "creditctl",
		Short:         "CloudlessPay wallet administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&dsn, "database", "d", "", "database DSN (defaults to DATABASE_URI)")

	withBackend := func(run func(cmd *cobra.Command, args []string, b *backend) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			b, err := connect(cmd.Context(), dsn)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if b.close != nil {
				defer b.close()
			}
			return run(cmd, args, b)
		}
	}

	rootCmd.AddCommand(creditCmd(withBackend))
	rootCmd.AddCommand(usageCmd(withBackend))
	rootCmd.AddCommand(reconcileCmd(withBackend))
	return rootCmd
}

type backendRunner func(run func(cmd *cobra.Command, args []string, b *backend) error) func(*cobra.Command, []string) error

func creditCmd(with backendRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "credit <user-id> <amount>",
		Short: "Add credits to a user's wallet",
		Args:  cobra.ExactArgs(2),
		RunE: with(func(cmd *cobra.Command, args []string, b *backend) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil || !amount.IsPositive() {
				return fmt.Errorf("%w: %q", domain.ErrInvalidAmount, args[1])
			}

			wallet, err := b.wallets.Credit(cmd.Context(), userID, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d: credited %s, balance %s\n", userID, amount, wallet.Credits)
			return nil
		}),
	}
}

func usageCmd(with backendRunner) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "usage <user-id>",
		Short: "Show a user's balance and successful calls",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, b *backend) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			summary, err := b.usage.Summary(cmd.Context(), userID)
			if err != nil {
				return err
			}
			used, err := b.usage.Monthwise(cmd.Context(), userID, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "balance:    %s\n", summary.TotalCredits)
			fmt.Fprintf(out, "this-month: %d\n", summary.CreditsUsedThisMonth)
			if month != usageservice.ThisMonth {
				fmt.Fprintf(out, "%s: %d\n", month, used)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&month, "month", "m", usageservice.ThisMonth, "this-month, last-month or last-previous-month")
	return cmd
}

func reconcileCmd(with backendRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Create missing wallets once and exit",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, _ []string, b *backend) error {
			n, err := b.reconciler.RunOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "wallets created: %d\n", n)
			return err
		}),
	}
}

func parseUserID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: user id %q", domain.ErrInvalidInput, s)
	}
	return id, nil
}
