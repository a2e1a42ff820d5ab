package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/admin"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/api"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/config"
	"github.com/NahlBee97/komputama-kasir-frontend/internal/session"
	"github.com/NahlBee97/komputama-kasir-frontend/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	flagUserID int64
	flagPIN    string
)

var rootCmd = &cobra.Command{
	Use:   "posadmin",
	Short: "Back-office tool for the kasir terminal",
	Long: `posadmin manages the store backend from the command line: product
catalog, cashier accounts, sales history, and reports.

Credentials come from --user/--pin, or from POS_ADMIN_ID and POS_ADMIN_PIN
in the environment, or are prompted for interactively.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().Int64Var(&flagUserID, "user", 0, "admin user id")
	rootCmd.PersistentFlags().StringVar(&flagPIN, "pin", "", "admin PIN")

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(salesCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService logs in and returns the wired back-office service.
func newService(ctx context.Context) (*admin.Service, *api.Client, error) {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	sess := session.New()
	client := api.NewClient(cfg.APIURL, sess, cfg.RequestTimeout, zlog)

	userID, pin, err := credentials()
	if err != nil {
		return nil, nil, err
	}
	resp, err := client.Login(ctx, userID, pin)
	if err != nil {
		return nil, nil, fmt.Errorf("login gagal: %w", err)
	}
	sess.Set(resp.User, resp.Token)

	return admin.NewService(client, nil, zlog), client, nil
}

func credentials() (int64, string, error) {
	userID := flagUserID
	pin := flagPIN

	if userID == 0 {
		if v := os.Getenv("POS_ADMIN_ID"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, "", fmt.Errorf("POS_ADMIN_ID harus angka")
			}
			userID = id
		}
	}
	if pin == "" {
		pin = os.Getenv("POS_ADMIN_PIN")
	}

	reader := bufio.NewReader(os.Stdin)
	if userID == 0 {
		fmt.Print("ID admin: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, "", err
		}
		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("ID admin harus angka")
		}
		userID = id
	}
	if pin == "" {
		fmt.Print("PIN: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, "", err
		}
		pin = strings.TrimSpace(line)
	}

	return userID, pin, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
