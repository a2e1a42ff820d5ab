package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
	"github.com/spf13/cobra"
)

var (
	flagUserName string
	flagShift    string
	flagNewPIN   string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage cashier accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE:  runUsersList,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a cashier account",
	RunE:  runUsersCreate,
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user's name or shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersUpdate,
}

var usersSetPinCmd = &cobra.Command{
	Use:   "set-pin <id>",
	Short: "Change a user's PIN",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersSetPin,
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersDelete,
}

func init() {
	usersCreateCmd.Flags().StringVar(&flagUserName, "name", "", "full name")
	usersCreateCmd.Flags().StringVar(&flagShift, "shift", "", "work shift")
	usersCreateCmd.Flags().StringVar(&flagNewPIN, "new-pin", "", "six digit PIN")

	usersUpdateCmd.Flags().StringVar(&flagUserName, "name", "", "full name")
	usersUpdateCmd.Flags().StringVar(&flagShift, "shift", "", "work shift")

	usersSetPinCmd.Flags().StringVar(&flagNewPIN, "new-pin", "", "six digit PIN")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersUpdateCmd)
	usersCmd.AddCommand(usersSetPinCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	users, err := svc.Users(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE\tSHIFT")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, u.Shift)
	}
	w.Flush()
	return nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	created, err := svc.CreateUser(cmd.Context(), domain.NewUser{
		Name:  flagUserName,
		Shift: flagShift,
		PIN:   flagNewPIN,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created user %d: %s\n", created.ID, created.Name)
	return nil
}

func runUsersUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	var update domain.UpdateUser
	if cmd.Flags().Changed("name") {
		update.Name = &flagUserName
	}
	if cmd.Flags().Changed("shift") {
		update.Shift = &flagShift
	}
	updated, err := svc.UpdateUser(cmd.Context(), id, update)
	if err != nil {
		return err
	}
	fmt.Printf("Updated user %d: %s\n", updated.ID, updated.Name)
	return nil
}

func runUsersSetPin(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	// The confirmation is the same flag value here; interactive confirmation
	// belongs to the TUI, not the CLI.
	if _, err := svc.SetPin(cmd.Context(), id, domain.SetPin{PIN: flagNewPIN, ConfirmPin: flagNewPIN}); err != nil {
		return err
	}
	fmt.Printf("PIN updated for user %d\n", id)
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}
	if err := svc.DeleteUser(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted user %d\n", id)
	return nil
}
