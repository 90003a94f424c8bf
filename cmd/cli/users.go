package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/battlegear/api-server/config"
	"github.com/battlegear/api-server/internal/core"
	"github.com/battlegear/api-server/internal/core/domain"
	"github.com/battlegear/api-server/internal/core/repository"
	logicv1 "github.com/battlegear/api-server/internal/logic/v1"
)

// NewUsersCmd creates the users subcommand tree.
func NewUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User management",
	}

	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersDeleteCmd())
	cmd.AddCommand(newUsersDeleteByUsernameCmd())

	return cmd
}

// withUserRepository connects to the database and hands the repository to fn.
func withUserRepository(fn func(ctx context.Context, users domain.UserRepository) error) error {
	cfg := config.Load()
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := core.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, repository.NewUserRepository(pool))
}

func newUsersCreateCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create <username> <email> <full_name> <country> <date_of_birth> [role...]",
		Short: "Create a new user",
		Args:  cobra.MinimumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, email, fullName, country := args[0], args[1], args[2], args[3]
			dateOfBirth, err := domain.ParseDate(args[4])
			if err != nil {
				return err
			}
			roleCodes := args[5:]

			if password == "" {
				password, err = promptPassword()
				if err != nil {
					return err
				}
			}

			passwordHash, err := logicv1.NewBcryptHasher().Hash(password)
			if err != nil {
				return err
			}

			return withUserRepository(func(ctx context.Context, users domain.UserRepository) error {
				newUser := domain.NewUser{
					Username:     username,
					Email:        email,
					PasswordHash: passwordHash,
					FullName:     &fullName,
					Country:      &country,
					DateOfBirth:  &dateOfBirth,
				}
				user, err := users.Create(ctx, newUser, roleCodes)
				if err != nil {
					return fmt.Errorf("create user: %w", err)
				}
				cmd.Printf("Created user %d (%s) with roles %v\n", user.UserID, user.Username, roleCodes)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users with their roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUserRepository(func(ctx context.Context, users domain.UserRepository) error {
				all, err := users.FindWithRoles(ctx)
				if err != nil {
					return fmt.Errorf("list users: %w", err)
				}
				for _, entry := range all {
					codes := make([]string, 0, len(entry.Roles))
					for _, role := range entry.Roles {
						codes = append(codes, role.Code)
					}
					cmd.Printf("%d\t%s\t%s\t%v\n", entry.User.UserID, entry.User.Username, entry.User.Email, codes)
				}
				return nil
			})
		},
	}
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return withUserRepository(func(ctx context.Context, users domain.UserRepository) error {
				if err := users.Delete(ctx, id); err != nil {
					return fmt.Errorf("delete user: %w", err)
				}
				cmd.Printf("Deleted user %d\n", id)
				return nil
			})
		},
	}
}

func newUsersDeleteByUsernameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-by-username <username>",
		Short: "Delete a user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUserRepository(func(ctx context.Context, users domain.UserRepository) error {
				if err := users.DeleteByUsername(ctx, args[0]); err != nil {
					return fmt.Errorf("delete user %q: %w", args[0], err)
				}
				cmd.Printf("Deleted user %s\n", args[0])
				return nil
			})
		},
	}
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}
	return string(raw), nil
}
