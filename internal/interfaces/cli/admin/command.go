package admin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cotracker/cotracker/internal/application/admin/usecases"
	"github.com/cotracker/cotracker/internal/infrastructure/auth"
	"github.com/cotracker/cotracker/internal/infrastructure/database"
	"github.com/cotracker/cotracker/internal/infrastructure/repository"
	"github.com/cotracker/cotracker/internal/interfaces/cli/bootstrap"
	"github.com/cotracker/cotracker/internal/shared/constants"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

var (
	opts     bootstrap.Options
	username string
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin site accounts",
	}

	bootstrap.AddFlags(cmd, &opts)

	createUser := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin site account",
		Long: `Create an admin site account. The password is read from the terminal
without echo, or from the first line of stdin when stdin is not a terminal.`,
		RunE: runCreateUser,
	}
	createUser.Flags().StringVarP(&username, "username", "u", "", "Account username (required)")
	createUser.Flags().StringVarP(&role, "role", "r", constants.RoleAdmin, "Role: admin or instructor")
	_ = createUser.MarkFlagRequired("username")

	cmd.AddCommand(createUser)
	return cmd
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg, gdb, err := bootstrap.Open(&opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	uc := usecases.NewCreateAdminUserUseCase(
		repository.NewAdminUserRepository(gdb),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		logger.WithComponent("admin"),
	)

	user, err := uc.Execute(cmd.Context(), usecases.CreateAdminUserCommand{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s account %q (id %d)\n", user.Role, user.Username, user.ID)
	return nil
}

// readPassword prompts twice on a terminal and reads one line otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())

		fmt.Fprint(prompt, "Password: ")
		first, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Fprint(prompt, "Password (again): ")
		second, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}
