// Package cli команды клиента mdkeeper поверх cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/mdkeeper/internal/client/auth"
	"github.com/iudanet/mdkeeper/internal/client/data"
	"github.com/iudanet/mdkeeper/internal/client/iocli"
	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
)

// PasswordEnv переменная окружения с паролем, для скриптов
const PasswordEnv = "MDKEEPER_PASSWORD"

// Background фоновая синхронизация для долгоживущих команд (watch)
type Background interface {
	Start(ctx context.Context)
	Stop()
	Subscribe(fn func(clientsync.Status)) func()
}

// Options глобальные флаги, перекрывающие конфигурацию из окружения
type Options struct {
	ServerURL    string
	DBPath       string
	PasswordFile string
	LogFile      string
	Env          string
}

// Setup собирает зависимости команд. Возвращаемая функция освобождает ресурсы.
type Setup func(ctx context.Context, opts Options) (*Cli, func() error, error)

type Cli struct {
	io           iocli.IO
	auth         auth.Manager
	data         data.Service
	sync         clientsync.Service
	bg           Background
	logger       *slog.Logger
	passwordFile string
}

func New(io iocli.IO, authManager auth.Manager, dataService data.Service, syncService clientsync.Service, bg Background, logger *slog.Logger) *Cli {
	return &Cli{
		io:     io,
		auth:   authManager,
		data:   dataService,
		sync:   syncService,
		bg:     bg,
		logger: logger,
	}
}

// NewRootCommand создает корневую команду. Зависимости собираются через setup
// перед запуском любой подкоманды; закрыть их нужно вызовом второго результата.
func NewRootCommand(version string, setup Setup) (*cobra.Command, func()) {
	var (
		opts    Options
		cleanup func() error
	)
	c := &Cli{}

	root := newCommands(c)
	root.Version = version
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		built, closeFn, err := setup(cmd.Context(), opts)
		if err != nil {
			return err
		}
		*c = *built
		c.passwordFile = opts.PasswordFile
		cleanup = closeFn
		return nil
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ServerURL, "server", "", "server URL (env MDKEEPER_SERVER)")
	flags.StringVar(&opts.DBPath, "db", "", "path to local database (env MDKEEPER_CLIENT_DB)")
	flags.StringVar(&opts.PasswordFile, "password-file", "", "read password from file")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to file (env MDKEEPER_LOG_FILE)")
	flags.StringVar(&opts.Env, "env", "", "environment: development|production (env MDKEEPER_ENV)")

	closeFn := func() {
		if cleanup == nil {
			return
		}
		if err := cleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return root, closeFn
}

// newCommands строит дерево команд поверх уже собранного Cli
func newCommands(c *Cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "mdkeeper",
		Short: "mdkeeper - offline-first markdown notes with server sync",
		Long: `mdkeeper keeps markdown documents and folders locally and
synchronizes them with the mdkeeper server when the network is available.

Password priority: MDKEEPER_PASSWORD env, --password-file, interactive prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.disconnectCmd(),
		c.statusCmd(),
		c.docCmd(),
		c.folderCmd(),
		c.syncCmd(),
		c.conflictsCmd(),
		c.conflictCmd(),
		c.resolveCmd(),
		c.retryCmd(),
		c.watchCmd(),
	)
	return root
}

// readPassword читает пароль по приоритету:
// 1. переменная окружения MDKEEPER_PASSWORD
// 2. файл --password-file
// 3. интерактивный ввод
// interactive=true, если пароль введен с клавиатуры.
func (c *Cli) readPassword(prompt string) (password string, interactive bool, err error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, false, nil
	}

	if c.passwordFile != "" {
		content, err := os.ReadFile(c.passwordFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", false, errors.New("password file is empty")
		}
		return password, false, nil
	}

	password, err = c.io.ReadPassword(prompt)
	if err != nil {
		return "", true, fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", true, errors.New("password cannot be empty")
	}
	return password, true, nil
}

// readUsername берет username из аргументов или спрашивает
func (c *Cli) readUsername(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}
	return username, nil
}
