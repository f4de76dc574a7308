package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/mdkeeper/internal/client/auth"
	"github.com/iudanet/mdkeeper/internal/client/data"
	"github.com/iudanet/mdkeeper/internal/client/iocli"
	"github.com/iudanet/mdkeeper/internal/client/storage"
	clientsync "github.com/iudanet/mdkeeper/internal/client/sync"
	"github.com/iudanet/mdkeeper/internal/models"
)

// output собирает все, что команда напечатала
type output struct {
	b  strings.Builder
	mu sync.Mutex
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.b.String()
}

func (o *output) write(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.b.WriteString(s)
}

func newIO() (*iocli.IOMock, *output) {
	out := &output{}
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) { out.write(fmt.Sprintln(a...)) },
		PrintfFunc:  func(format string, a ...any) { out.write(fmt.Sprintf(format, a...)) },
		WriteFunc: func(p []byte) (int, error) {
			out.write(string(p))
			return len(p), nil
		},
	}, out
}

// fakeBackground считает вызовы Start/Stop и хранит подписчиков
type fakeBackground struct {
	subscribers []func(clientsync.Status)
	started     int
	stopped     int
	mu          sync.Mutex
}

func (b *fakeBackground) Start(context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started++
}

func (b *fakeBackground) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped++
}

func (b *fakeBackground) Subscribe(fn func(clientsync.Status)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
	return func() {}
}

func (b *fakeBackground) publish(st clientsync.Status) {
	b.mu.Lock()
	subs := append([]func(clientsync.Status){}, b.subscribers...)
	b.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}

type testCli struct {
	cli  *Cli
	io   *iocli.IOMock
	out  *output
	auth *auth.ManagerMock
	data *data.ServiceMock
	sync *clientsync.ServiceMock
	bg   *fakeBackground
}

func newTestCli() *testCli {
	ioMock, out := newIO()
	tc := &testCli{
		io:   ioMock,
		out:  out,
		auth: &auth.ManagerMock{},
		data: &data.ServiceMock{},
		sync: &clientsync.ServiceMock{},
		bg:   &fakeBackground{},
	}
	tc.cli = New(tc.io, tc.auth, tc.data, tc.sync, tc.bg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return tc
}

func writePasswordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadPassword(t *testing.T) {
	tests := []struct {
		name            string
		env             string
		file            string
		prompt          string
		want            string
		wantInteractive bool
		wantErr         string
	}{
		{name: "from env", env: "env-password-1", file: "file-password", want: "env-password-1"},
		{name: "from file", file: "file-password\n", want: "file-password"},
		{name: "file with whitespace", file: "  spaced-password  \n\n", want: "spaced-password"},
		{name: "empty file", file: " \n", wantErr: "password file is empty"},
		{name: "interactive", prompt: "typed-password", want: "typed-password", wantInteractive: true},
		{name: "interactive empty", prompt: "", wantErr: "password cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PasswordEnv, tt.env)

			tc := newTestCli()
			tc.io.ReadPasswordFunc = func(string) (string, error) { return tt.prompt, nil }
			if tt.file != "" {
				tc.cli.passwordFile = writePasswordFile(t, tt.file)
			}

			got, interactive, err := tc.cli.readPassword("Password: ")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantInteractive, interactive)
		})
	}
}

func TestReadPassword_FileNotFound(t *testing.T) {
	t.Setenv(PasswordEnv, "")
	tc := newTestCli()
	tc.cli.passwordFile = filepath.Join(t.TempDir(), "missing")

	_, _, err := tc.cli.readPassword("Password: ")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newCommands(newTestCli().cli)

	actual := make(map[string]bool)
	for _, cmd := range root.Commands() {
		actual[cmd.Name()] = true
	}
	for _, expected := range []string{
		"register", "login", "logout", "disconnect", "status",
		"doc", "folder", "sync", "conflicts", "conflict", "resolve", "retry", "watch",
	} {
		assert.True(t, actual[expected], "missing command %q", expected)
	}
}

func TestNewRootCommand_SetupAndFlags(t *testing.T) {
	tc := newTestCli()
	tc.auth.CurrentFunc = func(context.Context) (*storage.AuthData, error) {
		return nil, auth.ErrNotLoggedIn
	}
	tc.sync.StatusFunc = func() clientsync.Status { return clientsync.Status{State: "idle"} }
	tc.sync.FailedItemsFunc = func() []*models.SyncQueueItem { return nil }

	var (
		gotOpts Options
		closed  bool
	)
	setup := func(_ context.Context, opts Options) (*Cli, func() error, error) {
		gotOpts = opts
		return tc.cli, func() error { closed = true; return nil }, nil
	}

	root, closeFn := NewRootCommand("1.2.3", setup)
	root.SetArgs([]string{"--server", "http://example.test", "--db", "/tmp/x.db", "--password-file", "/tmp/p", "status"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	closeFn()

	assert.Equal(t, "http://example.test", gotOpts.ServerURL)
	assert.Equal(t, "/tmp/x.db", gotOpts.DBPath)
	assert.Equal(t, "/tmp/p", gotOpts.PasswordFile)
	assert.True(t, closed)
	assert.Contains(t, tc.out.String(), "not logged in")
}

func TestNewRootCommand_SetupError(t *testing.T) {
	setup := func(context.Context, Options) (*Cli, func() error, error) {
		return nil, nil, fmt.Errorf("open database: locked")
	}

	root, closeFn := NewRootCommand("dev", setup)
	root.SetArgs([]string{"status"})
	err := root.ExecuteContext(context.Background())
	closeFn()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}
