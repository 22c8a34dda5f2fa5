package command

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/askbot/internal/core"
	"github.com/stretchr/testify/assert"
)

type fakeCommand struct {
	name   string
	calls  int
	args   []string
	result string
	err    error
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return "fake" }

func (f *fakeCommand) Execute(_ context.Context, _ string, args []string) (string, error) {
	f.calls++
	f.args = args
	return f.result, f.err
}

func TestRouter_MatchesBareWordCaseInsensitively(t *testing.T) {
	help := &fakeCommand{name: "help", result: "help text"}
	router := New([]core.Command{help})

	for _, input := range []string{"help", "HELP", "Help", "  help  "} {
		out, ok := router.Execute(context.Background(), "conv", input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, "help text", out)
	}
	assert.Equal(t, 4, help.calls)
}

func TestRouter_MatchesSlashTokenWithArgs(t *testing.T) {
	clear := &fakeCommand{name: "clear", result: "done"}
	router := New([]core.Command{clear})

	out, ok := router.Execute(context.Background(), "conv", "/clear all of it")
	assert.True(t, ok)
	assert.Equal(t, "done", out)
	assert.Equal(t, []string{"all", "of", "it"}, clear.args)
}

func TestRouter_BareWordOnlyMatchesWholeMessage(t *testing.T) {
	help := &fakeCommand{name: "help", result: "help text"}
	router := New([]core.Command{help})

	_, ok := router.Execute(context.Background(), "conv", "help me with the policy")
	assert.False(t, ok)
	assert.Equal(t, 0, help.calls)
}

func TestRouter_UnknownSlashFallsThrough(t *testing.T) {
	router := New([]core.Command{&fakeCommand{name: "help"}})

	_, ok := router.Execute(context.Background(), "conv", "/frobnicate")
	assert.False(t, ok)
}

func TestRouter_EmptyInputFallsThrough(t *testing.T) {
	router := New([]core.Command{&fakeCommand{name: "help"}})

	for _, input := range []string{"", "   "} {
		_, ok := router.Execute(context.Background(), "conv", input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestRouter_CommandErrorIsConsumed(t *testing.T) {
	bad := &fakeCommand{name: "clear", err: errors.New("storage offline")}
	router := New([]core.Command{bad})

	out, ok := router.Execute(context.Background(), "conv", "/clear")
	assert.True(t, ok)
	assert.Equal(t, "Error: storage offline", out)
}

type fakeStore struct {
	clearOK    bool
	clearCalls int
	stats      core.HistoryStats
}

func (f *fakeStore) Clear(context.Context, string) bool {
	f.clearCalls++
	return f.clearOK
}

func (f *fakeStore) Stats(context.Context, string) core.HistoryStats { return f.stats }

func TestClearCommand_InvokesStoreOnce(t *testing.T) {
	store := &fakeStore{clearOK: true}
	router := New(NewCommands(store))

	out, ok := router.Execute(context.Background(), "conv", "/clear")
	assert.True(t, ok)
	assert.Contains(t, out, "cleared")
	assert.Equal(t, 1, store.clearCalls)
}

func TestClearCommand_ReportsFailure(t *testing.T) {
	store := &fakeStore{clearOK: false}
	router := New(NewCommands(store))

	out, ok := router.Execute(context.Background(), "conv", "clear")
	assert.True(t, ok)
	assert.Contains(t, out, "Couldn't clear")
}

func TestStatsCommand_RendersCounts(t *testing.T) {
	store := &fakeStore{stats: core.HistoryStats{
		MessageCount:      5,
		UserMessages:      3,
		AssistantMessages: 2,
		StorageKind:       "sqlite",
	}}
	router := New(NewCommands(store))

	out, ok := router.Execute(context.Background(), "conv", "/stats")
	assert.True(t, ok)
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "sqlite")
}
