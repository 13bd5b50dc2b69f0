package notify

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestConsole(t *testing.T) (*Center, *bytes.Buffer, *fakeClock) {
	t.Helper()
	var buf bytes.Buffer
	clk := &fakeClock{t: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	return NewConsole(&buf, 5*time.Second).WithClock(clk.now), &buf, clk
}

func TestOperation_PendingThenSuccess(t *testing.T) {
	c, buf, _ := newTestConsole(t)

	op := c.Begin("Updating customer...")
	op.Succeed(`Customer "Ana" updated successfully.`)

	assert.Equal(t, []Event{
		{ID: 1, Kind: KindPending, Message: "Updating customer..."},
		{ID: 1, Kind: KindSuccess, Message: `Customer "Ana" updated successfully.`},
	}, c.Events())
	assert.Equal(t, "[...] Updating customer...\n[ok] Customer \"Ana\" updated successfully.\n", buf.String())
}

func TestOperation_OnlyFirstTerminalTransitionCounts(t *testing.T) {
	c := NewRecorder()

	op := c.Begin("Deleting...")
	op.Fail("boom")
	op.Succeed("late")
	op.Fail("again")

	ev := c.Events()
	require.Len(t, ev, 2)
	assert.Equal(t, KindError, ev[1].Kind)
	assert.Equal(t, "boom", ev[1].Message)
}

func TestSuccessAndError_Helpers(t *testing.T) {
	c, buf, _ := newTestConsole(t)

	c.Success("created")
	c.Error("nope")

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, KindError, last.Kind)
	assert.Equal(t, "[ok] created\n[error] nope\n", buf.String(), "empty pending messages are not printed")
}

func TestActive_AutoDismissAfterTTL(t *testing.T) {
	c, _, clk := newTestConsole(t)

	pending := c.Begin("working")
	c.Success("done")

	active := c.Active(clk.t)
	require.Len(t, active, 2)

	later := clk.t.Add(6 * time.Second)
	active = c.Active(later)
	require.Len(t, active, 1, "resolved toast expires, pending one stays")
	assert.Equal(t, KindPending, active[0].Kind)

	clk.t = later
	pending.Succeed("finished")
	active = c.Active(clk.t)
	require.Len(t, active, 1)
	assert.Equal(t, "finished", active[0].Message)
	assert.Equal(t, clk.t.Add(5*time.Second), active[0].DismissAt)
}

func TestDismiss(t *testing.T) {
	c, _, clk := newTestConsole(t)

	op := c.Begin("working")
	assert.False(t, c.Dismiss(1), "pending toasts cannot be dismissed")

	op.Fail("bad")
	assert.True(t, c.Dismiss(1))
	assert.Empty(t, c.Active(clk.t))
	assert.False(t, c.Dismiss(1))
	assert.False(t, c.Dismiss(42))
}

func TestLast_Empty(t *testing.T) {
	_, ok := NewRecorder().Last()
	assert.False(t, ok)
}

func TestNewConsole_ColorsOnTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	c := NewConsole(f, time.Second)
	c.Error("bad")

	b, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "\033[31m[error]\033[0m bad\n", string(b))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pending", KindPending.String())
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "error", KindError.String())
}
