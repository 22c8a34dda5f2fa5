package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/sandevgo/askbot/internal/core"
)

func TestMemoryBackend_AppendRead(t *testing.T) {
	t.Parallel()
	m := newMemoryBackend(memoryLimit)
	ctx := context.Background()

	turn := core.Turn{Role: core.RoleUser, Content: "hello", Timestamp: "001"}
	if err := m.Append(ctx, "conv", turn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	turns, err := m.Read(ctx, "conv", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0] != turn {
		t.Errorf("turn = %+v, want %+v", turns[0], turn)
	}
}

func TestMemoryBackend_ReadCapsWindow(t *testing.T) {
	t.Parallel()
	m := newMemoryBackend(memoryLimit)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		turn := core.Turn{Role: core.RoleUser, Content: fmt.Sprintf("msg-%d", i), Timestamp: fmt.Sprintf("%03d", i)}
		if err := m.Append(ctx, "conv", turn); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	turns, err := m.Read(ctx, "conv", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	// Most recent turns, ascending order
	if turns[0].Content != "msg-7" || turns[2].Content != "msg-9" {
		t.Errorf("window = %v, want msg-7..msg-9", turns)
	}
}

func TestMemoryBackend_BoundsAtAppend(t *testing.T) {
	t.Parallel()
	m := newMemoryBackend(memoryLimit)
	ctx := context.Background()

	for i := 0; i < memoryLimit+5; i++ {
		turn := core.Turn{Role: core.RoleUser, Content: fmt.Sprintf("msg-%d", i), Timestamp: fmt.Sprintf("%03d", i)}
		if err := m.Append(ctx, "conv", turn); err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
	}

	turns, err := m.Read(ctx, "conv", memoryLimit*2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != memoryLimit {
		t.Fatalf("expected %d turns after bound, got %d", memoryLimit, len(turns))
	}
	if turns[0].Content != "msg-5" {
		t.Errorf("oldest kept turn = %q, want msg-5", turns[0].Content)
	}
}

func TestMemoryBackend_NonPositiveWindow(t *testing.T) {
	t.Parallel()
	m := newMemoryBackend(memoryLimit)
	ctx := context.Background()

	_ = m.Append(ctx, "conv", core.Turn{Role: core.RoleUser, Content: "hi", Timestamp: "001"})

	for _, max := range []int{0, -1, -20} {
		turns, err := m.Read(ctx, "conv", max)
		if err != nil {
			t.Fatalf("unexpected error for max=%d: %v", max, err)
		}
		if len(turns) != 0 {
			t.Errorf("expected empty window for max=%d, got %d turns", max, len(turns))
		}
	}
}

func TestMemoryBackend_ClearResetsToEmpty(t *testing.T) {
	t.Parallel()
	m := newMemoryBackend(memoryLimit)
	ctx := context.Background()

	_ = m.Append(ctx, "conv", core.Turn{Role: core.RoleUser, Content: "hi", Timestamp: "001"})
	if err := m.Clear(ctx, "conv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	turns, err := m.Read(ctx, "conv", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected empty window after clear, got %d turns", len(turns))
	}

	// Key stays present with an empty slice
	if _, ok := m.turns["conv"]; !ok {
		t.Error("expected conversation key to survive clear")
	}
}

func TestMemoryBackend_Stats(t *testing.T) {
	t.Parallel()
	m := newMemoryBackend(memoryLimit)
	ctx := context.Background()

	_ = m.Append(ctx, "conv", core.Turn{Role: core.RoleUser, Content: "q1", Timestamp: "001"})
	_ = m.Append(ctx, "conv", core.Turn{Role: core.RoleAssistant, Content: "a1", Timestamp: "002"})
	_ = m.Append(ctx, "conv", core.Turn{Role: core.RoleUser, Content: "q2", Timestamp: "003"})

	stats, err := m.Stats(ctx, "conv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.MessageCount != 3 || stats.UserMessages != 2 || stats.AssistantMessages != 1 {
		t.Errorf("stats = %+v, want 3/2/1", stats)
	}
	if stats.StorageKind != "memory" {
		t.Errorf("storage kind = %q, want memory", stats.StorageKind)
	}
}
