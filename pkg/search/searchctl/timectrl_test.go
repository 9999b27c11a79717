package searchctl_test

import (
	"context"
	"testing"
	"time"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/corvid-chess/corvid/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestTimeControlLimitsUsesSideToMoveClock(t *testing.T) {
	tc := searchctl.TimeControl{White: 80 * time.Second, Black: 40 * time.Second}

	soft, hard := tc.Limits(board.White)
	assert.Equal(t, time.Second, soft) // 80s / (2*40 assumed moves)
	assert.Equal(t, 3*time.Second, hard)

	soft, hard = tc.Limits(board.Black)
	assert.Equal(t, 500*time.Millisecond, soft)
	assert.Equal(t, 1500*time.Millisecond, hard)
}

func TestTimeControlLimitsHonorsMovesToGo(t *testing.T) {
	tc := searchctl.TimeControl{White: 20 * time.Second, Moves: 1}

	soft, _ := tc.Limits(board.White)
	assert.Equal(t, 5*time.Second, soft) // remainder / (2 * (moves+1))
}

func TestTimeControlString(t *testing.T) {
	tc := searchctl.TimeControl{White: 5 * time.Second, Black: 3 * time.Second}
	assert.Equal(t, "5.0<>3.0", tc.String())

	tc.Moves = 10
	assert.Equal(t, "5.0<>3.0[moves=10]", tc.String())
}

type fakeHandle struct {
	halted chan struct{}
}

func (h *fakeHandle) Halt() search.PV {
	close(h.halted)
	return search.PV{}
}

func TestEnforceTimeControlNoOpWithoutTimeControl(t *testing.T) {
	h := &fakeHandle{halted: make(chan struct{})}

	_, ok := searchctl.EnforceTimeControl(context.Background(), h, lang.Optional[searchctl.TimeControl]{}, board.White)
	assert.False(t, ok)

	select {
	case <-h.halted:
		t.Fatal("Halt should not have been called")
	default:
	}
}

func TestEnforceTimeControlHaltsAfterHardLimit(t *testing.T) {
	h := &fakeHandle{halted: make(chan struct{})}
	tc := searchctl.TimeControl{White: 30 * time.Millisecond} // hard limit ~1.1ms (3 × 30ms/80)

	soft, ok := searchctl.EnforceTimeControl(context.Background(), h, lang.Some(tc), board.White)
	assert.True(t, ok)
	assert.Greater(t, soft, time.Duration(0))

	select {
	case <-h.halted:
	case <-time.After(time.Second):
		t.Fatal("Halt was not called within the hard limit")
	}
}
