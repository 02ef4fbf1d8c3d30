package middleware

import (
	"errors"
	"testing"

	"subquest/internal/service"
	"subquest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const adminID = int64(1000)

// fakeContext implements only what the middleware touches
type fakeContext struct {
	tele.Context
	sender *tele.User
	sent   []interface{}
}

func (f *fakeContext) Sender() *tele.User { return f.sender }
func (f *fakeContext) Text() string       { return "/add 5" }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		sender     *tele.User
		enabled    bool
		wantCalled bool
	}{
		{name: "admin passes", sender: &tele.User{ID: adminID}, enabled: true, wantCalled: true},
		{name: "player rejected", sender: &tele.User{ID: 7}, enabled: true},
		{name: "admin commands disabled", sender: &tele.User{ID: adminID}, enabled: false},
		{name: "no sender", sender: nil, enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := service.NewAccessService(new(testutil.MockAllowListRepository), adminID, tt.enabled, testutil.NewTestLogger())
			c := &fakeContext{sender: tt.sender}

			called := false
			handler := AdminOnly(access, "denied", testutil.NewTestLogger())(func(tele.Context) error {
				called = true
				return nil
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCalled, called)
			if !tt.wantCalled {
				assert.Equal(t, []interface{}{"denied"}, c.sent)
			}
		})
	}
}

func TestLogger_PassesThroughError(t *testing.T) {
	boom := errors.New("telegram: Forbidden: bot was blocked by the user")
	c := &fakeContext{sender: &tele.User{ID: 7}}

	handler := Logger(testutil.NewTestLogger())(func(tele.Context) error { return boom })
	assert.ErrorIs(t, handler(c), boom)

	handler = Logger(testutil.NewTestLogger())(func(tele.Context) error { return nil })
	assert.NoError(t, handler(c))
}
