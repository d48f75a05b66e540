package agent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/capagent/capagent/agent/adapters"
	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/ZanzyTHEbar/capagent/capagent/capabilities"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, time.March, 5, 15, 4, 5, 0, time.UTC)

func newTestAgent(t *testing.T, opts Options) *Agent {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = fixedClock{now: testNow}
	}
	if opts.Random == nil {
		opts.Random = fixedRandom(0)
	}
	opts.Logger = zerolog.Nop()
	return New(opts)
}

// funcCapability adapts a function to a capability under any label.
type funcCapability struct {
	label ports.Label
	fn    func(message string, history ports.HistoryView) (string, error)
}

func (c funcCapability) Name() ports.Label { return c.label }
func (c funcCapability) Description() string { return "test " + c.label.String() }
func (c funcCapability) Execute(_ context.Context, message string, history ports.HistoryView) (string, error) {
	return c.fn(message, history)
}

func TestProcessMessage_RecordsPair(t *testing.T) {
	a := newTestAgent(t, Options{})

	reply := a.ProcessMessage(context.Background(), "calculate 2 + 2")
	assert.Equal(t, "The result of 2 + 2 is: **4**", reply)

	history := a.History()
	require.Len(t, history, 2)

	assert.Equal(t, ports.Turn{Role: ports.RoleUser, Content: "calculate 2 + 2", Timestamp: testNow}, history[0])
	assert.Equal(t, ports.Turn{
		Role:       ports.RoleAgent,
		Content:    reply,
		Timestamp:  testNow,
		Capability: ports.LabelCalculator,
	}, history[1])
}

func TestProcessMessage_RoutesEachCapability(t *testing.T) {
	a := newTestAgent(t, Options{})

	cases := map[string]ports.Label{
		"calculate 6 * 7":             ports.LabelCalculator,
		"create a file notes.txt":     ports.LabelFileOps,
		"what is react":               ports.LabelWebSearch,
		"count words in this":         ports.LabelTextProcessor,
		"what's the weather like":     ports.LabelTimeWeather,
		"generate a python algorithm": ports.LabelCodeGenerator,
		"zzz qqq":                     ports.LabelGeneral,
	}
	for message, want := range cases {
		a.ProcessMessage(context.Background(), message)
		last, ok := a.Conversation().Last()
		require.True(t, ok)
		assert.Equal(t, want, last.Capability, message)
		assert.False(t, last.IsError, message)
	}
}

func TestProcessMessage_FallbackForUnmatched(t *testing.T) {
	for i := range 5 {
		a := newTestAgent(t, Options{Random: fixedRandom(i)})
		reply := a.ProcessMessage(context.Background(), "zzz qqq")
		assert.Contains(t, FallbackResponses("zzz qqq"), reply)
		assert.Equal(t, FallbackResponses("zzz qqq")[i], reply)
	}
}

func TestProcessMessage_NeverPanics(t *testing.T) {
	a := newTestAgent(t, Options{})

	messages := []string{
		"",
		"   ",
		"(((",
		"2 + 3)",
		"calculate 1/0",
		"日本語のテキストを翻訳して",
		"🙂🙂🙂",
		strings.Repeat("a", 10000),
		"\x00\xff",
	}
	for i, message := range messages {
		var reply string
		assert.NotPanics(t, func() { reply = a.ProcessMessage(context.Background(), message) }, message)
		assert.NotEmpty(t, reply)
		assert.Equal(t, 2*(i+1), len(a.History()))
	}
}

func TestProcessMessage_ErrorBecomesApology(t *testing.T) {
	failing := funcCapability{label: ports.LabelCalculator, fn: func(string, ports.HistoryView) (string, error) {
		return "", errors.New("disk on fire")
	}}
	a := newTestAgent(t, Options{Capabilities: []ports.Capability{failing}})

	reply := a.ProcessMessage(context.Background(), "calculate 1 + 1")

	assert.True(t, strings.HasPrefix(reply, "I apologize, but I encountered an error: "))
	assert.Contains(t, reply, "disk on fire")
	assert.True(t, strings.HasSuffix(reply, ". Could you please try rephrasing your request?"))

	history := a.History()
	require.Len(t, history, 2)
	assert.True(t, history[1].IsError)
	assert.Empty(t, history[1].Capability)
	assert.Equal(t, reply, history[1].Content)
}

func TestProcessMessage_PanicBecomesApology(t *testing.T) {
	panicking := funcCapability{label: ports.LabelCalculator, fn: func(string, ports.HistoryView) (string, error) {
		panic("boom")
	}}
	metrics := NewMetricsCollector()
	a := newTestAgent(t, Options{Capabilities: []ports.Capability{panicking}, Metrics: metrics})

	var reply string
	require.NotPanics(t, func() { reply = a.ProcessMessage(context.Background(), "calculate 1 + 1") })

	assert.Equal(t, "I apologize, but I encountered an error: boom. Could you please try rephrasing your request?", reply)
	assert.Len(t, a.History(), 2)
	assert.Equal(t, int64(1), a.Stats().Panics)
	assert.Equal(t, int64(1), a.Stats().Errors)

	// The agent keeps working after a panic.
	assert.NotEmpty(t, a.ProcessMessage(context.Background(), "hello"))
	assert.Len(t, a.History(), 4)
}

func TestProcessMessage_HandlerSeesPendingTurn(t *testing.T) {
	var seenLen int
	var seenLast ports.Turn
	spy := funcCapability{label: ports.LabelCalculator, fn: func(message string, history ports.HistoryView) (string, error) {
		seenLen = history.Len()
		seenLast, _ = history.Last()
		return "ok", nil
	}}
	a := newTestAgent(t, Options{Capabilities: []ports.Capability{spy}, WelcomeTurn: true})

	a.ProcessMessage(context.Background(), "calculate 3 + 3")

	assert.Equal(t, 2, seenLen, "welcome turn plus the pending user turn")
	assert.Equal(t, ports.RoleUser, seenLast.Role)
	assert.Equal(t, "calculate 3 + 3", seenLast.Content)
	assert.Len(t, a.History(), 3)
}

func TestNew_WelcomeTurn(t *testing.T) {
	a := newTestAgent(t, Options{WelcomeTurn: true, SessionPrefix: "demo-"})

	history := a.History()
	require.Len(t, history, 1)
	assert.Equal(t, ports.RoleAgent, history[0].Role)
	assert.Equal(t, WelcomeMessage, history[0].Content)
	assert.True(t, strings.HasPrefix(a.Conversation().SessionID(), "demo-"))

	assert.Empty(t, newTestAgent(t, Options{}).History())
}

func TestCapabilities(t *testing.T) {
	a := newTestAgent(t, Options{})

	want := []CapabilityInfo{
		{ports.LabelCalculator, "Perform mathematical calculations and solve equations"},
		{ports.LabelFileOps, "Handle file and folder operations"},
		{ports.LabelWebSearch, "Search for information and answer questions"},
		{ports.LabelTextProcessor, "Process and analyze text content"},
		{ports.LabelTimeWeather, "Provide time, date, and weather information"},
		{ports.LabelCodeGenerator, "Generate code snippets and programming solutions"},
	}
	if diff := cmp.Diff(want, a.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessMessage_ConcurrentPairsStayAdjacent(t *testing.T) {
	a := newTestAgent(t, Options{Random: adapters.NewMathRandom(1)})

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.ProcessMessage(context.Background(), fmt.Sprintf("calculate %d + 1", i))
		}()
	}
	wg.Wait()

	history := a.History()
	require.Len(t, history, 2*n)
	for i := 0; i < len(history); i += 2 {
		user, reply := history[i], history[i+1]
		require.Equal(t, ports.RoleUser, user.Role)
		require.Equal(t, ports.RoleAgent, reply.Role)

		var x int
		_, err := fmt.Sscanf(user.Content, "calculate %d + 1", &x)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("The result of %d + 1 is: **%d**", x, x+1), reply.Content)
	}
}

func TestProcessBatch_PreservesOrder(t *testing.T) {
	a := newTestAgent(t, Options{BatchConcurrency: 3})

	messages := make([]string, 20)
	for i := range messages {
		messages[i] = fmt.Sprintf("calculate %d * 2", i)
	}

	results := a.ProcessBatch(context.Background(), messages)

	require.Len(t, results, len(messages))
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("The result of %d * 2 is: **%d**", i, i*2), r)
	}
	assert.Len(t, a.History(), 2*len(messages))
}

func TestProcessBatch_Empty(t *testing.T) {
	a := newTestAgent(t, Options{})
	assert.Empty(t, a.ProcessBatch(context.Background(), nil))
}

func TestStats(t *testing.T) {
	a := newTestAgent(t, Options{Metrics: NewMetricsCollector()})

	a.ProcessMessage(context.Background(), "calculate 1 + 1")
	a.ProcessMessage(context.Background(), "2 * 3")
	a.ProcessMessage(context.Background(), "zzz qqq")

	stats := a.Stats()
	assert.Equal(t, int64(3), stats.Messages)
	assert.Equal(t, int64(0), stats.Errors)
	assert.Equal(t, int64(2), stats.Capabilities[ports.LabelCalculator].Requests)
	assert.Equal(t, int64(1), stats.Capabilities[ports.LabelGeneral].Requests)

	disabled := newTestAgent(t, Options{})
	disabled.ProcessMessage(context.Background(), "calculate 1 + 1")
	assert.Zero(t, disabled.Stats().Messages)
	assert.NotNil(t, disabled.Stats().Capabilities)
}

func TestProcessMessage_Tracing(t *testing.T) {
	var buf bytes.Buffer
	tracer := adapters.NewZerologTracer(zerolog.New(&buf).Level(zerolog.DebugLevel))
	a := newTestAgent(t, Options{Tracer: tracer})

	a.ProcessMessage(context.Background(), "calculate 2 + 2")

	logs := buf.String()
	assert.Contains(t, logs, `"span":"process_message"`)
	assert.Contains(t, logs, `"span":"dispatch"`)
	assert.Contains(t, logs, `"event":"intent_classified"`)
	assert.Contains(t, logs, `"capability":"calculator"`)
	assert.Contains(t, logs, `"session_id":"`+a.Conversation().SessionID()+`"`)
}

func TestProcessMessage_TimeWeatherUsesInjectedClock(t *testing.T) {
	clock := fixedClock{now: testNow}
	caps := capabilities.Default(capabilities.Options{
		Clock:    clock,
		Random:   fixedRandom(0),
		Zone:     time.UTC,
		ZoneName: "UTC",
	})
	a := newTestAgent(t, Options{Clock: clock, Capabilities: caps})

	assert.Equal(t, "Current time: **3:04:05 PM**\n\nTimezone: UTC", a.ProcessMessage(context.Background(), "what time is it"))
}
