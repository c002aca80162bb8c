package valueiteration

import (
	"testing"

	"github.com/samuelfneumann/goai/mdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// selfLoop returns an MDP with a single state whose only action loops
// back to itself with the given reward
func selfLoop(t *testing.T, reward float64) *mdp.Tabular[string, string] {
	t.Helper()

	m, err := mdp.NewTabular([]string{"s"}, []string{"stay"})
	require.NoError(t, err)
	require.NoError(t, m.SetTransition("s", "stay", "s", 1, reward))
	return m
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Discount: 0.9, Iterations: 100}, false},
		{"zero iterations", Config{Discount: 0, Iterations: 0}, false},
		{"undiscounted", Config{Discount: 1, Iterations: 10}, false},
		{"negative discount", Config{Discount: -0.1, Iterations: 10}, true},
		{"discount above one", Config{Discount: 1.5, Iterations: 10}, true},
		{"negative iterations", Config{Discount: 0.9, Iterations: -1}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := New[string, string](selfLoop(t, 1), Config{Discount: 2}, nil)
	assert.ErrorIs(t, err, mdp.ErrInvalidDiscount)
}

func TestSelfLoopConverges(t *testing.T) {
	for _, reward := range []float64{-1, 0.5, 3} {
		m := selfLoop(t, reward)
		v, err := New[string, string](m, Config{Discount: 0.5, Iterations: 60},
			zaptest.NewLogger(t))
		require.NoError(t, err)

		assert.InDelta(t, 2*reward, v.Value("s"), 1e-9)
		assert.InDelta(t, 2*reward, v.QValue("s", "stay"), 1e-9)

		action, ok := v.Policy("s")
		assert.True(t, ok)
		assert.Equal(t, "stay", action)
	}
}

func TestResiduals(t *testing.T) {
	v, err := New[string, string](selfLoop(t, 4),
		Config{Discount: 0.5, Iterations: 5}, nil)
	require.NoError(t, err)

	residuals := v.Residuals()
	require.Len(t, residuals, 5)
	want := 4.0
	for _, r := range residuals {
		assert.InDelta(t, want, r, 1e-12)
		want /= 2
	}
}

func TestZeroIterations(t *testing.T) {
	v, err := New[string, string](selfLoop(t, 1),
		Config{Discount: 0.9, Iterations: 0}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, v.Value("s"))
	assert.Empty(t, v.Residuals())
	assert.Equal(t, 1.0, v.QValue("s", "stay"))
}

// Sweeps read only the previous sweep's values, so a reward two steps
// away takes two sweeps to reach a state even when its successor is
// swept first.
func TestSweepsAreSynchronous(t *testing.T) {
	m, err := mdp.NewTabular([]int{0, 1, 2}, []string{"go"})
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(1, "go", 0, 1, 0))
	require.NoError(t, m.SetTransition(0, "go", 2, 1, 1))
	require.NoError(t, m.SetTerminal(2))

	one, err := New[int, string](m, Config{Discount: 1, Iterations: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, one.Value(0))
	assert.Equal(t, 0.0, one.Value(1))
	assert.Equal(t, 0.0, one.Value(2))

	two, err := New[int, string](m, Config{Discount: 1, Iterations: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, two.Value(0))
	assert.Equal(t, 1.0, two.Value(1))

	values := two.Values()
	assert.Equal(t, map[int]float64{0: 1, 1: 1, 2: 0}, values)
	values[0] = 100
	assert.Equal(t, 1.0, two.Value(0))
}

func TestPolicy(t *testing.T) {
	m, err := mdp.NewTabular([]string{"s", "dead end", "end"},
		[]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, m.SetTransition("s", "a", "end", 1, 1))
	require.NoError(t, m.SetTransition("s", "b", "end", 1, 1))
	require.NoError(t, m.SetTransition("s", "c", "end", 1, 0.5))
	require.NoError(t, m.SetTerminal("end"))

	v, err := New[string, string](m, Config{Discount: 0.9, Iterations: 10},
		nil)
	require.NoError(t, err)

	// Tied actions go to the first listed
	action, ok := v.Policy("s")
	assert.True(t, ok)
	assert.Equal(t, "a", action)

	action, ok = v.Action("s")
	assert.True(t, ok)
	assert.Equal(t, "a", action)

	_, ok = v.Policy("end")
	assert.False(t, ok, "terminal state")

	_, ok = v.Policy("dead end")
	assert.False(t, ok, "no legal actions")

	assert.Equal(t, 0.0, v.Value("unknown"))
}

func BenchmarkSweep(b *testing.B) {
	const n = 100
	states := make([]int, n)
	for i := range states {
		states[i] = i
	}
	m, err := mdp.NewTabular(states, []string{"left", "right"})
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if err := m.SetTransition(i, "left", (i+n-1)%n, 1, 0); err != nil {
			b.Fatal(err)
		}
		if err := m.SetTransition(i, "right", (i+1)%n, 1, 1); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := New[int, string](m, Config{Discount: 0.9, Iterations: 1},
			nil); err != nil {
			b.Fatal(err)
		}
	}
}
