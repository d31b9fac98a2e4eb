package simparams

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModelDefaults verifies the declared default set, values and order
func TestModelDefaults(t *testing.T) {
	expected := []Override{
		{"U", "0"},
		{"J", "1"},
		{"Omega", "0.5"},
		{"Delta", "0"},
		{"gamma", "1.0"},
		{"x_init", "0"},
		{"y_init", "0"},
		{"b_periodic_x", "false"},
		{"b_periodic_y", "false"},
		{"Lx", "4"},
		{"Ly", "1"},
	}

	m := NewModel()
	assert.Equal(t, expected, m.All())

	for _, p := range expected {
		text, err := m.GetText(p.Name)
		require.NoError(t, err, "default %q", p.Name)
		assert.Equal(t, p.Value, text, "default %q", p.Name)
	}
}

func TestDefaultParametersIsACopy(t *testing.T) {
	defaults := DefaultParameters()
	defaults[0].Value = "99"

	m := NewModel()
	text, err := m.GetText("U")
	require.NoError(t, err)
	assert.Equal(t, "0", text)
}

// TestModelCheck tests the lattice validation gate
func TestModelCheck(t *testing.T) {
	t.Run("DefaultsPass", func(t *testing.T) {
		m := NewModel()
		require.NoError(t, m.Check())
	})

	t.Run("Idempotent", func(t *testing.T) {
		m := NewModel()
		require.NoError(t, m.Check())
		require.NoError(t, m.Check())
	})

	t.Run("ZeroExtent", func(t *testing.T) {
		m := NewModel()
		m.Set("Lx", "0")

		err := m.Check()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)

		// The diagnostic names both extents and their values
		assert.Contains(t, err.Error(), "Lx")
		assert.Contains(t, err.Error(), "0")
		assert.Contains(t, err.Error(), "Ly")
		assert.Equal(t, []Override{{"Lx", "0"}, {"Ly", "1"}}, validationErr.Params)
	})

	t.Run("NegativeExtent", func(t *testing.T) {
		m := NewModel()
		m.Set("Lx", "-1")
		m.Set("Ly", "2")

		err := m.Check()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("BothExtentsInvalid", func(t *testing.T) {
		m := NewModel()
		m.Set("Lx", "0")
		m.Set("Ly", "0")
		assert.Error(t, m.Check())
	})

	t.Run("OverflowingProduct", func(t *testing.T) {
		m := NewModel()
		m.Set("Lx", strconv.FormatInt(int64(1)<<62, 10))
		m.Set("Ly", "4")

		err := m.Check()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Constraint, "site")
	})

	t.Run("MalformedExtent", func(t *testing.T) {
		m := NewModel()
		m.Set("Lx", "four")

		err := m.Check()
		var malformedErr *MalformedValueError
		require.ErrorAs(t, err, &malformedErr)
		assert.Equal(t, "Lx", malformedErr.Name)
	})

	t.Run("NoSideEffectsOnSuccess", func(t *testing.T) {
		m := NewModel()
		before := m.All()
		require.NoError(t, m.Check())
		assert.Equal(t, before, m.All())
	})
}

// TestModelAccessors tests the typed convenience getters
func TestModelAccessors(t *testing.T) {
	m := NewModel()
	m.MergeOverrides([]Override{
		{"U", "2.5"},
		{"Omega", "1.5"},
		{"gamma", "0.1"},
		{"b_periodic_x", "true"},
		{"Lx", "8"},
		{"Ly", "2"},
	})

	u, err := m.Coupling()
	require.NoError(t, err)
	assert.Equal(t, 2.5, u)

	j, err := m.Hopping()
	require.NoError(t, err)
	assert.Equal(t, 1.0, j)

	omega, err := m.DriveAmplitude()
	require.NoError(t, err)
	assert.Equal(t, 1.5, omega)

	delta, err := m.Detuning()
	require.NoError(t, err)
	assert.Equal(t, 0.0, delta)

	gamma, err := m.LossRate()
	require.NoError(t, err)
	assert.Equal(t, 0.1, gamma)

	xInit, err := m.InitTiltX()
	require.NoError(t, err)
	assert.Equal(t, 0.0, xInit)

	yInit, err := m.InitTiltY()
	require.NoError(t, err)
	assert.Equal(t, 0.0, yInit)

	px, err := m.PeriodicX()
	require.NoError(t, err)
	assert.True(t, px)

	py, err := m.PeriodicY()
	require.NoError(t, err)
	assert.False(t, py)

	lx, err := m.ExtentX()
	require.NoError(t, err)
	assert.Equal(t, int64(8), lx)

	ly, err := m.ExtentY()
	require.NoError(t, err)
	assert.Equal(t, int64(2), ly)

	n, err := m.SiteCount()
	require.NoError(t, err)
	assert.Equal(t, int64(16), n)
}

func TestModelLattice(t *testing.T) {
	m := NewModel()
	m.MergeOverrides([]Override{
		{"Lx", "6"},
		{"Ly", "3"},
		{"b_periodic_y", "true"},
	})

	lattice, err := m.Lattice()
	require.NoError(t, err)
	assert.Equal(t, Lattice{Lx: 6, Ly: 3, PeriodicX: false, PeriodicY: true}, lattice)
}
