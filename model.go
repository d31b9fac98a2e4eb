package simparams

import "strconv"

// defaultParameters is the canonical parameter table for the driven-dissipative
// spin-lattice model. Table order is the enumeration order of a fresh Model.
// Conventions follow https://doi.org/10.1103/PhysRevA.93.023821.
var defaultParameters = []Override{
	{"U", "0"},                // Sz-Sz interaction strength U*Sz*Sz
	{"J", "1"},                // hopping H = -J*(S+S- + S-S+)
	{"Omega", "0.5"},          // transverse drive, Omega*sigma^x = 2*Omega*S^x
	{"Delta", "0"},            // longitudinal field H = Delta*S^z
	{"gamma", "1.0"},          // strength of the loss term
	{"x_init", "0"},           // initial state: spins tilted toward x
	{"y_init", "0"},           // initial state: spins tilted toward y
	{"b_periodic_x", "false"}, // periodic boundary in x (can be very costly)
	{"b_periodic_y", "false"}, // periodic boundary in y
	{"Lx", "4"},
	{"Ly", "1"},
}

// DefaultParameters returns a copy of the model's default parameter table in
// declaration order.
func DefaultParameters() []Override {
	out := make([]Override, len(defaultParameters))
	copy(out, defaultParameters)
	return out
}

// Model is a parameter store pre-populated with the spin-lattice defaults.
// Construct one per run, merge overrides, call Check, then read.
type Model struct {
	*Store
}

// NewModel creates a Model with every default in place.
func NewModel() *Model {
	s := NewStore()
	s.MergeOverrides(defaultParameters)
	return &Model{Store: s}
}

// Lattice is the geometry subset of the model parameters, decodable from the
// store with Scan.
type Lattice struct {
	Lx        int64 `toml:"Lx"`
	Ly        int64 `toml:"Ly"`
	PeriodicX bool  `toml:"b_periodic_x"`
	PeriodicY bool  `toml:"b_periodic_y"`
}

// Check validates the lattice geometry. It returns a *ValidationError naming
// the offending parameters, or a typed store error if the extents do not
// parse; it never terminates the process. Check reads nothing but Lx and Ly
// and may be called repeatedly with the same outcome.
func (m *Model) Check() error {
	lx, err := m.GetInt("Lx")
	if err != nil {
		return err
	}
	ly, err := m.GetInt("Ly")
	if err != nil {
		return err
	}

	extents := []Override{
		{"Lx", strconv.FormatInt(lx, 10)},
		{"Ly", strconv.FormatInt(ly, 10)},
	}
	if lx < 1 || ly < 1 {
		return &ValidationError{
			Constraint: "each lattice extent must be at least 1",
			Params:     extents,
		}
	}
	// Reachable only when Lx*Ly overflows and wraps non-positive for extreme
	// extents.
	if n := lx * ly; n < 1 {
		return &ValidationError{
			Constraint: "the lattice must contain at least 1 site",
			Params:     extents,
		}
	}
	return nil
}

// Coupling returns U, the Sz-Sz interaction strength.
func (m *Model) Coupling() (float64, error) { return m.GetFloat("U") }

// Hopping returns J, the hopping amplitude.
func (m *Model) Hopping() (float64, error) { return m.GetFloat("J") }

// DriveAmplitude returns Omega, the transverse drive amplitude.
func (m *Model) DriveAmplitude() (float64, error) { return m.GetFloat("Omega") }

// Detuning returns Delta, the longitudinal field.
func (m *Model) Detuning() (float64, error) { return m.GetFloat("Delta") }

// LossRate returns gamma, the dissipation strength.
func (m *Model) LossRate() (float64, error) { return m.GetFloat("gamma") }

// InitTiltX returns x_init, the initial tilt of the spins toward x.
func (m *Model) InitTiltX() (float64, error) { return m.GetFloat("x_init") }

// InitTiltY returns y_init, the initial tilt of the spins toward y.
func (m *Model) InitTiltY() (float64, error) { return m.GetFloat("y_init") }

// PeriodicX reports whether the boundary is periodic in x.
func (m *Model) PeriodicX() (bool, error) { return m.GetBool("b_periodic_x") }

// PeriodicY reports whether the boundary is periodic in y.
func (m *Model) PeriodicY() (bool, error) { return m.GetBool("b_periodic_y") }

// ExtentX returns the lattice extent Lx.
func (m *Model) ExtentX() (int64, error) { return m.GetInt("Lx") }

// ExtentY returns the lattice extent Ly.
func (m *Model) ExtentY() (int64, error) { return m.GetInt("Ly") }

// SiteCount returns the total number of lattice sites, Lx*Ly.
func (m *Model) SiteCount() (int64, error) {
	lx, err := m.GetInt("Lx")
	if err != nil {
		return 0, err
	}
	ly, err := m.GetInt("Ly")
	if err != nil {
		return 0, err
	}
	return lx * ly, nil
}

// Lattice decodes the geometry parameters into a Lattice struct.
func (m *Model) Lattice() (Lattice, error) {
	var l Lattice
	if err := m.Scan(&l); err != nil {
		return Lattice{}, err
	}
	return l, nil
}
