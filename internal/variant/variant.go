// Package variant maps panel model identifiers to the timing mode, bus
// configuration and vendor init table of a supported module. Adding a
// panel model means registering a new binding here; the controller logic
// in internal/panel never changes for it.
package variant

import (
	"fmt"
	"sort"

	"dsipanel/internal/panel"
)

// Variant binds one panel model to everything the controller needs.
type Variant struct {
	Model  string
	Mode   panel.TimingMode
	Config panel.Config
	Table  panel.Table
}

var registry = map[string]Variant{}

// Register adds a binding. It panics on an empty or duplicate model id:
// both are wiring bugs that should fail at process start, not at lookup.
func Register(v Variant) {
	if v.Model == "" {
		panic("variant: empty model id")
	}
	if _, dup := registry[v.Model]; dup {
		panic(fmt.Sprintf("variant: duplicate registration for %q", v.Model))
	}
	registry[v.Model] = v
}

// Lookup resolves a model identifier to its binding.
func Lookup(model string) (Variant, error) {
	v, ok := registry[model]
	if !ok {
		return Variant{}, fmt.Errorf("variant: unknown panel model %q", model)
	}
	return v, nil
}

// Models lists the registered model identifiers in sorted order.
func Models() []string {
	out := make([]string, 0, len(registry))
	for m := range registry {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
