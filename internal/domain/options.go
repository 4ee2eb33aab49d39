package domain

// ValidatorOptions carries the limits and relaxations handed to the
// validator. Only limits that were explicitly set are present; the engine
// applies its own defaults for the rest.
type ValidatorOptions struct {
	limits              map[LimitKind]uint32
	relaxLogicalPointer bool
	relaxStructStore    bool
}

// NewValidatorOptions returns options with nothing set.
func NewValidatorOptions() *ValidatorOptions {
	return &ValidatorOptions{limits: make(map[LimitKind]uint32)}
}

// SetUniversalLimit sets a limit. A later call for the same kind wins.
func (o *ValidatorOptions) SetUniversalLimit(kind LimitKind, value uint32) {
	if o.limits == nil {
		o.limits = make(map[LimitKind]uint32)
	}
	o.limits[kind] = value
}

// Limit reports the value of a limit and whether it was set.
func (o *ValidatorOptions) Limit(kind LimitKind) (uint32, bool) {
	v, ok := o.limits[kind]
	return v, ok
}

// Limits returns the set limits in table order.
func (o *ValidatorOptions) Limits() []Limit {
	var out []Limit
	for _, k := range AllLimitKinds() {
		if v, ok := o.limits[k]; ok {
			out = append(out, Limit{Kind: k, Value: v})
		}
	}
	return out
}

func (o *ValidatorOptions) SetRelaxLogicalPointer(v bool) { o.relaxLogicalPointer = v }

func (o *ValidatorOptions) SetRelaxStructStore(v bool) { o.relaxStructStore = v }

func (o *ValidatorOptions) RelaxLogicalPointer() bool { return o.relaxLogicalPointer }

func (o *ValidatorOptions) RelaxStructStore() bool { return o.relaxStructStore }

// Limit is one explicitly set limit.
type Limit struct {
	Kind  LimitKind
	Value uint32
}
