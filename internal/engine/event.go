package engine

// Event is a multi-cast event: listeners run in the order they were added.
// There is no removal; Go funcs are not comparable.
type Event struct {
	listeners []func()
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// GetListenerCount returns the number of registered listeners
func (e *Event) GetListenerCount() int {
	return len(e.listeners)
}

// AnimationRegistry holds the per-frame update callbacks registered by
// actors once their assets resolve. It only grows.
type AnimationRegistry struct {
	ev Event
}

func NewAnimationRegistry() *AnimationRegistry {
	return &AnimationRegistry{}
}

// Register appends fn; nil is ignored.
func (r *AnimationRegistry) Register(fn func()) {
	r.ev.AddListener(fn)
}

// Len returns the number of registered callbacks.
func (r *AnimationRegistry) Len() int {
	return r.ev.GetListenerCount()
}

// Invoke runs every callback once, in registration order.
func (r *AnimationRegistry) Invoke() {
	r.ev.Invoke()
}
