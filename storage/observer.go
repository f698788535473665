package storage

import "github.com/dshills/gridstorm/storage/update"

// Observer is the contract between the engine and the presentation layer
// consuming its changes. Exactly one of the two callbacks fires per
// notification: ApplyUpdate at the close of a batch that recorded at least
// one structural change, ReloadAll for bulk-replacement operations whose
// effect is total.
//
// Callbacks run synchronously on the mutating goroutine. An observer must
// not call back into the engine's mutation API from within a callback.
type Observer interface {
	// ApplyUpdate delivers the consolidated diff for one closed batch.
	// Ownership of the update transfers to the observer.
	ApplyUpdate(u *update.Update)

	// ReloadAll signals that any diff should be discarded and the entire
	// dataset treated as new.
	ReloadAll()
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil
// fields are skipped.
type ObserverFuncs struct {
	OnUpdate func(u *update.Update)
	OnReload func()
}

// ApplyUpdate calls OnUpdate if set.
func (o ObserverFuncs) ApplyUpdate(u *update.Update) {
	if o.OnUpdate != nil {
		o.OnUpdate(u)
	}
}

// ReloadAll calls OnReload if set.
func (o ObserverFuncs) ReloadAll() {
	if o.OnReload != nil {
		o.OnReload()
	}
}

// FanOut forwards every notification to a list of observers, letting more
// than one presentation surface watch a single store. The engine still
// holds exactly one observer reference; the fan-out is that observer.
type FanOut struct {
	observers []Observer
}

// NewFanOut returns a FanOut over the given observers.
func NewFanOut(observers ...Observer) *FanOut {
	return &FanOut{observers: observers}
}

// Add appends an observer to the fan-out list.
func (f *FanOut) Add(o Observer) {
	f.observers = append(f.observers, o)
}

// ApplyUpdate forwards the update to every observer in registration order.
func (f *FanOut) ApplyUpdate(u *update.Update) {
	for _, o := range f.observers {
		o.ApplyUpdate(u)
	}
}

// ReloadAll forwards the reload signal to every observer in registration
// order.
func (f *FanOut) ReloadAll() {
	for _, o := range f.observers {
		o.ReloadAll()
	}
}
