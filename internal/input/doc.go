// Package input binds keyboard and pointer inputs to named callbacks and
// dispatches raw windowing-layer notifications to them.
//
// The pieces, leaves first:
//
//   - Event, KeyEvent, ButtonEvent, MoveEvent, ScrollEvent: the sum type
//     handed to callbacks.
//   - Identifier: what produced an event. Keys and buttons use the windowing
//     layer's codes; scroll and move use IdentifierScroll and IdentifierMove.
//   - Registry: callback name -> Handler, filled by application code.
//   - Table: Identifier -> Binding (handler plus required modifiers).
//   - Resolver: reads a bindings document and rebuilds the Table.
//   - Dispatcher: the Sink the windowing layer calls once per notification.
//   - Manager: owns all of the above for one window.
//
// A binding fires when every required modifier is held; extra modifiers do
// not block it:
//
//	live&required == required
//
// Modifiers are sampled from the Window at dispatch time for every kind,
// since scroll and move notifications do not carry them.
//
// Nothing here is safe for concurrent use. Dispatch, binding and Manager.Poll
// all belong on the thread that polls the window.
package input
