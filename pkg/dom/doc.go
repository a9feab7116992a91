// Package dom connects typed entries and reactive values to a document.
//
// A Sink is the write-only surface of one DOM element. The binding core never
// reads from it: BindAttr and BindStyle encode the current value, write it,
// and rewrite it whenever a reactive input changes.
//
// Three sinks are provided:
//
//   - MemorySink, created by a Document, keeps an x/net/html node tree that
//     can be inspected in tests and rendered to HTML.
//   - JSSink (js/wasm builds) writes to the browser DOM through syscall/js.
//   - Recorder wraps another sink and emits a Patch for every write, so a
//     remote client can replay the changes.
//
// Elements own a reactive.Scope. Disposing an element cancels every binding
// it made and those of its children.
package dom
