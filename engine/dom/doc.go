/*
Package dom defines the host element tree as seen by the layout engine.

The layout engine does not own the elements it positions. It talks to an
external element tree through the interfaces of this package: elements expose
attributes, their currently measured geometry and a write-back of geometry;
documents resolve selectors and deliver mutation notifications.

Package htmldom contains an implementation on top of an HTML parse tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom
