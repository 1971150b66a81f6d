/*
Package tree implements an all-purpose tree node.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node holds an ordered slice of
children and a link to its parent. Higher level trees (the live document
tree of package dom and the cloned tree of package clone) embed a Node
and let the payload point back to the embedding node, so that generic
tree code may hand out the typed node:

	type MyNode struct {
	    tree.Node[*MyNode]
	    ...
	}
	n := &MyNode{}
	n.Payload = n

In a fully object oriented programming language we would subclass the
tree type, but in Go we resort to composition.

Children slices are protected by a mutex, so nodes may be inspected from
a goroutine other than the one which built them. Traversal with Walk is
synchronous.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
