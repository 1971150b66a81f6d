/*
Package cssom provides interfaces for CSS stylesheets.

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in
sub-packages (see package douceuradapter).

Stylesheets are consumed by hosts which resolve the style of document
nodes. The cloning engine itself never looks at stylesheets; it only
consumes resolved styles.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
