/*
Package launcher implements tusk-launcher, an application launcher for
wlroots-based tiling compositors.

The project has three main source packages:
`cmd`: the launcher and the packaging helper.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package launcher
