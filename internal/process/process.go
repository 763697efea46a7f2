// Package process manages process groups for spawned converters, so that a
// cancelled conversion also stops any children the converter started
// (the drawj2d launcher script runs a JVM).
package process
