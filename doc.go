// Package siquant implements an SI dimension, unit and scalar quantity
// algebra. The dimension package models rational-exponent vectors over the
// seven SI base dimensions, the unit package layers named and prefixed
// measurement scales on top of them, and the scalar package binds numeric
// values to units with dimensionally checked arithmetic.
//
// This root package holds the error kinds shared by all three engines.
package siquant
