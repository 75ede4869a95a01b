// Package calc contains the calculator state machine behind the keypad.
//
// Allowed here:
// - digit entry, operator selection, equals evaluation and clear
// - result formatting for the single-line display
//
// Not allowed here:
// - key handling, rendering or anything bubbletea specific
package calc
