/*
Package timer provides a software countdown/stopwatch state machine of the kind
found in embedded firmware: a bounded integer counter that is armed with a
duration, advanced one tick at a time by its owner, and polled for a sticky
interrupt flag once a countdown completes.

Advancing is a discrete, externally triggered operation.  This package supplies
no tick source and no wall-clock integration; drive it from whatever loop or
timer event the application already has.

A Timer is a single-owner value.  Operations mutate it in place and perform no
synchronization.  Callers that share a timer between goroutines must supply
their own mutual exclusion around every operation.
*/
package timer
