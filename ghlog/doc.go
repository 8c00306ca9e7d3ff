// Package ghlog provides lightweight timing instrumentation and a flat
// key/value JSON log sink for the Gomory–Hu and k-cut builders.
//
// A Logger is an explicit value threaded through the builders rather than a
// process-wide singleton: the driver owns it, the builders only write to it,
// and the driver decides when (and whether) to flush it to an output stream.
// A nil *Logger is always a valid, no-op logger, so call sites do not need to
// special-case "no logging requested".
package ghlog
