package solver

// Main thread id, which has some privileges, like calling the listener during the search
const mainThreadId = 0

// Number of computed states between two limiter checks on one thread
const checkInterval = 1 << 10

// Default number of computed states between two progress callbacks
const defaultProgressInterval uint64 = 1 << 16
