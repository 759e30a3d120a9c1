package searching

// NotFound is the sentinel index reported when the target is absent.
// It is distinct from every valid 0-based index.
const NotFound = -1
