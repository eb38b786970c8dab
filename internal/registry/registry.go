package registry

// Record is the unit of state persisted for a managed service.
// BinaryPath doubles as the unique identifier: the registry never
// holds two records for the same path. PID is the process id captured
// at spawn time; it is only ever zero transiently, before the record
// is persisted.

type Record struct {
	BinaryPath string `json:"binary_path"`
	PID        int    `json:"pid,omitempty"`
}

// Registry is the ordered set of tracked services. Order is insertion
// order; lookups are linear scans on BinaryPath.
type Registry []Record

// Find returns the index of the record with the given binary path, or -1.
func (r Registry) Find(binaryPath string) int {
	for i := range r {
		if r[i].BinaryPath == binaryPath {
			return i
		}
	}
	return -1
}

// Contains reports whether a record with the given binary path exists.
func (r Registry) Contains(binaryPath string) bool { return r.Find(binaryPath) >= 0 }

// Append adds a record, preserving insertion order.
func (r Registry) Append(rec Record) Registry { return append(r, rec) }

// Remove drops the record at index i, keeping the order of the rest.
func (r Registry) Remove(i int) Registry {
	out := make(Registry, 0, len(r)-1)
	out = append(out, r[:i]...)
	out = append(out, r[i+1:]...)
	return out
}
