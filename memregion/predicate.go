package memregion

import "microkernel-go/arch"

// CanRead reports whether some region in the table covers slice, has Read
// set, and does not have Device set. An empty slice always returns true,
// regardless of the region table's contents.
//
// Takes a region table directly, rather than a *task.Task, so this package
// never has to import task (task already imports memregion for
// RegionDesc); task.Task exposes CanRead/CanWrite wrappers that forward
// here with its own table.
func CanRead(regions []RegionDesc, slice arch.Slice) bool {
	return canAccess(regions, slice, Read)
}

// CanWrite is CanRead with Write in place of Read.
func CanWrite(regions []RegionDesc, slice arch.Slice) bool {
	return canAccess(regions, slice, Write)
}

func canAccess(regions []RegionDesc, slice arch.Slice, want RegionAttributes) bool {
	if slice.Len == 0 {
		return true
	}
	for _, r := range regions {
		if !r.Covers(slice) {
			continue
		}
		if !r.Attributes.Contains(want) {
			continue
		}
		if r.Attributes.Contains(Device) {
			continue
		}
		return true
	}
	return false
}
