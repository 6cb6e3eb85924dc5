package memregion

import (
	"testing"

	"microkernel-go/arch"
)

func TestRegionDescCovers(t *testing.T) {
	r := RegionDesc{Base: 100, Length: 50, Attributes: Read}

	tests := []struct {
		name  string
		slice arch.Slice
		want  bool
	}{
		{"fully inside", arch.Slice{Base: 110, Len: 10}, true},
		{"exact bounds", arch.Slice{Base: 100, Len: 50}, true},
		{"starts before", arch.Slice{Base: 90, Len: 20}, false},
		{"ends after", arch.Slice{Base: 120, Len: 40}, false},
		{"empty at base", arch.Slice{Base: 100, Len: 0}, true},
		{"empty at end", arch.Slice{Base: 150, Len: 0}, true},
		{"empty past end", arch.Slice{Base: 151, Len: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Covers(tt.slice); got != tt.want {
				t.Errorf("Covers(%v) = %v, want %v", tt.slice, got, tt.want)
			}
		})
	}
}

// Property 11: can_read/can_write on an empty slice is always true.
func TestEmptySliceAlwaysAccessible(t *testing.T) {
	tables := [][]RegionDesc{
		nil,
		{},
		{{Base: 0, Length: 10, Attributes: Device}},
	}
	for _, regions := range tables {
		empty := arch.Slice{Base: 12345, Len: 0}
		if !CanRead(regions, empty) {
			t.Errorf("CanRead(%v, empty) = false, want true", regions)
		}
		if !CanWrite(regions, empty) {
			t.Errorf("CanWrite(%v, empty) = false, want true", regions)
		}
	}
}

// Property 12: a slice wholly inside a READ region with DEVICE clear is
// always readable.
func TestSliceInsideReadableRegion(t *testing.T) {
	regions := []RegionDesc{{Base: 0x1000, Length: 0x100, Attributes: Read}}
	slice := arch.Slice{Base: 0x1010, Len: 0x10}
	if !CanRead(regions, slice) {
		t.Error("CanRead = false, want true for slice inside READ region")
	}
}

func TestDeviceRegionExcluded(t *testing.T) {
	regions := []RegionDesc{{Base: 0x2000, Length: 0x100, Attributes: Read | Write | Device}}
	slice := arch.Slice{Base: 0x2010, Len: 0x10}
	if CanRead(regions, slice) {
		t.Error("CanRead = true for a DEVICE region, want false")
	}
	if CanWrite(regions, slice) {
		t.Error("CanWrite = true for a DEVICE region, want false")
	}
}

func TestWriteRequiresWriteAttribute(t *testing.T) {
	regions := []RegionDesc{{Base: 0, Length: 0x100, Attributes: Read}}
	slice := arch.Slice{Base: 0x10, Len: 0x10}
	if !CanRead(regions, slice) {
		t.Error("CanRead = false, want true")
	}
	if CanWrite(regions, slice) {
		t.Error("CanWrite = true for a READ-only region, want false")
	}
}

func TestNoCoveringRegion(t *testing.T) {
	regions := []RegionDesc{{Base: 0x1000, Length: 0x100, Attributes: Read | Write}}
	slice := arch.Slice{Base: 0x5000, Len: 0x10}
	if CanRead(regions, slice) {
		t.Error("CanRead = true with no covering region, want false")
	}
}

func TestRegionAttributesString(t *testing.T) {
	tests := []struct {
		attrs RegionAttributes
		want  string
	}{
		{0, "NONE"},
		{Read, "READ"},
		{Read | Write, "READ|WRITE"},
		{Read | Write | Device, "READ|WRITE|DEVICE"},
	}
	for _, tt := range tests {
		if got := tt.attrs.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
