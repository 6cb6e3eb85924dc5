// Package image loads and validates the static boot manifest a kernel
// instance is configured from: the flattened, read-only "bundle" of task
// descriptors Hubris calls an image. There is no dynamic task creation
// (spec.md Non-goal), so this manifest is read exactly once, at boot, and
// never again.
package image

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"microkernel-go/abi"
	"microkernel-go/arch"
	"microkernel-go/memregion"
	"microkernel-go/task"
)

// RegionSpec is the JSON shape of one RegionDesc entry.
type RegionSpec struct {
	Base   uint32 `json:"base"`
	Length uint32 `json:"length"`
	Read   bool   `json:"read"`
	Write  bool   `json:"write"`
	Device bool   `json:"device"`
}

func (r RegionSpec) toRegionDesc() memregion.RegionDesc {
	var attrs memregion.RegionAttributes
	if r.Read {
		attrs |= memregion.Read
	}
	if r.Write {
		attrs |= memregion.Write
	}
	if r.Device {
		attrs |= memregion.Device
	}
	return memregion.RegionDesc{Base: r.Base, Length: r.Length, Attributes: attrs}
}

// TaskDesc is the static, read-only configuration for one task in the
// manifest: its name, priority, entry point, initial notification mask,
// and region table. Used only at boot and by reinitialize.
type TaskDesc struct {
	Name              string       `json:"name"`
	Priority          abi.Priority `json:"priority"`
	EntryPoint        uint32       `json:"entry_point"`
	StackPointer      uint32       `json:"stack_pointer"`
	InitialArg0       uint32       `json:"initial_arg0"`
	InitialArg1       uint32       `json:"initial_arg1"`
	NotificationMask  uint32       `json:"notification_mask"`
	InitiallyRunnable bool         `json:"initially_runnable"`
	Regions           []RegionSpec `json:"regions"`
}

func (d TaskDesc) entryPoint() arch.EntryPoint {
	return arch.EntryPoint{
		PC:           d.EntryPoint,
		StackPointer: d.StackPointer,
		Arg0:         d.InitialArg0,
		Arg1:         d.InitialArg1,
	}
}

// Manifest is the top-level JSON document describing a kernel instance's
// static task set.
type Manifest struct {
	// ID identifies this boot image instance. Assigned at Load time if
	// empty in the file, using a random UUID — purely a debugging/log
	// correlation aid, never interpreted by the core.
	ID                string     `json:"id,omitempty"`
	Created           time.Time  `json:"created,omitempty"`
	FaultNotification uint32     `json:"fault_notification"`
	Tasks             []TaskDesc `json:"tasks"`
}

// Load reads, validates, and instantiates the task table described by the
// manifest at path. Returns the task slice in manifest order (index order
// is table order; index 0 is the supervisor by convention) and the
// manifest itself (for the fault-notification word and debug dumps).
func Load(path string) ([]*task.Task, *Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("image: read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("image: parse manifest: %w", err)
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if err := validate(&m); err != nil {
		return nil, nil, err
	}

	tasks := make([]*task.Task, len(m.Tasks))
	for i, d := range m.Tasks {
		regions := make([]memregion.RegionDesc, len(d.Regions))
		for j, r := range d.Regions {
			regions[j] = r.toRegionDesc()
		}
		t := task.New(arch.NewSimAdapter(), d.Name, d.Priority, regions, d.entryPoint())
		t.Mask = d.NotificationMask
		if !d.InitiallyRunnable {
			t.State = abi.TaskState{} // Healthy(default SchedState) — not Runnable
		}
		tasks[i] = t
	}

	return tasks, &m, nil
}

// validate enforces the manifest-level invariants that the core itself
// only asserts (spec.md §9 Open Questions): at least one task, and at
// least one task configured Runnable at boot so sched.Select never panics
// on a freshly-loaded image.
func validate(m *Manifest) error {
	if len(m.Tasks) == 0 {
		return fmt.Errorf("image: manifest has no tasks")
	}
	if maxTasks := int(abi.IndexMask) + 1; len(m.Tasks) > maxTasks {
		return fmt.Errorf("image: %d tasks exceeds the %d-entry table index space", len(m.Tasks), maxTasks)
	}
	hasRunnable := false
	for _, d := range m.Tasks {
		if d.InitiallyRunnable {
			hasRunnable = true
			break
		}
	}
	if !hasRunnable {
		return fmt.Errorf("image: no task is configured initially_runnable; the scheduler requires at least one always-runnable task")
	}
	return nil
}

// SaveDebugSnapshot writes a JSON snapshot of the manifest to path,
// atomically (temp file + rename), in the same idiom the teacher uses for
// its container-state persistence. This is a debugging aid — the boot
// manifest itself is never rewritten by a running kernel instance.
func (m *Manifest) SaveDebugSnapshot(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".image-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
