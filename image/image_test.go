package image

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, m Manifest) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "image.json")
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal manifest: %v", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func validManifest() Manifest {
	return Manifest{
		FaultNotification: 0x1,
		Tasks: []TaskDesc{
			{
				Name:              "supervisor",
				Priority:          0,
				EntryPoint:        0x1000,
				StackPointer:      0x2000,
				InitiallyRunnable: true,
				Regions: []RegionSpec{
					{Base: 0x1000, Length: 0x1000, Read: true, Write: true},
				},
			},
			{
				Name:              "idle",
				Priority:          255,
				EntryPoint:        0x3000,
				StackPointer:      0x4000,
				InitiallyRunnable: true,
			},
		},
	}
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, validManifest())

	tasks, m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].Name != "supervisor" {
		t.Errorf("tasks[0].Name = %q, want supervisor", tasks[0].Name)
	}
	if !tasks[0].IsRunnable() {
		t.Error("tasks[0] not runnable")
	}
	if m.ID == "" {
		t.Error("Load did not assign a manifest ID")
	}
	if len(tasks[0].Regions) != 1 {
		t.Errorf("len(tasks[0].Regions) = %d, want 1", len(tasks[0].Regions))
	}
}

func TestLoadRejectsNoTasks(t *testing.T) {
	path := writeManifest(t, Manifest{})
	if _, _, err := Load(path); err == nil {
		t.Fatal("Load() with no tasks should error")
	}
}

func TestLoadRejectsNoRunnableTask(t *testing.T) {
	m := validManifest()
	m.Tasks[0].InitiallyRunnable = false
	m.Tasks[1].InitiallyRunnable = false
	path := writeManifest(t, m)

	if _, _, err := Load(path); err == nil {
		t.Fatal("Load() with no runnable task should error")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("Load() on a missing file should error")
	}
}

func TestNotInitiallyRunnableTaskIsNotRunnable(t *testing.T) {
	m := validManifest()
	m.Tasks = append(m.Tasks, TaskDesc{Name: "blocked", InitiallyRunnable: false})
	path := writeManifest(t, m)

	tasks, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tasks[2].IsRunnable() {
		t.Error("task configured initially_runnable=false is runnable")
	}
}

func TestSaveDebugSnapshotRoundTrips(t *testing.T) {
	m := validManifest()
	m.ID = "test-id"
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := m.SaveDebugSnapshot(path); err != nil {
		t.Fatalf("SaveDebugSnapshot() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var loaded Manifest
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if loaded.ID != "test-id" {
		t.Errorf("loaded.ID = %q, want test-id", loaded.ID)
	}
	if len(loaded.Tasks) != len(m.Tasks) {
		t.Errorf("len(loaded.Tasks) = %d, want %d", len(loaded.Tasks), len(m.Tasks))
	}
}
