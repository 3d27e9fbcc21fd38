package ue4_test

import (
	"bytes"
	"testing"

	"github.com/naurium/icarus-mount-editor/ue4"
)

func decodeFixture(t *testing.T) *ue4.List {
	t.Helper()
	list, err := ue4.Deserialize(buildMountBlob())
	if err != nil {
		t.Fatal(err)
	}
	return list
}

func TestFindPaths(t *testing.T) {
	list := decodeFixture(t)

	tests := []struct {
		path  string
		found bool
	}{
		{"MountName", true},
		{"MountPosition.Y", true},
		{"Stats.Stamina", true},
		{"Talents[0].Rank", true},
		{"Talents[1].Rank", true},
		{"Talents[2].Rank", false},
		{"Talents[x].Rank", false},
		{"Stats.Missing", false},
		{"NoSuchProperty", false},
		{"MountName.Child", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := list.Find(tt.path)
			if (p != nil) != tt.found {
				t.Fatalf("Find(%q) = %+v, want found=%v", tt.path, p, tt.found)
			}
		})
	}
}

func TestFindSkipsTerminator(t *testing.T) {
	list := decodeFixture(t)
	if p := list.Find("None"); p != nil {
		t.Fatalf("terminator must not resolve, got %+v", p)
	}
}

func TestSetValueConversions(t *testing.T) {
	list := decodeFixture(t)

	tests := []struct {
		path  string
		value any
		check func(*ue4.Property) bool
	}{
		{"MountLevel", 42, func(p *ue4.Property) bool { return p.I32 == 42 }},
		{"MountLevel", int64(7), func(p *ue4.Property) bool { return p.I32 == 7 }},
		{"bIsTamed", false, func(p *ue4.Property) bool { return !p.Bool }},
		{"MountName", "Biscuit", func(p *ue4.Property) bool { return p.Str.Value == "Biscuit" }},
		{"AISetupRowName", "Mount_Arctic_Moa", func(p *ue4.Property) bool { return p.Str.Value == "Mount_Arctic_Moa" }},
		{"MountPosition.Z", float32(99), func(p *ue4.Property) bool { return p.F32 == 99 }},
		{"Gait", "EMountGait::Gallop", func(p *ue4.Property) bool { return p.Enum.Value.Value == "EMountGait::Gallop" }},
		{"Talents[1].Rank", 5, func(p *ue4.Property) bool { return p.I32 == 5 }},
	}
	for _, tt := range tests {
		if err := ue4.SetValue(list.Properties, tt.path, tt.value); err != nil {
			t.Fatalf("SetValue(%q, %v): %v", tt.path, tt.value, err)
		}
		if !tt.check(list.Find(tt.path)) {
			t.Fatalf("SetValue(%q, %v) did not apply", tt.path, tt.value)
		}
	}
}

func TestSetValueErrors(t *testing.T) {
	list := decodeFixture(t)

	if err := ue4.SetValue(list.Properties, "NoSuchProperty", 1); err == nil {
		t.Fatal("expected not-found error")
	}
	if err := ue4.SetValue(list.Properties, "MountLevel", "fifty"); err == nil {
		t.Fatal("expected type mismatch error")
	}
	if err := ue4.SetValue(list.Properties, "MountLevel", int64(1)<<40); err == nil {
		t.Fatal("expected range error")
	}
	if err := ue4.SetValue(list.Properties, "bIsTamed", 1); err == nil {
		t.Fatal("expected bool type error")
	}
}

func TestCloneListIndependence(t *testing.T) {
	list := decodeFixture(t)
	clone, err := ue4.CloneList(list)
	if err != nil {
		t.Fatal(err)
	}

	if err := ue4.SetValue(clone.Properties, "MountName", "Copy"); err != nil {
		t.Fatal(err)
	}
	if err := ue4.SetValue(clone.Properties, "Talents[0].Rank", 99); err != nil {
		t.Fatal(err)
	}

	if p := list.Find("MountName"); p.Str.Value != "Clover" {
		t.Fatalf("clone edit leaked into source: MountName = %q", p.Str.Value)
	}
	if p := list.Find("Talents[0].Rank"); p.I32 != 2 {
		t.Fatalf("clone edit leaked into source: Rank = %d", p.I32)
	}

	src, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, buildMountBlob()) {
		t.Fatal("cloning must leave the source list intact")
	}
}
