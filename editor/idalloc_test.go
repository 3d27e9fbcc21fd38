package editor

import (
	"testing"

	"github.com/naurium/icarus-mount-editor/ue4"
)

func mountWithObjectFName(value string) *Mount {
	return &Mount{
		JSON: map[string]any{},
		Properties: &ue4.List{Properties: []*ue4.Property{
			{Name: ue4.Str("ObjectFName"), Type: ue4.TypeName, Str: ue4.Str(value)},
		}},
	}
}

func TestUsedActorIDs(t *testing.T) {
	mounts := []*Mount{
		mountWithObjectFName("BP_Mount_Horse_C_2147441213"),
		mountWithObjectFName("BP_Mount_Moa_C_2147000001"),
		mountWithObjectFName("BP_Mount_Tusker_C"), // no ID suffix
		{JSON: map[string]any{}, Properties: &ue4.List{}},
	}
	used := usedActorIDs(mounts)
	if len(used) != 2 {
		t.Fatalf("used = %v, want 2 entries", used)
	}
	for _, id := range []int64{2147441213, 2147000001} {
		if _, ok := used[id]; !ok {
			t.Fatalf("ID %d not harvested", id)
		}
	}
}

func TestAllocateActorID(t *testing.T) {
	used := map[int64]struct{}{}
	for i := 0; i < 100; i++ {
		id := allocateActorID(used)
		if id < idMin || id > idMax {
			t.Fatalf("ID %d outside actor range", id)
		}
		if _, taken := used[id]; taken {
			t.Fatalf("ID %d allocated twice", id)
		}
		used[id] = struct{}{}
	}
}
