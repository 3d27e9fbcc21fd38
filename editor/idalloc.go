package editor

import (
	"math/rand"
	"regexp"
	"strconv"

	"github.com/naurium/icarus-mount-editor/ue4"
)

// Actor instance IDs live near the top of the int32 range; the game
// allocates them there and collisions would merge two actors.
const (
	idMin = 2147000000
	idMax = 2147483647
)

var idSuffix = regexp.MustCompile(`_(\d+)$`)

// usedActorIDs harvests the instance ID suffix of every mount's
// ObjectFName.
func usedActorIDs(mounts []*Mount) map[int64]struct{} {
	used := make(map[int64]struct{})
	for _, m := range mounts {
		p := m.Properties.Find("ObjectFName")
		if p == nil || p.Type != ue4.TypeName {
			continue
		}
		match := idSuffix.FindStringSubmatch(p.Str.Value)
		if match == nil {
			continue
		}
		if id, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			used[id] = struct{}{}
		}
	}
	return used
}

// allocateActorID picks a random unused ID from the actor range.
func allocateActorID(used map[int64]struct{}) int64 {
	for {
		id := idMin + rand.Int63n(idMax-idMin+1)
		if _, taken := used[id]; !taken {
			return id
		}
	}
}
