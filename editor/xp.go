package editor

// Mount experience curve. The game stores it as a cubic Hermite
// spline (FRichCurve) in C_MountExperienceGrowth.uasset; these are its
// keypoints as (level, xp, tangent).
var xpKeypoints = [...]struct {
	level   int
	xp      float64
	tangent float64
}{
	{10, 13500, 2250},
	{30, 140000, 17000},
	{50, 1150000, 88000},
}

// MaxLevel is the level cap for mounts.
const MaxLevel = 50

func hermite(t, p0, p1, m0, m1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

// XPForLevel returns the experience total matching a level on the
// game's growth curve. The JSON MountLevel field stays authoritative
// for the displayed level; this value drives the XP bar.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}

	first := xpKeypoints[0]
	if level < first.level {
		xp := first.xp - first.tangent*float64(first.level-level)
		if xp < 0 {
			return 0
		}
		return int(xp)
	}

	last := xpKeypoints[len(xpKeypoints)-1]
	if level >= last.level {
		return int(last.xp + last.tangent*float64(level-last.level))
	}

	for i := 0; i < len(xpKeypoints)-1; i++ {
		k0, k1 := xpKeypoints[i], xpKeypoints[i+1]
		if level < k0.level || level >= k1.level {
			continue
		}
		span := float64(k1.level - k0.level)
		t := float64(level-k0.level) / span
		return int(hermite(t, k0.xp, k1.xp, k0.tangent*span, k1.tangent*span))
	}
	return 0
}

// LevelForXP returns the highest level whose curve value does not
// exceed xp, capped at MaxLevel.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	low, high := 1, MaxLevel
	for low < high {
		mid := (low + high + 1) / 2
		if XPForLevel(mid) <= xp {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
