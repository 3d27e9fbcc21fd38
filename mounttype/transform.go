package mounttype

import (
	"regexp"
	"strings"
)

// TransformProperties lists the identity properties that must be
// rewritten when a saved mount changes type.
var TransformProperties = []string{
	"AISetupRowName", // NameProperty: Mount_Horse -> Mount_Tusker
	"ActorClassName", // NameProperty: BP_Mount_Horse_C -> BP_Mount_Tusker_C
	"ObjectFName",    // NameProperty: BP_Mount_Horse_C_XXXX -> BP_Mount_Tusker_C_XXXX
	"ActorPathName",  // StrProperty: level path ending in the blueprint instance name
}

var objectIDSuffix = regexp.MustCompile(`^(.*)_(\d+)$`)

// TransformValue computes the new value of one identity property when
// a mount of type source becomes type target. Properties it does not
// know keep their current value.
func TransformValue(prop string, source, target MountType, current string) string {
	switch prop {
	case "AISetupRowName":
		return target.AISetup
	case "ActorClassName":
		return target.Blueprint
	case "ObjectFName":
		// BP_Mount_Horse_C_2147441213: swap the blueprint, keep the
		// instance ID suffix.
		if m := objectIDSuffix.FindStringSubmatch(current); m != nil {
			return target.Blueprint + "_" + m[2]
		}
		return strings.ReplaceAll(current, source.Blueprint, target.Blueprint)
	case "ActorPathName":
		return strings.ReplaceAll(current, source.Blueprint, target.Blueprint)
	}
	return current
}
