package editor

import (
	"encoding/json"
	"os"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
)

// The Mounts.json envelope is decoded into generic maps rather than
// typed structs so that fields this tool does not know about survive a
// load/save cycle untouched.

func readEnvelope(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindIO, err, "reading save file")
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindInvalidData, err, "save file is not valid JSON")
	}
	return raw, nil
}

func writeEnvelope(path string, raw map[string]any) error {
	data, err := json.MarshalIndent(raw, "", "\t")
	if err != nil {
		return apperrors.Wrap(apperrors.PhaseSave, apperrors.KindInvalidData, err, "encoding save file")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.PhaseSave, apperrors.KindIO, err, "writing save file")
	}
	return nil
}

// savedMounts returns the SavedMounts entries as mutable maps.
func savedMounts(raw map[string]any) ([]map[string]any, error) {
	entries, ok := raw["SavedMounts"].([]any)
	if !ok {
		if _, present := raw["SavedMounts"]; !present {
			return nil, nil
		}
		return nil, apperrors.InvalidData(apperrors.PhaseLoad,
			[]string{"SavedMounts"}, "expected an array")
	}
	mounts := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, apperrors.New(apperrors.PhaseLoad, apperrors.KindInvalidData).
				Path("SavedMounts").
				Detail("entry %d is not an object", i).
				Build()
		}
		mounts = append(mounts, m)
	}
	return mounts, nil
}

// recorderBlob extracts the RecorderBlob.BinaryData byte array of one
// mount entry. JSON stores it as an array of numbers.
func recorderBlob(mount map[string]any) ([]byte, error) {
	blob, ok := mount["RecorderBlob"].(map[string]any)
	if !ok {
		return nil, apperrors.InvalidData(apperrors.PhaseLoad,
			[]string{"RecorderBlob"}, "missing or not an object")
	}
	values, ok := blob["BinaryData"].([]any)
	if !ok {
		return nil, apperrors.InvalidData(apperrors.PhaseLoad,
			[]string{"RecorderBlob", "BinaryData"}, "missing or not an array")
	}
	data := make([]byte, len(values))
	for i, v := range values {
		n, ok := v.(float64)
		if !ok || n < 0 || n > 255 || n != float64(int(n)) {
			return nil, apperrors.New(apperrors.PhaseLoad, apperrors.KindInvalidData).
				Path("RecorderBlob", "BinaryData").
				Value(v).
				Detail("byte %d out of range", i).
				Build()
		}
		data[i] = byte(n)
	}
	return data, nil
}

// setRecorderBlob stores encoded blob bytes back as a JSON number
// array, the format the game reads.
func setRecorderBlob(mount map[string]any, data []byte) {
	values := make([]any, len(data))
	for i, b := range data {
		values[i] = int(b)
	}
	blob, ok := mount["RecorderBlob"].(map[string]any)
	if !ok {
		blob = map[string]any{}
		mount["RecorderBlob"] = blob
	}
	blob["BinaryData"] = values
}

// cloneJSON deep-copies a mount entry through the JSON codec.
func cloneJSON(mount map[string]any) (map[string]any, error) {
	data, err := json.Marshal(mount)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindInvalidData, err, "cloning mount entry")
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindInvalidData, err, "cloning mount entry")
	}
	return out, nil
}

func jsonString(m map[string]any, key, fallback string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

func jsonInt(m map[string]any, key string) int {
	if n, ok := m[key].(float64); ok {
		return int(n)
	}
	// Values this tool wrote earlier in the session are Go ints.
	if n, ok := m[key].(int); ok {
		return n
	}
	return 0
}
