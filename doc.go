// Package mounteditor edits Icarus mount save data (Mounts.json).
//
// Icarus stores each tamed mount as a JSON entry whose RecorderBlob
// carries an Unreal Engine 4 tagged-property stream as a byte array.
// This library decodes that stream into a navigable property tree,
// lets callers modify individual properties, and re-encodes the tree
// with correct size accounting. Any byte-length mistake after
// re-encoding corrupts the save, so the codec guarantees that
// unmodified properties serialize back to the exact bytes they were
// read from.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	mounteditor/         Root package with the toolkit version
//	├── ue4/             UE4 tagged-property binary codec (decode/encode/lookup)
//	├── editor/          High-level mount editor over the JSON envelope
//	├── mounttype/       Static catalog of mount types and transform rules
//	├── errors/          Structured error types for debugging
//	└── cmd/mounts/      Command-line interface
//
// # Quick Start
//
// Load a save file, change a property, and write it back:
//
//	ed := editor.New()
//	if err := ed.Load("Mounts.json"); err != nil {
//	    log.Fatal(err)
//	}
//	ed.SetValue(0, "Experience", int64(999999))
//	if _, err := ed.Save("", true); err != nil {
//	    log.Fatal(err)
//	}
//
// Or work with the codec directly:
//
//	list, err := ue4.Deserialize(blob)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if p := list.Find("CharacterRecord.CurrentHealth"); p != nil {
//	    p.F32 = 5000
//	}
//	blob, err = ue4.Serialize(list)
package mounteditor

// Version is the toolkit version reported by the CLI.
const Version = "1.0.0"
