// Package ue4 implements the Unreal Engine 4 tagged property binary
// format used by Icarus character and mount recorder blobs.
//
// A blob is a flat sequence of tagged properties: each tag carries a
// name, a type string, a declared value size, and an array index,
// followed by a type-specific header and the value bytes. A "None"
// name terminates the sequence. Deserialize decodes such a stream into
// a List of Property nodes; Serialize writes one back out, recomputing
// every size field from the actual value bytes.
//
// The decoder is built for round-trip fidelity: string encodings,
// array indexes, struct GUIDs, early-terminator slack and trailing
// bytes all survive a decode/encode cycle, so a blob that was decoded
// and never modified re-encodes byte for byte. Properties with
// unrecognized type strings pass through as raw bytes rather than
// failing the decode.
//
// Fixed-layout engine structs (Vector, Rotator, Quat, Color and
// friends) decode their components into named fields, so path lookup
// treats them like any other struct:
//
//	list, err := ue4.Deserialize(blob)
//	if err != nil {
//		return err
//	}
//	if p := list.Find("CharacterRotation.Yaw"); p != nil {
//		p.F32 = 0
//	}
//	out, err := ue4.Serialize(list)
package ue4
