// Package editor provides the high-level operations on Icarus mount
// save files: loading Mounts.json, inspecting and editing the mounts
// inside it, and writing it back with the recorder blobs re-encoded.
package editor

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
	"github.com/naurium/icarus-mount-editor/mounttype"
	"github.com/naurium/icarus-mount-editor/ue4"
)

// Mount is one SavedMounts entry: its JSON metadata plus the decoded
// recorder blob. The JSON map keeps fields this tool does not model so
// they survive a save.
type Mount struct {
	Index      int
	JSON       map[string]any
	Properties *ue4.List
}

// Name returns the mount's display name from the JSON metadata.
func (m *Mount) Name() string { return jsonString(m.JSON, "MountName", "Unknown") }

// TypeName returns the mount type from the JSON metadata.
func (m *Mount) TypeName() string { return jsonString(m.JSON, "MountType", "Unknown") }

// Level returns the displayed level from the JSON metadata.
func (m *Mount) Level() int { return jsonInt(m.JSON, "MountLevel") }

// Value resolves a property path inside the recorder blob and returns
// its value in its natural Go type.
func (m *Mount) Value(path string) (any, bool) {
	p := m.Properties.Find(path)
	if p == nil {
		return nil, false
	}
	switch p.Type {
	case ue4.TypeBool:
		return p.Bool, true
	case ue4.TypeByte:
		return p.Byte, true
	case ue4.TypeInt32:
		return p.I32, true
	case ue4.TypeUInt32:
		return p.U32, true
	case ue4.TypeInt64:
		return p.I64, true
	case ue4.TypeFloat32:
		return p.F32, true
	case ue4.TypeFloat64:
		return p.F64, true
	case ue4.TypeStr, ue4.TypeName:
		return p.Str.Value, true
	case ue4.TypeEnum:
		return p.Enum.Value.Value, true
	}
	return p, true
}

func (m *Mount) intValue(path string) int {
	v, _ := m.Value(path)
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint32:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// Info is the summary row shown by listings.
type Info struct {
	Index      int
	Name       string
	Type       string
	Level      int
	Experience int
	Health     int
	Stamina    int
}

// Info summarizes the mount.
func (m *Mount) Info() Info {
	return Info{
		Index:      m.Index,
		Name:       m.Name(),
		Type:       m.TypeName(),
		Level:      m.Level(),
		Experience: m.intValue("Experience"),
		Health:     m.intValue("CharacterRecord.CurrentHealth"),
		Stamina:    m.intValue("Stamina"),
	}
}

// Editor loads, edits and saves one Mounts.json file.
type Editor struct {
	log      *zap.Logger
	path     string
	raw      map[string]any
	mounts   []*Mount
	modified bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(e *Editor) { e.log = log }
}

// New creates an Editor with no file loaded.
func New(opts ...Option) *Editor {
	e := &Editor{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the loaded file's path.
func (e *Editor) Path() string { return e.path }

// Loaded reports whether a file has been loaded.
func (e *Editor) Loaded() bool { return e.raw != nil }

// Modified reports whether there are unsaved edits.
func (e *Editor) Modified() bool { return e.modified }

// Load reads a Mounts.json file and decodes every mount's recorder
// blob.
func (e *Editor) Load(path string) error {
	raw, err := readEnvelope(path)
	if err != nil {
		return err
	}
	entries, err := savedMounts(raw)
	if err != nil {
		return err
	}

	mounts := make([]*Mount, 0, len(entries))
	for i, entry := range entries {
		blob, err := recorderBlob(entry)
		if err != nil {
			return err
		}
		props, err := ue4.Deserialize(blob)
		if err != nil {
			return apperrors.Wrap(apperrors.PhaseLoad, apperrors.KindInvalidData, err,
				fmt.Sprintf("decoding recorder blob of mount %d", i))
		}
		mounts = append(mounts, &Mount{Index: i, JSON: entry, Properties: props})
	}

	e.path = path
	e.raw = raw
	e.mounts = mounts
	e.modified = false
	e.log.Info("loaded save file", zap.String("path", path), zap.Int("mounts", len(mounts)))
	return nil
}

// Save re-encodes every mount and writes the envelope. With path empty
// it overwrites the loaded file. When backup is set and the target
// exists, a timestamped copy is made first; its path is the first
// return value.
func (e *Editor) Save(path string, backup bool) (string, error) {
	if !e.Loaded() {
		return "", apperrors.InvalidInput(apperrors.PhaseSave, "no save file loaded")
	}
	if path == "" {
		path = e.path
	}

	var backupPath string
	if backup {
		if _, err := os.Stat(path); err == nil {
			b, err := BackupFile(path)
			if err != nil {
				return "", err
			}
			backupPath = b
		}
	}

	entries := make([]any, len(e.mounts))
	for i, m := range e.mounts {
		blob, err := ue4.Serialize(m.Properties)
		if err != nil {
			return "", apperrors.Wrap(apperrors.PhaseSave, apperrors.KindInvalidData, err,
				fmt.Sprintf("encoding recorder blob of mount %d", i))
		}
		setRecorderBlob(m.JSON, blob)
		entries[i] = m.JSON
	}
	e.raw["SavedMounts"] = entries

	if err := writeEnvelope(path, e.raw); err != nil {
		return "", err
	}
	e.modified = false
	e.log.Info("saved", zap.String("path", path), zap.Int("mounts", len(e.mounts)),
		zap.String("backup", backupPath))
	return backupPath, nil
}

// Mounts returns all loaded mounts.
func (e *Editor) Mounts() []*Mount { return e.mounts }

// Mount returns the mount at index.
func (e *Editor) Mount(index int) (*Mount, error) {
	if index < 0 || index >= len(e.mounts) {
		return nil, apperrors.OutOfRange(apperrors.PhaseLookup, "mount index", index, 0, len(e.mounts)-1)
	}
	return e.mounts[index], nil
}

// FindByName returns the first mount with the given name,
// case-insensitively, or nil.
func (e *Editor) FindByName(name string) *Mount {
	for _, m := range e.mounts {
		if strings.EqualFold(m.Name(), name) {
			return m
		}
	}
	return nil
}

// GetValue reads a blob property of one mount by path.
func (e *Editor) GetValue(index int, path string) (any, error) {
	m, err := e.Mount(index)
	if err != nil {
		return nil, err
	}
	v, ok := m.Value(path)
	if !ok {
		return nil, apperrors.NotFound(apperrors.PhaseLookup, "property", path)
	}
	return v, nil
}

// SetValue writes a blob property of one mount by path.
func (e *Editor) SetValue(index int, path string, value any) error {
	m, err := e.Mount(index)
	if err != nil {
		return err
	}
	if err := ue4.SetValue(m.Properties.Properties, path, value); err != nil {
		return err
	}
	e.modified = true
	return nil
}

// Rename changes a mount's name in both the JSON metadata and the
// recorder blob.
func (e *Editor) Rename(index int, newName string) error {
	m, err := e.Mount(index)
	if err != nil {
		return err
	}
	if newName == "" {
		return apperrors.InvalidInput(apperrors.PhaseValidate, "mount name cannot be empty")
	}
	if p := m.Properties.Find("MountName"); p != nil {
		p.Str = ue4.Str(newName)
	}
	m.JSON["MountName"] = newName
	e.modified = true
	e.log.Debug("renamed mount", zap.Int("index", index), zap.String("name", newName))
	return nil
}

// SetLevel sets a mount's level, keeping the JSON MountLevel and the
// blob's Experience property in sync on the game's growth curve.
func (e *Editor) SetLevel(index, level int) error {
	if level < 1 || level > MaxLevel {
		return apperrors.OutOfRange(apperrors.PhaseValidate, "mount level", level, 1, MaxLevel)
	}
	m, err := e.Mount(index)
	if err != nil {
		return err
	}

	m.JSON["MountLevel"] = level
	xp := XPForLevel(level)
	if p := m.Properties.Find("Experience"); p != nil {
		if err := p.SetValue(xp); err != nil {
			return err
		}
	} else {
		e.log.Warn("mount has no Experience property, XP bar will not match",
			zap.Int("index", index))
	}
	e.modified = true
	e.log.Debug("set level", zap.Int("index", index), zap.Int("level", level), zap.Int("xp", xp))
	return nil
}

// ChangeType turns a mount into another type, rewriting the blueprint
// references and AI setup. An optional new name is applied afterwards.
func (e *Editor) ChangeType(index int, targetName, newName string) error {
	m, err := e.Mount(index)
	if err != nil {
		return err
	}
	source, ok := mounttype.Get(m.TypeName())
	if !ok {
		return apperrors.NotFound(apperrors.PhaseValidate, "source mount type", m.TypeName())
	}
	target, ok := mounttype.Get(targetName)
	if !ok {
		return apperrors.NotFound(apperrors.PhaseValidate, "mount type", targetName)
	}
	if source.Name == target.Name {
		return nil
	}

	for _, propName := range mounttype.TransformProperties {
		p := m.Properties.Find(propName)
		if p == nil {
			continue
		}
		old := p.Str.Value
		if old == "" {
			continue
		}
		p.Str = ue4.Str(mounttype.TransformValue(propName, source, target, old))
		e.log.Debug("transformed property", zap.String("property", propName),
			zap.String("from", old), zap.String("to", p.Str.Value))
	}
	m.JSON["MountType"] = target.Name
	e.modified = true

	if newName != "" {
		return e.Rename(index, newName)
	}
	return nil
}

// Clone duplicates a mount under a new name, giving the copy a fresh
// actor ID so the game treats it as a separate creature. A non-empty
// newType converts the copy afterwards. Returns the new mount's index.
func (e *Editor) Clone(sourceIndex int, newName, newType string) (int, error) {
	source, err := e.Mount(sourceIndex)
	if err != nil {
		return 0, err
	}
	if newName == "" {
		return 0, apperrors.InvalidInput(apperrors.PhaseValidate, "mount name cannot be empty")
	}

	newID := allocateActorID(usedActorIDs(e.mounts))

	newJSON, err := cloneJSON(source.JSON)
	if err != nil {
		return 0, err
	}
	newJSON["MountName"] = newName
	newJSON["DatabaseGUID"] = "noguid"
	newJSON["MountIconName"] = fmt.Sprintf("%d", newID)

	props, err := ue4.CloneList(source.Properties)
	if err != nil {
		return 0, err
	}
	if p := props.Find("MountName"); p != nil {
		p.Str = ue4.Str(newName)
	}
	if p := props.Find("IcarusActorGUID"); p != nil {
		if err := p.SetValue(newID); err != nil {
			return 0, err
		}
	}
	for _, name := range []string{"ObjectFName", "ActorPathName"} {
		if p := props.Find(name); p != nil && p.Str.Value != "" {
			p.Str = ue4.Str(idSuffix.ReplaceAllString(p.Str.Value, fmt.Sprintf("_%d", newID)))
		}
	}

	clone := &Mount{Index: len(e.mounts), JSON: newJSON, Properties: props}
	e.mounts = append(e.mounts, clone)
	e.modified = true
	e.log.Info("cloned mount", zap.String("source", source.Name()),
		zap.String("name", newName), zap.Int64("id", newID))

	if newType != "" {
		if err := e.ChangeType(clone.Index, newType, ""); err != nil {
			return clone.Index, err
		}
	}
	return clone.Index, nil
}

// Delete removes a mount and re-indexes the rest.
func (e *Editor) Delete(index int) error {
	if _, err := e.Mount(index); err != nil {
		return err
	}
	e.mounts = append(e.mounts[:index], e.mounts[index+1:]...)
	for i, m := range e.mounts {
		m.Index = i
	}
	e.modified = true
	return nil
}

// ResetTalents clears a mount's talent array, refunding the points.
// Returns how many talents were removed.
func (e *Editor) ResetTalents(index int) (int, error) {
	m, err := e.Mount(index)
	if err != nil {
		return 0, err
	}
	p := m.Properties.Find("Talents")
	if p == nil || p.Type != ue4.TypeArray {
		return 0, nil
	}
	count := len(p.Array.Elements)
	if count == 0 {
		return 0, nil
	}
	p.Array.Elements = nil
	e.modified = true
	return count, nil
}

// SetHorseVariant switches a Workshop horse between its A1/A2/A3 color
// variants. Other mounts are rejected: their look is controlled by
// CosmeticSkinIndex instead.
func (e *Editor) SetHorseVariant(index int, variant string) error {
	variant = strings.ToUpper(variant)
	if variant != "A1" && variant != "A2" && variant != "A3" {
		return apperrors.InvalidInput(apperrors.PhaseValidate,
			fmt.Sprintf("invalid variant %q, must be A1, A2 or A3", variant))
	}
	m, err := e.Mount(index)
	if err != nil {
		return err
	}
	p := m.Properties.Find("AISetupRowName")
	if p == nil {
		return apperrors.NotFound(apperrors.PhaseValidate, "property", "AISetupRowName")
	}
	if !strings.HasPrefix(p.Str.Value, "Mount_Horse_Standard") {
		return apperrors.InvalidInput(apperrors.PhaseValidate,
			fmt.Sprintf("mount is not a Workshop horse (AISetupRowName %q)", p.Str.Value))
	}
	p.Str = ue4.Str("Mount_Horse_Standard_" + variant)
	e.modified = true
	return nil
}

// SetCosmeticSkin sets the CosmeticSkinIndex entry in the mount's
// IntVariables array. This drives the appearance of wild-tamed mounts
// like the Terrenus.
func (e *Editor) SetCosmeticSkin(index, skinIndex int) error {
	m, err := e.Mount(index)
	if err != nil {
		return err
	}
	vars := m.Properties.Find("IntVariables")
	if vars == nil || vars.Type != ue4.TypeArray {
		return apperrors.NotFound(apperrors.PhaseValidate, "array", "IntVariables")
	}
	for _, entry := range vars.Array.Elements {
		name := ue4.Find(entry.Struct.Fields, "VariableName")
		value := ue4.Find(entry.Struct.Fields, "iVariable")
		if name == nil || name.Str.Value != "CosmeticSkinIndex" {
			continue
		}
		if value == nil {
			break
		}
		if err := value.SetValue(skinIndex); err != nil {
			return err
		}
		e.modified = true
		return nil
	}
	return apperrors.NotFound(apperrors.PhaseValidate, "variable", "CosmeticSkinIndex")
}

// Validate checks one mount's internal consistency and returns the
// issues found, empty when the mount is healthy.
func (e *Editor) Validate(index int) ([]string, error) {
	m, err := e.Mount(index)
	if err != nil {
		return nil, err
	}
	var issues []string

	for _, name := range []string{"MountName", "AISetupRowName", "ActorClassName", "Experience"} {
		if m.Properties.Find(name) == nil {
			issues = append(issues, fmt.Sprintf("missing required property: %s", name))
		}
	}

	if aiSetup, ok := m.Value("AISetupRowName"); ok {
		if row, _ := aiSetup.(string); row != "" {
			if expected, ok := mounttype.ByAISetup(row); ok && expected.Name != m.TypeName() {
				issues = append(issues, fmt.Sprintf(
					"mount type mismatch: JSON says %q but AISetupRowName indicates %q",
					m.TypeName(), expected.Name))
			}
		}
	}

	if actorClass, ok := m.Value("ActorClassName"); ok {
		if mt, known := mounttype.Get(m.TypeName()); known {
			if cls, _ := actorClass.(string); cls != "" && cls != mt.Blueprint {
				issues = append(issues, fmt.Sprintf(
					"ActorClassName mismatch: %q should be %q", cls, mt.Blueprint))
			}
		}
	}

	if xp := m.intValue("Experience"); xp > 0 {
		if curveLevel := LevelForXP(xp); curveLevel != m.Level() {
			issues = append(issues, fmt.Sprintf(
				"level/XP mismatch: level %d but %d XP sits at level %d on the growth curve",
				m.Level(), xp, curveLevel))
		}
	}

	return issues, nil
}
