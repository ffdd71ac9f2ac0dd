// Package formats provides readers and writers for model project files.
//
// BBModel is the Blockbench project format: a JSON document with a flat
// element list and an outliner tree referencing elements by uuid.
// Exported block models are plain JSON objects recognized by IsJavaBlockModel.
package formats
