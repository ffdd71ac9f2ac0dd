package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cogentcore.org/core/base/ordmap"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/carpenter/pkg/scene"
)

// CubeBox is a cube's corner pair written back by UpdateCubeBounds.
type CubeBox struct {
	From mgl64.Vec3
	To   mgl64.Vec3
}

// rawObject is a JSON object whose values are kept undecoded, in file order.
type rawObject = ordmap.Map[string, json.RawMessage]

// UpdateFurniture returns data with its furniture property block replaced by
// props. Other fields keep their order and values.
func UpdateFurniture(data []byte, props scene.FurnitureProps) ([]byte, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	raw, err := marshal(props)
	if err != nil {
		return nil, fmt.Errorf("encoding furniture: %w", err)
	}
	fields.Add("furniture", raw)
	return encodeObject(fields)
}

// UpdateCubeBounds returns data with the from/to corners of the cubes named
// by uuid in boxes replaced. Cubes missing from boxes are left untouched.
func UpdateCubeBounds(data []byte, boxes map[string]CubeBox) ([]byte, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	rawElements, ok := fields.ValueByKeyTry("elements")
	if !ok || len(boxes) == 0 {
		return encodeObject(fields)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(rawElements, &elements); err != nil {
		return nil, fmt.Errorf("%w: elements: %v", ErrInvalidBBModel, err)
	}
	for i, raw := range elements {
		el, err := decodeObject(raw)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		var uuid string
		if v, ok := el.ValueByKeyTry("uuid"); !ok || json.Unmarshal(v, &uuid) != nil {
			continue
		}
		box, ok := boxes[uuid]
		if !ok {
			continue
		}
		from, err := marshal(box.From)
		if err != nil {
			return nil, fmt.Errorf("encoding cube %s: %w", uuid, err)
		}
		to, err := marshal(box.To)
		if err != nil {
			return nil, fmt.Errorf("encoding cube %s: %w", uuid, err)
		}
		el.Add("from", from)
		el.Add("to", to)

		var buf bytes.Buffer
		if err := appendObject(&buf, el); err != nil {
			return nil, err
		}
		elements[i] = buf.Bytes()
	}

	var list bytes.Buffer
	list.WriteByte('[')
	for i, raw := range elements {
		if i > 0 {
			list.WriteByte(',')
		}
		list.Write(raw)
	}
	list.WriteByte(']')
	fields.Add("elements", list.Bytes())
	return encodeObject(fields)
}

// decodeObject reads a JSON object keeping its keys in file order.
func decodeObject(data []byte) (*rawObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBBModel, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: not an object", ErrInvalidBBModel)
	}

	obj := ordmap.New[string, json.RawMessage]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBBModel, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrInvalidBBModel, tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", ErrInvalidBBModel, key, err)
		}
		obj.Add(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBBModel, err)
	}
	return obj, nil
}

func appendObject(buf *bytes.Buffer, obj *rawObject) error {
	buf.WriteByte('{')
	for i, kv := range obj.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(kv.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(kv.Value)
	}
	buf.WriteByte('}')
	return nil
}

// encodeObject writes obj tab-indented. String contents are copied as read.
func encodeObject(obj *rawObject) ([]byte, error) {
	var compact bytes.Buffer
	if err := appendObject(&compact, obj); err != nil {
		return nil, fmt.Errorf("encoding bbmodel: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "\t"); err != nil {
		return nil, fmt.Errorf("encoding bbmodel: %w", err)
	}
	return out.Bytes(), nil
}

// marshal encodes v like json.Marshal but leaves &, < and > unescaped.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
