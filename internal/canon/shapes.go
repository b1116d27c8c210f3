package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/shapes/internal/shape"
)

// DomainCollection separates collection fingerprints from any other hash.
// The version suffix allows the encoding to change later.
const DomainCollection = "shapes/collection/v1"

// PointValue encodes a point's coordinates.
func PointValue(p shape.Point) Object {
	return Object{"x": Real(p.X), "y": Real(p.Y)}
}

// ShapeValue encodes the defining fields of s, tagged with its kind.
// Derived values such as the area are not included.
func ShapeValue(s shape.Shape) (Object, error) {
	switch v := s.(type) {
	case shape.Point:
		return Object{"kind": String(shape.KindPoint), "x": Real(v.X), "y": Real(v.Y)}, nil
	case shape.Circle:
		obj := Object{"kind": String(shape.KindCircle), "radius": Real(v.Radius)}
		if v.Center != nil {
			obj["center"] = PointValue(*v.Center)
		}
		return obj, nil
	case shape.Rectangle:
		return Object{
			"kind":         String(shape.KindRectangle),
			"top_left":     PointValue(v.TopLeft),
			"bottom_left":  PointValue(v.BottomLeft),
			"top_right":    PointValue(v.TopRight),
			"bottom_right": PointValue(v.BottomRight),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}
}

// CollectionValue encodes shapes in order.
func CollectionValue(shapes []shape.Shape) (Array, error) {
	arr := make(Array, len(shapes))
	for i, s := range shapes {
		obj, err := ShapeValue(s)
		if err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
		arr[i] = obj
	}
	return arr, nil
}

// Fingerprint returns the hex SHA-256 identity of an ordered collection.
func Fingerprint(shapes []shape.Shape) (string, error) {
	arr, err := CollectionValue(shapes)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	data, err := Marshal(arr)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return hashWithDomain(DomainCollection, data), nil
}

// hashWithDomain computes SHA256(domain || 0x00 || data).
// The null byte keeps domain and data boundaries unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
