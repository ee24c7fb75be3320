package circuit

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON returns the wires as LineString features with a name property. The collection's bounding box is that of the layer.
func (l *Layer) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if 0 < len(l.wires) {
		fc.BBox = geojson.NewBBox(l.Bound())
	}
	for _, w := range l.wires {
		f := geojson.NewFeature(orb.LineString{{w.X1, w.Y1}, {w.X2, w.Y2}})
		f.Properties["name"] = w.Name
		if w.IsHorizontal() {
			f.Properties["orientation"] = "horizontal"
		} else {
			f.Properties["orientation"] = "vertical"
		}
		fc.Append(f)
	}
	return fc
}

// GeoJSON returns the crossings as Point features with the wire names as properties a and b.
func (rs *ResultSet) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range rs.crossings {
		f := geojson.NewFeature(orb.Point{z.X, z.Y})
		f.Properties["a"] = z.A
		f.Properties["b"] = z.B
		fc.Append(f)
	}
	return fc
}
