package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Only Point geometries are produced.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// PointFeature builds a Point feature carrying name and description properties.
func PointFeature(p NamedPosition) GeoJSONFeature {
	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        "Point",
			Coordinates: []float64{p.Position.Longitude, p.Position.Latitude},
		},
		Properties: map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
		},
	}
}

// TrackFeatures converts an ordered track into a feature collection.
//
// Every feature except the last one carries the bearing towards its successor
// and the matching direction bucket, mirroring the directional styling of the
// KML track document.
func TrackFeatures(track []NamedPosition) GeoJSONFeatureCollection {
	fc := GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, len(track)),
	}

	for i, p := range track {
		feature := PointFeature(p)
		feature.Properties["index"] = i

		if i+1 < len(track) {
			bearing := Bearing(p.Position, track[i+1].Position)
			feature.Properties["bearing"] = bearing
			feature.Properties["bucket"] = Bucket(bearing)
		}

		fc.Features = append(fc.Features, feature)
	}

	return fc
}
