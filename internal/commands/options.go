package commands

// VehicleOption selects the vehicle. The token file may provide a default.
type VehicleOption struct {
	Serial string `short:"s" long:"sn" env:"NIU_SN" description:"Vehicle serial number"`
}

// JSONOption switches to the raw JSON payload.
type JSONOption struct {
	JSON bool `short:"j" long:"json" description:"Output result in JSON format"`
}

// FilterOption selects values from the JSON payload.
type FilterOption struct {
	Filter string `short:"f" long:"filter" description:"Output filter, dotted paths separated by ';' (e.g. batteries.compartmentA.batteryCharging)"`
}

// DocumentOptions control where and how geo documents are written.
type DocumentOptions struct {
	Minify bool   `short:"m" long:"minify" description:"Minify the KML/GeoJSON document"`
	Out    string `short:"o" long:"out"    description:"Write the document to this file instead of stdout"`
}
