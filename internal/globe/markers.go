package globe

// Marker is a labelled location pinned on the globe.
type Marker struct {
	Lon, Lat float64
	Name     string
}

// Locations is the fixed marker set. Name doubles as the i18n key suffix
// ("marker.<Name>").
var Locations = []Marker{
	{Lon: 90.3563, Lat: 23.6850, Name: "Bangladesh"},
	{Lon: 10.4515, Lat: 51.1657, Name: "Germany"},
	{Lon: -95.7129, Lat: 37.0902, Name: "USA"},
	{Lon: -106.3468, Lat: 56.1304, Name: "Canada"},
	{Lon: 133.7751, Lat: -25.2744, Name: "Australia"},
	{Lon: -3.4360, Lat: 55.3781, Name: "UK"},
}
