// Package render builds the HTML map view served to the operator's
// browser. It is a thin presentation adapter over the reconciled catalog:
// it holds no business logic and consumes records as-is.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/MKhiriev/org-atlas/models"
)

// statusColors maps lowercased raw status values to marker colors.
// Unlisted statuses render gray.
var statusColors = map[string]string{
	"pending":        "yellow",
	"confirmed--yes": "green",
	"confirmed--no":  "red",
	"in process":     "blue",
	"other":          "gray",
}

// Default viewports. The empty view centers slightly north of the region
// so an unfiltered-but-empty result still shows familiar geography.
var (
	emptyMapCenter    = [2]float64{38.2, -77.2}
	populatedCenter   = [2]float64{38.6, -77.2}
	defaultZoom       = 9
	defaultMarkerHue  = "gray"
	popupMaxWidthPx   = 300
	mapPageTitle      = "Organization Map"
	markerClusterVers = "1.5.3"
)

type marker struct {
	ID      int64   `json:"id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Tooltip string  `json:"tooltip"`
	Popup   string  `json:"popup"`
}

type popupData struct {
	ID         int64
	Name       string
	Address    string
	HasAddress bool
	Phone      string
	Email      string
	WebsiteURL string
	Website    string
	Status     string
	County     string
	Zipcode    string
	History    []models.NoteEntry
}

type pageData struct {
	Title         string
	CenterLat     float64
	CenterLon     float64
	Zoom          int
	PopupMaxWidth int
	ClusterVers   string
	MarkersJSON   template.JS
}

// MapHTML renders the full map page for the given location-bearing
// records. An empty record list yields a default empty view.
func MapHTML(records []*models.OrganizationRecord) (string, error) {
	markers := make([]marker, 0, len(records))
	for _, record := range records {
		if record.Lat == nil || record.Lon == nil {
			continue
		}

		popup, err := renderPopup(record)
		if err != nil {
			return "", fmt.Errorf("render popup for organization %d: %w", record.ID, err)
		}

		markers = append(markers, marker{
			ID:      record.ID,
			Lat:     *record.Lat,
			Lon:     *record.Lon,
			Color:   markerColor(record.Status),
			Tooltip: valueOr(record.Name, "Organization"),
			Popup:   popup,
		})
	}

	center := populatedCenter
	if len(markers) == 0 {
		center = emptyMapCenter
	}

	markersJSON, err := json.Marshal(markers)
	if err != nil {
		return "", fmt.Errorf("encode map markers: %w", err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Title:         mapPageTitle,
		CenterLat:     center[0],
		CenterLon:     center[1],
		Zoom:          defaultZoom,
		PopupMaxWidth: popupMaxWidthPx,
		ClusterVers:   markerClusterVers,
		MarkersJSON:   template.JS(markersJSON),
	})
	if err != nil {
		return "", fmt.Errorf("render map page: %w", err)
	}

	return buf.String(), nil
}

func markerColor(status string) string {
	if color, ok := statusColors[strings.ToLower(status)]; ok {
		return color
	}
	return defaultMarkerHue
}

func renderPopup(record *models.OrganizationRecord) (string, error) {
	data := popupData{
		ID:         record.ID,
		Name:       valueOr(record.Name, "Organization"),
		Address:    valueOr(record.Address, "No address provided"),
		HasAddress: record.Address != nil,
		Phone:      valueOr(record.Phone, "N/A"),
		Email:      valueOr(record.Email, "N/A"),
		Status:     record.Status,
		County:     valueOr(record.County, "N/A"),
		Zipcode:    valueOr(record.Zipcode, "N/A"),
		History:    record.NoteHistory,
	}

	if record.Website != nil {
		site := strings.TrimSpace(*record.Website)
		if site != "" && strings.ToLower(site) != "n/a" {
			data.Website = site
			if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
				data.WebsiteURL = site
			} else {
				data.WebsiteURL = "https://" + site
			}
		}
	}

	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

var popupTemplate = template.Must(template.New("popup").Parse(`<div style="width:250px; font-family:'Times New Roman', Times, serif;">
<h3 style="margin:0; color:#333;">{{.Name}}</h3>
<p style="margin:5px 0;"><strong>Address:</strong> {{.Address}}</p>
{{- if not .HasAddress}}
<p style="margin:5px 0; color:#555;"><em>No address on file. Phone: {{.Phone}}, Email: {{.Email}}</em></p>
{{- end}}
<p style="margin:5px 0;"><strong>Phone:</strong> {{.Phone}}</p>
<p style="margin:5px 0;"><strong>Email:</strong> {{.Email}}</p>
<p style="margin:5px 0;"><strong>Website:</strong> {{if .WebsiteURL}}<a href="{{.WebsiteURL}}" target="_blank" style="color:#667eea; text-decoration:underline;">{{.Website}}</a>{{else}}N/A{{end}}</p>
<p style="margin:5px 0;"><strong>Status:</strong> <span style="color:orange">{{.Status}}</span></p>
<p style="margin:5px 0;"><strong>County:</strong> {{.County}}</p>
<p style="margin:5px 0;"><strong>Zipcode:</strong> {{.Zipcode}}</p>
{{- if .History}}
<div style="margin:6px 0;"><strong>Notes:</strong><ul style="padding-left:16px; margin:6px 0;">
{{- range .History}}
<li style="margin:2px 0;"><strong>{{.NoteTaker}}</strong> {{.Note}} <span style="color:#666;">{{.Date}}</span></li>
{{- end}}
</ul></div>
{{- end}}
<button data-verify-id="{{.ID}}" style="display:block; margin-top:10px; padding:8px 12px; background:#667eea; color:white; text-align:center; border:none; border-radius:4px; cursor:pointer; font-weight:600; width:100%;">Verify / Change Status</button>
</div>`))

var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@{{.ClusterVers}}/dist/MarkerCluster.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@{{.ClusterVers}}/dist/MarkerCluster.Default.css">
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.markercluster@{{.ClusterVers}}/dist/leaflet.markercluster.js"></script>
<script>
var map = L.map('map').setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

var cluster = L.markerClusterGroup();
var markers = {{.MarkersJSON}};
markers.forEach(function (m) {
    var pin = L.circleMarker([m.lat, m.lon], {
        radius: 9,
        color: '#333',
        weight: 1,
        fillColor: m.color,
        fillOpacity: 0.85
    });
    pin.bindTooltip(m.tooltip);
    pin.bindPopup(m.popup, { maxWidth: {{.PopupMaxWidth}} });
    cluster.addLayer(pin);
});
map.addLayer(cluster);
</script>
</body>
</html>`))
