package cli

const tripTemplate = `
=== {{.Name}} ===
{{- if .Destination}}
Destination: {{.Destination}}
{{- end}}
{{- if .StartDate}}
Dates:       {{.StartDate}}{{if .EndDate}} to {{.EndDate}}{{end}}
{{- end}}
{{- if .Budget}}
Budget:      {{printf "%.2f" .Budget}}
{{- end}}
{{- if .Planned}}
Planned:     {{printf "%.2f" .Planned}}
{{- end}}

{{- if eq (len .Items) 0}}

No itinerary items yet.

Use 'tripkeeper add' to add your first item.
{{- else}}

Itinerary ({{len .Items}} item(s)):
{{- range .Items}}

- [{{.Kind}}] {{.Title}}
   ID:       {{.ID}}
   {{- if .Date}}
   When:     {{.Date}}{{if .Time}} {{.Time}}{{end}}
   {{- end}}
   {{- if .Location}}
   Location: {{.Location}}
   {{- end}}
   {{- if .Cost}}
   Cost:     {{printf "%.2f" .Cost}}
   {{- end}}
   {{- if .Notes}}
   Notes:    {{.Notes}}
   {{- end}}
{{- end}}
{{- end}}

{{- if .Notes}}

Notes:
---
{{.Notes}}
---
{{- end}}

Use 'tripkeeper remove <id>' to remove an item.
`

const forecastTemplate = `
=== Weather: {{.City}} ===

Temperature: {{printf "%.1f" .Temperature}} C
Conditions:  {{.Description}}
Humidity:    {{.Humidity}}%
Wind:        {{printf "%.1f" .WindSpeed}} m/s
{{- if .Cached}}

(cached {{.RetrievedAt.Format "2006-01-02 15:04"}})
{{- end}}
`

const usageTemplate = `
TripKeeper Client

Usage:
  tripkeeper [OPTIONS] COMMAND

Options:
  --version        Show version information
  --config PATH    Path to config file (default: ~/.config/tripkeeper/config.toml)
  --server URL     Override the sync endpoint URL
  --db PATH        Override the path to the local database

Commands:
  show                 Show the trip: itinerary, budget, notes
  set <field> <value>  Update a trip field (name, destination, start, end, budget, notes)
  add                  Add an itinerary item (interactive)
  remove <id>          Remove an itinerary item
  sync                 Reconcile with the remote copy once
  watch                Keep a live subscription open and print adopted updates
  status               Show synchronization state
  weather <place>      Show weather for a place (rate-limit guarded)
  configure            Write the config file (prompts for the weather API key)

Examples:
  tripkeeper set name "Iceland 2026"
  tripkeeper set start 2026-06-12
  tripkeeper set budget 4200
  tripkeeper add
  tripkeeper sync
  tripkeeper weather Reykjavik
  tripkeeper --server https://trips.example.com sync
`
