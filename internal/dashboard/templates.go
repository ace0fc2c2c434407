package dashboard

import (
	"bytes"
	"html/template"
	"net/http"
)

var pageTmpls = map[string]*template.Template{
	"overview":  template.Must(template.New("overview").Parse(navHTML + overviewHTML)),
	"attempts":  template.Must(template.New("attempts").Parse(navHTML + attemptsHTML)),
	"blocklist": template.Must(template.New("blocklist").Parse(navHTML + blocklistHTML)),
}

func renderPage(w http.ResponseWriter, name string, data map[string]any) {
	tmpl, ok := pageTmpls[name]
	if !ok {
		http.Error(w, "unknown page: "+name, http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

const navHTML = `{{define "nav"}}
<nav class="bg-gray-900 border-b border-gray-700 px-6 py-4">
    <div class="flex items-center justify-between max-w-7xl mx-auto">
        <div class="flex items-center space-x-2">
            <span class="text-xl font-bold text-white">Firewall Browser</span>
            <span class="text-xs bg-gray-700 text-gray-300 px-2 py-1 rounded">Status</span>
        </div>
        <div class="flex space-x-4">
            <a href="/" class="px-3 py-2 rounded hover:bg-gray-800 {{if eq .Page "overview"}}bg-gray-800 text-white{{else}}text-gray-400{{end}}">Overview</a>
            <a href="/attempts" class="px-3 py-2 rounded hover:bg-gray-800 {{if eq .Page "attempts"}}bg-gray-800 text-white{{else}}text-gray-400{{end}}">Attempts</a>
            <a href="/blocklist" class="px-3 py-2 rounded hover:bg-gray-800 {{if eq .Page "blocklist"}}bg-gray-800 text-white{{else}}text-gray-400{{end}}">Blocked Sites</a>
        </div>
    </div>
</nav>
{{end}}`

const headHTML = `<!DOCTYPE html>
<html lang="en" class="dark">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Firewall Browser Status</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://unpkg.com/htmx.org@2.0.4"></script>
    <script src="https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"></script>
    <style>body { background-color: #0f172a; color: #e2e8f0; }</style>
</head>
<body class="min-h-screen">
{{template "nav" .}}
<main class="max-w-7xl mx-auto px-6 py-8">`

const footHTML = `</main>
</body>
</html>`

const overviewHTML = headHTML + `
<h1 class="text-2xl font-bold mb-6">Firewall Statistics</h1>
<div class="grid grid-cols-1 md:grid-cols-3 gap-6 mb-8">
    <div class="bg-gray-900 border border-red-900 rounded-lg p-6">
        <div class="text-red-400 text-sm mb-1">Total Blocked Attempts</div>
        <div class="text-3xl font-bold text-red-300">{{.Stats.TotalAttempts}}</div>
    </div>
    <div class="bg-gray-900 border border-gray-700 rounded-lg p-6">
        <div class="text-gray-400 text-sm mb-1">Unique Hosts</div>
        <div class="text-3xl font-bold text-white">{{.Stats.UniqueHosts}}</div>
    </div>
    <div class="bg-gray-900 border border-gray-700 rounded-lg p-6">
        <div class="text-gray-400 text-sm mb-1">Last Attempt</div>
        <div class="text-lg font-bold text-white">{{if .Stats.LastAttempt.IsZero}}—{{else}}{{.Stats.LastAttempt.Format "15:04:05"}}{{end}}</div>
    </div>
</div>
<div class="grid grid-cols-1 md:grid-cols-2 gap-6">
    <div class="bg-gray-900 border border-gray-700 rounded-lg p-6">
        <h2 class="text-lg font-bold mb-4">Top Blocked Sites</h2>
        {{range .TopSites}}
        <div class="flex justify-between py-1 border-b border-gray-800">
            <span class="text-gray-300 font-mono text-sm">{{.Host}}</span>
            <span class="text-gray-400">{{.Count}} times</span>
        </div>
        {{else}}<p class="text-gray-500">No data available</p>{{end}}
    </div>
    <div class="bg-gray-900 border border-gray-700 rounded-lg p-6">
        <h2 class="text-lg font-bold mb-4">Blocked Attempts Over Time</h2>
        {{range .Histogram}}
        <div class="flex justify-between py-1 border-b border-gray-800">
            <span class="text-gray-300 font-mono text-sm">{{.Start.Format "15:04"}}</span>
            <span class="text-gray-400">{{.Count}}</span>
        </div>
        {{else}}<p class="text-gray-500">No data available</p>{{end}}
    </div>
</div>
` + footHTML

const attemptsHTML = headHTML + `
<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-bold">Blocked Attempts ({{.Total}})</h1>
    <span class="text-sm text-gray-400">Live updates via SSE</span>
</div>
<div class="bg-gray-900 border border-gray-700 rounded-lg overflow-hidden">
    <table class="w-full text-sm text-left">
        <thead class="bg-gray-800 text-gray-400 uppercase text-xs">
            <tr>
                <th class="px-4 py-3">Time</th>
                <th class="px-4 py-3">Host</th>
                <th class="px-4 py-3">URL</th>
                <th class="px-4 py-3">Matched</th>
            </tr>
        </thead>
        <tbody id="attempt-table"
               hx-ext="sse"
               sse-connect="/attempts/stream"
               sse-swap="attempt"
               hx-swap="afterbegin">
            {{range .Records}}
            <tr class="border-b border-gray-700 hover:bg-gray-800">
                <td class="px-4 py-2 text-gray-400 text-xs">{{.Timestamp.Format "2006-01-02 15:04:05"}}</td>
                <td class="px-4 py-2">{{.Host}}</td>
                <td class="px-4 py-2 font-mono text-xs max-w-xs truncate">{{.RawURL}}</td>
                <td class="px-4 py-2 text-gray-400 text-xs">{{.Pattern}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>
</div>
` + footHTML

const blocklistHTML = headHTML + `
<h1 class="text-2xl font-bold mb-6">Blocked Sites</h1>
{{if .Error}}
<div class="bg-red-900 border border-red-700 text-red-200 rounded-lg px-4 py-3 mb-6">{{.Error}}</div>
{{end}}
<form method="post" action="/blocklist" class="flex space-x-2 mb-6">
    <input name="pattern" placeholder="Enter website to block (e.g., example.com)"
           class="flex-1 bg-gray-900 border border-gray-700 rounded px-3 py-2 text-gray-200">
    <button type="submit" class="bg-red-800 hover:bg-red-700 text-white rounded px-4 py-2">Add to Blocked Sites</button>
</form>
<div class="bg-gray-900 border border-gray-700 rounded-lg overflow-hidden">
    <table class="w-full text-sm text-left">
        <thead class="bg-gray-800 text-gray-400 uppercase text-xs">
            <tr>
                <th class="px-4 py-3">Pattern</th>
                <th class="px-4 py-3 w-32"></th>
            </tr>
        </thead>
        <tbody>
            {{range .Patterns}}
            <tr class="border-b border-gray-700 hover:bg-gray-800">
                <td class="px-4 py-2 font-mono">{{.}}</td>
                <td class="px-4 py-2">
                    <form method="post" action="/blocklist/remove">
                        <input type="hidden" name="pattern" value="{{.}}">
                        <button type="submit" class="text-red-400 hover:text-red-300 text-xs">Remove</button>
                    </form>
                </td>
            </tr>
            {{else}}
            <tr><td class="px-4 py-4 text-gray-500" colspan="2">No blocked sites yet</td></tr>
            {{end}}
        </tbody>
    </table>
</div>
` + footHTML
